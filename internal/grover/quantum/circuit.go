package quantum

// GateKind names a unitary in the supported gate set.
type GateKind string

const (
	GateX                  GateKind = "x"
	GateH                  GateKind = "h"
	GateZ                  GateKind = "z"
	GateControlledX        GateKind = "cx"
	GateControlledZ        GateKind = "cz"
	GatePatternControlledX GateKind = "pcx"
)

// Gate is an immutable descriptor of one unitary operation: a kind, a
// target qubit, optional control qubits, and, for pattern-controlled-X,
// the Bit pattern the controls must match. Descriptors are stateless and
// reusable across registers.
type Gate struct {
	Kind     GateKind `json:"kind"`
	Target   int      `json:"target"`
	Controls []int    `json:"controls,omitempty"`
	Pattern  []Bit    `json:"pattern,omitempty"`
}

// Validate checks the descriptor against a register width without
// applying it.
func (g Gate) Validate(numQubits int) error {
	switch g.Kind {
	case GateX, GateH, GateZ:
		if len(g.Controls) != 0 || len(g.Pattern) != 0 {
			return ErrInvalidGateSpec
		}
	case GateControlledX, GateControlledZ:
		if len(g.Pattern) != 0 {
			return ErrInvalidGateSpec
		}
	case GatePatternControlledX:
		if len(g.Pattern) != len(g.Controls) {
			return ErrInvalidArgument
		}
		for _, b := range g.Pattern {
			if b != Zero && b != One {
				return ErrInvalidArgument
			}
		}
	default:
		return ErrInvalidGateSpec
	}
	return validateGateQubits(numQubits, g.Target, g.Controls)
}

// Apply applies the gate to a register. The descriptor is validated in
// full before any amplitude is touched, so a failed call leaves the
// register unchanged.
func (g Gate) Apply(r *Register) error {
	if err := g.Validate(r.numQubits); err != nil {
		return err
	}
	switch g.Kind {
	case GateX:
		return r.ApplyX(g.Target)
	case GateH:
		return r.ApplyH(g.Target)
	case GateZ:
		return r.ApplyZ(g.Target)
	case GateControlledX:
		return r.ApplyControlledX(g.Controls, g.Target)
	case GateControlledZ:
		return r.ApplyControlledZ(g.Controls, g.Target)
	default:
		return r.ApplyPatternControlledX(g.Controls, g.Pattern, g.Target)
	}
}

// SelfAdjoint reports whether the gate equals its own inverse. Every
// primitive in this gate set does.
func (g Gate) SelfAdjoint() bool {
	return true
}

// Adjoint returns the inverse of the gate, which for this gate set is the
// gate itself.
func (g Gate) Adjoint() Gate {
	return g
}

// Sequence is an ordered composition of gates.
type Sequence []Gate

// Apply applies each gate in order. Every descriptor is validated before
// the first gate runs, so a malformed sequence leaves the register
// unchanged.
func (s Sequence) Apply(r *Register) error {
	for _, g := range s {
		if err := g.Validate(r.numQubits); err != nil {
			return err
		}
	}
	for _, g := range s {
		if err := g.Apply(r); err != nil {
			return err
		}
	}
	return nil
}

// Adjoint returns the inverse sequence: the steps reversed, each replaced
// by its own adjoint.
func (s Sequence) Adjoint() Sequence {
	inverse := make(Sequence, len(s))
	for i, g := range s {
		inverse[len(s)-1-i] = g.Adjoint()
	}
	return inverse
}
