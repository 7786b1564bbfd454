// Package grover implements amplitude amplification on top of the
// state-vector core: marking oracles, the marking-to-phase-oracle
// converter, the Grover search driver, and a session registry that owns
// registers on behalf of callers.
package grover

import (
	"github.com/arnavdesai/Go-Grover/internal/grover/quantum"
	"github.com/arnavdesai/Go-Grover/internal/models/grover"
)

// MarkingOracle flips a designated target qubit for every basis state of
// the query qubits that satisfies the oracle's predicate.
type MarkingOracle func(r *quantum.Register, query []int, target int) error

// PhaseOracle flips the phase of every basis state of the query qubits
// that satisfies the oracle's predicate, with no explicit target.
type PhaseOracle func(r *quantum.Register, query []int) error

// MarkAllOnes marks the basis state where every query qubit is 1.
func MarkAllOnes(r *quantum.Register, query []int, target int) error {
	return r.ApplyControlledX(query, target)
}

// MarkAlternatingBits marks the alternating pattern: even query positions
// 1, odd positions 0. The odd-position qubits are flipped into the
// all-ones basis, marked with a controlled-X, and flipped back; the
// unwinding half is the adjoint of the basis change, and the whole
// sequence is validated before the first gate runs.
func MarkAlternatingBits(r *quantum.Register, query []int, target int) error {
	flips := make(quantum.Sequence, 0, len(query)/2)
	for i, q := range query {
		if i%2 == 1 {
			flips = append(flips, quantum.Gate{Kind: quantum.GateX, Target: q})
		}
	}

	seq := make(quantum.Sequence, 0, 2*len(flips)+1)
	seq = append(seq, flips...)
	seq = append(seq, quantum.Gate{Kind: quantum.GateControlledX, Controls: query, Target: target})
	seq = append(seq, flips.Adjoint()...)

	return seq.Apply(r)
}

// MarkPattern marks the basis state whose query qubits exactly match the
// pattern, one Bit per query position.
func MarkPattern(r *quantum.Register, query []int, target int, pattern []quantum.Bit) error {
	return r.ApplyPatternControlledX(query, pattern, target)
}

// PatternOracle binds a pattern into a MarkingOracle for composition with
// ConvertToPhaseOracle.
func PatternOracle(pattern []quantum.Bit) MarkingOracle {
	return func(r *quantum.Register, query []int, target int) error {
		return MarkPattern(r, query, target, pattern)
	}
}

// ConvertToPhaseOracle turns a marking oracle into a phase oracle via
// phase kickback: a scratch qubit is prepared in |−⟩ (X then H), the
// marking oracle targets it, and the preparation is uncomputed (H then X).
// Because |−⟩ is the −1 eigenstate of X, the mark lands as a sign flip on
// the matching register amplitudes instead of a bit flip on the scratch.
// The scratch qubit is released on every exit path; if the marking oracle
// fails partway the release projects the register back onto its original
// subspace.
func ConvertToPhaseOracle(mark MarkingOracle) PhaseOracle {
	return func(r *quantum.Register, query []int) (err error) {
		scratch, err := r.AcquireScratch()
		if err != nil {
			return err
		}
		defer func() {
			if rerr := r.ReleaseScratch(); err == nil {
				err = rerr
			}
		}()

		if err = r.ApplyX(scratch); err != nil {
			return err
		}
		if err = r.ApplyH(scratch); err != nil {
			return err
		}
		if err = mark(r, query, scratch); err != nil {
			return err
		}
		if err = r.ApplyH(scratch); err != nil {
			return err
		}
		return r.ApplyX(scratch)
	}
}

// ParsePattern parses a '0'/'1' string into Bits, position i mapping to
// query qubit i.
func ParsePattern(s string) ([]quantum.Bit, error) {
	if s == "" {
		return nil, grover.ErrInvalidPattern
	}
	bits := make([]quantum.Bit, len(s))
	for i, c := range s {
		switch c {
		case '0':
			bits[i] = quantum.Zero
		case '1':
			bits[i] = quantum.One
		default:
			return nil, grover.ErrInvalidPattern
		}
	}
	return bits, nil
}
