// Package quantum implements a state-vector simulator for small quantum
// registers: amplitude storage, the gate set needed for amplitude
// amplification, and measurement sampling.
//
// Qubit ordering is little-endian throughout: qubit i is bit i of a
// basis-state index, so the basis state |q_{n-1} ... q_1 q_0⟩ lives at
// index sum(q_i * 2^i).
package quantum

import (
	"errors"
	"math"
	"math/cmplx"
)

// DefaultMaxQubits bounds register allocation. State size is exponential
// in the qubit count: 25 qubits is 2^25 complex128 amplitudes, 512 MiB.
const DefaultMaxQubits = 25

// normEpsilon is the tolerance for treating a squared magnitude as zero.
const normEpsilon = 1e-9

var (
	// ErrInvalidDimension indicates a register size outside the supported bounds.
	ErrInvalidDimension = errors.New("register size out of supported bounds")

	// ErrIndexOutOfRange indicates a qubit or basis index outside the register.
	ErrIndexOutOfRange = errors.New("qubit index out of range")

	// ErrInvalidGateSpec indicates a malformed gate descriptor, such as a
	// qubit listed more than once across controls and target.
	ErrInvalidGateSpec = errors.New("malformed gate specification")

	// ErrInvalidArgument indicates a usage error such as a negative
	// iteration count or a control pattern of the wrong length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrScratchHeld is returned when a scratch qubit is requested while
	// one is already allocated.
	ErrScratchHeld = errors.New("scratch qubit already held")

	// ErrNoScratch is returned when releasing a scratch qubit that was
	// never acquired.
	ErrNoScratch = errors.New("no scratch qubit held")

	// ErrScratchNotClean is returned when a scratch qubit carried
	// residual amplitude at release time.
	ErrScratchNotClean = errors.New("scratch qubit not restored to |0⟩ before release")
)

// Bit represents a classical bit (0 or 1).
type Bit int

const (
	Zero Bit = 0
	One  Bit = 1
)

// Register holds the complex amplitude vector of a quantum register. It is
// exclusively owned by one simulation session and mutated in place by gate
// application; it must not be shared across goroutines without external
// synchronization.
type Register struct {
	numQubits int
	maxQubits int
	amps      []complex128
	scratch   bool
}

// NewRegister creates an n-qubit register in the |0...0⟩ state, bounded by
// DefaultMaxQubits.
func NewRegister(numQubits int) (*Register, error) {
	return NewRegisterWithLimit(numQubits, DefaultMaxQubits)
}

// NewRegisterWithLimit creates an n-qubit register in the |0...0⟩ state.
// The limit caps the register size and is itself capped at
// DefaultMaxQubits to keep allocation bounded. The allocation check runs
// before any memory is reserved, so an oversized request fails fast with
// ErrInvalidDimension instead of exhausting memory.
func NewRegisterWithLimit(numQubits, maxQubits int) (*Register, error) {
	if maxQubits <= 0 || maxQubits > DefaultMaxQubits {
		maxQubits = DefaultMaxQubits
	}
	if numQubits <= 0 || numQubits > maxQubits {
		return nil, ErrInvalidDimension
	}

	amps := make([]complex128, 1<<numQubits)
	amps[0] = complex(1, 0)

	return &Register{
		numQubits: numQubits,
		maxQubits: maxQubits,
		amps:      amps,
	}, nil
}

// NumQubits returns the number of qubits, including a held scratch qubit.
func (r *Register) NumQubits() int {
	return r.numQubits
}

// Size returns the number of basis states (2^n).
func (r *Register) Size() int {
	return len(r.amps)
}

// Amplitudes returns a copy of the amplitude vector.
func (r *Register) Amplitudes() []complex128 {
	out := make([]complex128, len(r.amps))
	copy(out, r.amps)
	return out
}

// Amplitude returns the amplitude of a single basis state.
func (r *Register) Amplitude(basis int) (complex128, error) {
	if basis < 0 || basis >= len(r.amps) {
		return 0, ErrIndexOutOfRange
	}
	return r.amps[basis], nil
}

// NormSquared returns the sum of squared amplitude magnitudes. It stays
// within floating tolerance of 1.0 after every gate application; drift
// beyond that signals a gate bug.
func (r *Register) NormSquared() float64 {
	total := 0.0
	for _, a := range r.amps {
		total += real(a * cmplx.Conj(a))
	}
	return total
}

// Clone returns an independent copy of the register.
func (r *Register) Clone() *Register {
	return &Register{
		numQubits: r.numQubits,
		maxQubits: r.maxQubits,
		amps:      r.Amplitudes(),
		scratch:   r.scratch,
	}
}

// AcquireScratch appends one qubit in |0⟩ as the new highest-order qubit
// and returns its index. The scratch qubit is a transient resource: only
// one may be held at a time, and callers pair the acquisition with a
// deferred ReleaseScratch so every exit path restores the register width.
// One scratch qubit is permitted beyond the configured register limit.
func (r *Register) AcquireScratch() (int, error) {
	if r.scratch {
		return 0, ErrScratchHeld
	}

	grown := make([]complex128, len(r.amps)*2)
	copy(grown, r.amps)
	r.amps = grown
	r.scratch = true
	r.numQubits++

	return r.numQubits - 1, nil
}

// ReleaseScratch removes the held scratch qubit. The register is always
// shrunk back to its original width: the amplitudes are projected onto the
// scratch-qubit-is-|0⟩ subspace and renormalized. If the scratch qubit
// carried residual amplitude the projection loses weight and
// ErrScratchNotClean is reported after the release completes.
func (r *Register) ReleaseScratch() error {
	if !r.scratch {
		return ErrNoScratch
	}

	half := len(r.amps) / 2
	leaked := 0.0
	for _, a := range r.amps[half:] {
		leaked += real(a * cmplx.Conj(a))
	}

	kept := r.amps[:half]
	r.amps = kept
	r.scratch = false
	r.numQubits--

	if leaked <= normEpsilon {
		return nil
	}

	// The scratch qubit was entangled or flipped. Renormalize what is
	// left; a fully-leaked register falls back to |0...0⟩.
	remaining := 0.0
	for _, a := range kept {
		remaining += real(a * cmplx.Conj(a))
	}
	if remaining > normEpsilon {
		norm := complex(math.Sqrt(remaining), 0)
		for i := range kept {
			kept[i] /= norm
		}
	} else {
		for i := range kept {
			kept[i] = 0
		}
		kept[0] = complex(1, 0)
	}

	return ErrScratchNotClean
}
