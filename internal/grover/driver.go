package grover

import (
	"fmt"
	"math"

	"github.com/arnavdesai/Go-Grover/internal/grover/quantum"
)

// RunSearch executes Grover's algorithm in place: a Hadamard transform
// across all register qubits, then exactly iterations repetitions of the
// phase oracle followed by reflection about the mean. The iteration count
// is caller-supplied; OptimalIterations computes the usual choice but the
// driver never applies it implicitly.
func RunSearch(r *quantum.Register, oracle PhaseOracle, iterations int) error {
	if r == nil || oracle == nil || iterations < 0 {
		return quantum.ErrInvalidArgument
	}

	query := make([]int, r.NumQubits())
	for i := range query {
		query[i] = i
	}

	if err := hadamardAll(r, query); err != nil {
		return err
	}

	for k := 0; k < iterations; k++ {
		if err := oracle(r, query); err != nil {
			return fmt.Errorf("grover iteration %d: oracle: %w", k, err)
		}
		if err := reflectAboutMean(r, query); err != nil {
			return fmt.Errorf("grover iteration %d: reflection: %w", k, err)
		}
	}

	return nil
}

// OptimalIterations returns ⌊π/4 · √(2^n / M)⌋ for M marked states among
// 2^n, floored at 1 when any state is marked. numQubits is clamped to
// DefaultMaxQubits, the widest register the simulator allocates.
func OptimalIterations(numQubits, marked int) int {
	if numQubits <= 0 || marked <= 0 {
		return 0
	}
	if numQubits > quantum.DefaultMaxQubits {
		numQubits = quantum.DefaultMaxQubits
	}
	iters := int(math.Pi / 4 * math.Sqrt(float64(uint64(1)<<numQubits)/float64(marked)))
	if iters < 1 {
		iters = 1
	}
	return iters
}

func hadamardAll(r *quantum.Register, qubits []int) error {
	for _, q := range qubits {
		if err := r.ApplyH(q); err != nil {
			return err
		}
	}
	return nil
}

// reflectAboutMean reflects the state about the uniform superposition:
// a Hadamard sandwich around a conditional phase flip that negates every
// basis state except all-zero.
func reflectAboutMean(r *quantum.Register, qubits []int) error {
	if err := hadamardAll(r, qubits); err != nil {
		return err
	}
	r.ApplyConditionalPhaseFlip()
	return hadamardAll(r, qubits)
}

// reflectAboutMeanXCZ is the X/controlled-Z/X formulation of the same
// reflection: flip all qubits, apply a multi-controlled Z with one qubit
// as the notational target, flip back. It differs from reflectAboutMean
// by a global phase of −1 and produces the identical probability
// distribution.
func reflectAboutMeanXCZ(r *quantum.Register, qubits []int) error {
	if len(qubits) == 0 {
		return quantum.ErrInvalidArgument
	}

	if err := hadamardAll(r, qubits); err != nil {
		return err
	}
	for _, q := range qubits {
		if err := r.ApplyX(q); err != nil {
			return err
		}
	}
	if err := r.ApplyControlledZ(qubits[:len(qubits)-1], qubits[len(qubits)-1]); err != nil {
		return err
	}
	for _, q := range qubits {
		if err := r.ApplyX(q); err != nil {
			return err
		}
	}
	return hadamardAll(r, qubits)
}
