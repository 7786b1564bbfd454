package quantum

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var hFactor = complex(1/math.Sqrt2, 0)

// parallelThreshold is the amplitude count above which Hadamard
// application fans out across CPU cores. Index pairs are disjoint, so the
// split is a pure performance optimization with an order-independent
// result.
const parallelThreshold = 1 << 16

// checkQubit validates a single qubit index against the register width.
func (r *Register) checkQubit(q int) error {
	if q < 0 || q >= r.numQubits {
		return ErrIndexOutOfRange
	}
	return nil
}

// validateGateQubits checks that the target and every control are in range
// and that no qubit appears twice across the descriptor.
func validateGateQubits(numQubits, target int, controls []int) error {
	if target < 0 || target >= numQubits {
		return ErrIndexOutOfRange
	}
	seen := uint64(1) << target
	for _, c := range controls {
		if c < 0 || c >= numQubits {
			return ErrIndexOutOfRange
		}
		mask := uint64(1) << c
		if seen&mask != 0 {
			return ErrInvalidGateSpec
		}
		seen |= mask
	}
	return nil
}

// ApplyX applies the Pauli-X (NOT) gate to one qubit, swapping amplitude
// pairs whose basis indices differ only in that bit.
func (r *Register) ApplyX(q int) error {
	if err := r.checkQubit(q); err != nil {
		return err
	}

	bit := 1 << q
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
	return nil
}

// ApplyH applies the Hadamard gate to one qubit: for each index pair
// differing in that bit, (a,b) becomes ((a+b)/√2, (a-b)/√2).
func (r *Register) ApplyH(q int) error {
	if err := r.checkQubit(q); err != nil {
		return err
	}
	if len(r.amps) >= parallelThreshold {
		return r.applyHParallel(q)
	}

	bit := 1 << q
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := r.amps[i], r.amps[j]
			r.amps[i] = hFactor * (a + b)
			r.amps[j] = hFactor * (a - b)
		}
	}
	return nil
}

// applyHParallel splits the amplitude vector into blocks of 2^(q+1)
// indices so each worker owns disjoint index pairs.
func (r *Register) applyHParallel(q int) error {
	bit := 1 << q
	stride := bit << 1
	numBlocks := len(r.amps) / stride

	workers := runtime.GOMAXPROCS(0)
	if workers > numBlocks {
		workers = numBlocks
	}
	perWorker := (numBlocks + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * perWorker
		hi := min(lo+perWorker, numBlocks)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for blk := lo; blk < hi; blk++ {
				base := blk * stride
				for off := 0; off < bit; off++ {
					i := base + off
					j := i | bit
					a, b := r.amps[i], r.amps[j]
					r.amps[i] = hFactor * (a + b)
					r.amps[j] = hFactor * (a - b)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// ApplyZ applies the Pauli-Z gate to one qubit, negating the amplitude of
// every basis index where that bit is 1.
func (r *Register) ApplyZ(q int) error {
	if err := r.checkQubit(q); err != nil {
		return err
	}

	bit := 1 << q
	for i := range r.amps {
		if i&bit != 0 {
			r.amps[i] = -r.amps[i]
		}
	}
	return nil
}

// ApplyControlledX applies X to the target for every basis index whose
// control bits are all 1. An empty control set degrades to a plain X.
func (r *Register) ApplyControlledX(controls []int, target int) error {
	if err := validateGateQubits(r.numQubits, target, controls); err != nil {
		return err
	}

	cmask := 0
	for _, c := range controls {
		cmask |= 1 << c
	}
	tbit := 1 << target

	for i := range r.amps {
		if i&cmask == cmask && i&tbit == 0 {
			j := i | tbit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
	return nil
}

// ApplyControlledZ negates the amplitude of every basis index where the
// controls and the target are all 1. The operation is symmetric in all
// listed qubits; the target designation is notational only. An empty
// control set degrades to a plain Z.
func (r *Register) ApplyControlledZ(controls []int, target int) error {
	if err := validateGateQubits(r.numQubits, target, controls); err != nil {
		return err
	}

	mask := 1 << target
	for _, c := range controls {
		mask |= 1 << c
	}

	for i := range r.amps {
		if i&mask == mask {
			r.amps[i] = -r.amps[i]
		}
	}
	return nil
}

// ApplyPatternControlledX applies X to the target for every basis index
// whose control bits exactly match the pattern, one Bit per control. A
// pattern of all ones is a plain controlled-X.
func (r *Register) ApplyPatternControlledX(controls []int, pattern []Bit, target int) error {
	if len(pattern) != len(controls) {
		return ErrInvalidArgument
	}
	for _, b := range pattern {
		if b != Zero && b != One {
			return ErrInvalidArgument
		}
	}
	if err := validateGateQubits(r.numQubits, target, controls); err != nil {
		return err
	}

	cmask := 0
	pmask := 0
	for i, c := range controls {
		cmask |= 1 << c
		if pattern[i] == One {
			pmask |= 1 << c
		}
	}
	tbit := 1 << target

	for i := range r.amps {
		if i&cmask == pmask && i&tbit == 0 {
			j := i | tbit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
	return nil
}

// ApplyConditionalPhaseFlip negates every amplitude except the all-zero
// basis state. Up to a global phase this is the reflection about |0...0⟩
// used by the Grover diffusion step.
func (r *Register) ApplyConditionalPhaseFlip() {
	for i := 1; i < len(r.amps); i++ {
		r.amps[i] = -r.amps[i]
	}
}
