package quantum

import (
	"math/cmplx"
	"math/rand"
	"time"
)

// Probabilities returns the exact outcome distribution: the squared
// magnitude of every basis amplitude, in basis-index order. Used for
// assertion-based verification without randomness.
func (r *Register) Probabilities() []float64 {
	probs := make([]float64, len(r.amps))
	for i, a := range r.amps {
		probs[i] = real(a * cmplx.Conj(a))
	}
	return probs
}

// Sampler draws classical outcomes from a register's amplitude
// distribution. Sampling does not collapse the state; it exists for
// verification of search results, not as part of the unitary core.
type Sampler struct {
	random *rand.Rand
}

// NewSampler creates a sampler seeded from the current time.
func NewSampler() *Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

// NewSeededSampler creates a sampler with a fixed seed for deterministic
// tests.
func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{random: rand.New(rand.NewSource(seed))}
}

// Sample draws one basis index with probability equal to its squared
// amplitude magnitude.
func (s *Sampler) Sample(r *Register) int {
	draw := s.random.Float64()
	cumulative := 0.0
	for i, a := range r.amps {
		cumulative += real(a * cmplx.Conj(a))
		if draw < cumulative {
			return i
		}
	}
	// Floating-point rounding can leave the cumulative sum a hair under
	// the draw; attribute the remainder to the last basis state.
	return len(r.amps) - 1
}
