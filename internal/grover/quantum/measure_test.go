package quantum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbabilitiesGroundState(t *testing.T) {
	reg, err := NewRegister(2)
	require.NoError(t, err)

	probs := reg.Probabilities()
	require.Len(t, probs, 4)
	require.InDelta(t, 1.0, probs[0], 1e-12)
	for i := 1; i < 4; i++ {
		require.InDelta(t, 0, probs[i], 1e-12)
	}
}

func TestProbabilitiesUniform(t *testing.T) {
	reg, err := NewRegister(2)
	require.NoError(t, err)
	require.NoError(t, reg.ApplyH(0))
	require.NoError(t, reg.ApplyH(1))

	for _, p := range reg.Probabilities() {
		require.InDelta(t, 0.25, p, 1e-12)
	}
}

func TestSampleBasisState(t *testing.T) {
	reg, err := NewRegister(3)
	require.NoError(t, err)
	require.NoError(t, reg.ApplyX(0))
	require.NoError(t, reg.ApplyX(2))

	sampler := NewSeededSampler(1)
	for i := 0; i < 100; i++ {
		require.Equal(t, 5, sampler.Sample(reg))
	}
}

func TestSampleDoesNotCollapse(t *testing.T) {
	reg, err := NewRegister(1)
	require.NoError(t, err)
	require.NoError(t, reg.ApplyH(0))
	snapshot := reg.Amplitudes()

	sampler := NewSeededSampler(7)
	sampler.Sample(reg)

	require.Equal(t, snapshot, reg.Amplitudes())
}

func TestSampleFrequencies(t *testing.T) {
	reg, err := NewRegister(1)
	require.NoError(t, err)
	require.NoError(t, reg.ApplyH(0))

	sampler := NewSeededSampler(42)
	const draws = 2000
	ones := 0
	for i := 0; i < draws; i++ {
		if sampler.Sample(reg) == 1 {
			ones++
		}
	}

	require.InDelta(t, 0.5, float64(ones)/draws, 0.05)
}
