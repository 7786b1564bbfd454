package quantum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGateValidate(t *testing.T) {
	tests := []struct {
		name    string
		gate    Gate
		wantErr error
	}{
		{"plain x", Gate{Kind: GateX, Target: 0}, nil},
		{"h with controls", Gate{Kind: GateH, Target: 0, Controls: []int{1}}, ErrInvalidGateSpec},
		{"z with pattern", Gate{Kind: GateZ, Target: 0, Pattern: []Bit{One}}, ErrInvalidGateSpec},
		{"cx", Gate{Kind: GateControlledX, Target: 1, Controls: []int{0}}, nil},
		{"cx with pattern", Gate{Kind: GateControlledX, Target: 1, Controls: []int{0}, Pattern: []Bit{One}}, ErrInvalidGateSpec},
		{"cz control equals target", Gate{Kind: GateControlledZ, Target: 1, Controls: []int{1}}, ErrInvalidGateSpec},
		{"pcx", Gate{Kind: GatePatternControlledX, Target: 2, Controls: []int{0, 1}, Pattern: []Bit{One, Zero}}, nil},
		{"pcx pattern mismatch", Gate{Kind: GatePatternControlledX, Target: 2, Controls: []int{0, 1}, Pattern: []Bit{One}}, ErrInvalidArgument},
		{"pcx pattern bad bit", Gate{Kind: GatePatternControlledX, Target: 2, Controls: []int{0}, Pattern: []Bit{3}}, ErrInvalidArgument},
		{"target out of range", Gate{Kind: GateX, Target: 3}, ErrIndexOutOfRange},
		{"unknown kind", Gate{Kind: "swap", Target: 0}, ErrInvalidGateSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.gate.Validate(3)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGateApplyDispatch(t *testing.T) {
	reg, err := NewRegister(2)
	require.NoError(t, err)

	seq := Sequence{
		{Kind: GateX, Target: 0},
		{Kind: GateControlledX, Controls: []int{0}, Target: 1},
	}
	require.NoError(t, seq.Apply(reg))

	amp, err := reg.Amplitude(3)
	require.NoError(t, err)
	require.Equal(t, complex(1, 0), amp)
}

func TestSequenceAdjointRoundTrip(t *testing.T) {
	reg, err := NewRegister(3)
	require.NoError(t, err)

	seq := Sequence{
		{Kind: GateH, Target: 0},
		{Kind: GateX, Target: 1},
		{Kind: GateControlledX, Controls: []int{1}, Target: 2},
		{Kind: GateZ, Target: 0},
		{Kind: GateControlledZ, Controls: []int{0}, Target: 2},
		{Kind: GatePatternControlledX, Controls: []int{0, 1}, Pattern: []Bit{One, Zero}, Target: 2},
	}

	require.NoError(t, seq.Apply(reg))
	require.NoError(t, seq.Adjoint().Apply(reg))

	amps := reg.Amplitudes()
	require.InDelta(t, 1.0, real(amps[0]), 1e-9)
	for i := 1; i < len(amps); i++ {
		require.InDelta(t, 0, real(amps[i]), 1e-9)
		require.InDelta(t, 0, imag(amps[i]), 1e-9)
	}
}

func TestSequenceApplyAtomic(t *testing.T) {
	reg, err := NewRegister(2)
	require.NoError(t, err)

	seq := Sequence{
		{Kind: GateX, Target: 0},
		{Kind: GateX, Target: 9}, // out of range
	}
	require.ErrorIs(t, seq.Apply(reg), ErrIndexOutOfRange)

	// The leading valid gate must not have run.
	amp, err := reg.Amplitude(0)
	require.NoError(t, err)
	require.Equal(t, complex(1, 0), amp)
}

func TestGateAdjointIsSelf(t *testing.T) {
	g := Gate{Kind: GateControlledX, Controls: []int{0}, Target: 1}
	require.True(t, g.SelfAdjoint())
	require.Equal(t, g, g.Adjoint())
}
