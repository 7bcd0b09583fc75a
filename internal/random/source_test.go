package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLetters(t *testing.T) {
	letters, err := Letters(20)
	require.NoError(t, err)
	require.Len(t, letters, 20)
}

func TestSourceDeterminism(t *testing.T) {
	first := NewSource(42)
	second := NewSource(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, first.Float64(), second.Float64())
	}
}

func TestSourceUniformRange(t *testing.T) {
	source := NewSource(7)
	for i := 0; i < 1000; i++ {
		v := source.Uniform(-0.08, 0.08)
		require.GreaterOrEqual(t, v, -0.08)
		require.Less(t, v, 0.08)
	}
}

func TestSourceMarshalRoundTrip(t *testing.T) {
	source := NewSource(42)
	// Advance past the seed so the marshalled state differs from a fresh source.
	for i := 0; i < 17; i++ {
		source.Float64()
	}

	state, err := source.MarshalBinary()
	require.NoError(t, err)

	restored := NewSource(42)
	require.NoError(t, restored.UnmarshalBinary(state))

	for i := 0; i < 100; i++ {
		require.Equal(t, source.Float64(), restored.Float64())
	}
}

func TestSourceUnmarshalRejectsGarbage(t *testing.T) {
	source := NewSource(1)
	require.Error(t, source.UnmarshalBinary([]byte("not a generator state")))
}
