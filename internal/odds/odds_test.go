package odds_test

import (
	"math"
	"testing"

	"github.com/myrjola/alibi/internal/odds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, odds.Clamp(-1.0, 0.0, 1.0))
	assert.Equal(t, 1.0, odds.Clamp(2.0, 0.0, 1.0))
	assert.Equal(t, 0.5, odds.Clamp(0.5, 0.0, 1.0))
	// Boundary values pass through unchanged.
	assert.Equal(t, 0.0, odds.Clamp(0.0, 0.0, 1.0))
	assert.Equal(t, 1.0, odds.Clamp(1.0, 0.0, 1.0))
}

func TestLogOddsToProbability(t *testing.T) {
	assert.InDelta(t, 0.5, odds.LogOddsToProbability(0.0), 1e-12)
	assert.Greater(t, odds.LogOddsToProbability(4.0), 0.98)
	assert.Less(t, odds.LogOddsToProbability(-4.0), 0.02)
	// Total over all reals, no NaN or infinity.
	require.False(t, math.IsNaN(odds.LogOddsToProbability(math.MaxFloat64)))
	require.False(t, math.IsNaN(odds.LogOddsToProbability(-math.MaxFloat64)))
}

func TestProbabilityToLogOddsStaysFinite(t *testing.T) {
	for _, p := range []float64{0.0, 1.0, -3.0, 42.0} {
		logOdds := odds.ProbabilityToLogOdds(p)
		require.False(t, math.IsInf(logOdds, 0), "probability %v produced infinite log-odds", p)
		require.False(t, math.IsNaN(logOdds))
	}
}

func TestConversionsRoundTrip(t *testing.T) {
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		assert.InDelta(t, p, odds.LogOddsToProbability(odds.ProbabilityToLogOdds(p)), 1e-9)
	}
}

func TestHypothesisProbabilities(t *testing.T) {
	probabilities := odds.HypothesisProbabilities(map[string]float64{
		"player_committed_crime": 0.0,
		"alternative_actor":      -4.0,
	})
	assert.InDelta(t, 0.5, probabilities["player_committed_crime"], 1e-12)
	assert.Less(t, probabilities["alternative_actor"], 0.02)
}
