package engine

import (
	"encoding/json"
	"testing"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/models"
	"github.com/myrjola/alibi/internal/odds"
	"github.com/stretchr/testify/require"
)

func doNothingPolicy(_ *models.GameState) string {
	return "do_nothing"
}

// scriptedPolicy replays a fixed sequence, then idles.
func scriptedPolicy(actions ...string) PlayerPolicy {
	index := 0
	return func(_ *models.GameState) string {
		if index >= len(actions) {
			return "do_nothing"
		}
		action := actions[index]
		index++
		return action
	}
}

func TestNewRejectsUnknownCrimeType(t *testing.T) {
	t.Parallel()

	_, err := New("jaywalking", 1)
	require.ErrorContains(t, err, "unsupported crime type")
	require.ErrorContains(t, err, "murder")
}

func TestEngineIsDeterministic(t *testing.T) {
	t.Parallel()

	script := []string{
		"remove_evidence", "plant_evidence", "bribe_actor",
		"forge_record", "leak_to_media", "do_nothing",
		"remove_evidence", "plant_evidence",
	}

	run := func() ([]TurnReport, []byte) {
		eng, err := New("murder", 1234)
		require.NoError(t, err)
		reports, _ := eng.Run(scriptedPolicy(script...), len(script))
		serialized, err := json.Marshal(eng.State())
		require.NoError(t, err)
		return reports, serialized
	}

	firstReports, firstState := run()
	secondReports, secondState := run()

	require.Equal(t, firstReports, secondReports)
	require.JSONEq(t, string(firstState), string(secondState))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	first, err := New("fraud", 1)
	require.NoError(t, err)
	second, err := New("fraud", 2)
	require.NoError(t, err)

	require.NotEqual(t, first.State().Investigator.Skills, second.State().Investigator.Skills)
}

func TestInitialStateShape(t *testing.T) {
	t.Parallel()

	eng, err := New("murder", 99)
	require.NoError(t, err)
	state := eng.State()

	require.Equal(t, 0, state.Turn)
	require.Equal(t, "murder", state.Case.CrimeType)
	require.Len(t, state.Case.Timeline, eng.MaxTurns())
	require.Equal(t, "turn_1", state.Case.Timeline[0])
	require.Equal(t, 12.0, state.Player.Resources["money"])
	require.Equal(t, 8.0, state.Player.Resources["influence"])
	require.Equal(t, 10.0, state.Player.Resources["focus"])
	require.Empty(t, state.VisibleEvidence())

	for _, item := range state.Evidence.All() {
		require.True(t, item.Active)
		require.False(t, item.Discovered)
		require.Contains(t, item.ID, "murder_")
	}

	investigator := state.Investigator
	for name, skill := range investigator.Skills {
		require.GreaterOrEqual(t, skill, 0.50, name)
		require.LessOrEqual(t, skill, 0.93, name)
	}
	require.Len(t, investigator.Biases, len(investigator.HypothesesLogOdds))
	for name, bias := range investigator.Biases {
		require.GreaterOrEqual(t, bias, -0.08, name)
		require.LessOrEqual(t, bias, 0.08, name)
	}
}

func TestStepKeepsStateWithinBounds(t *testing.T) {
	t.Parallel()

	eng, err := New("arson", 7)
	require.NoError(t, err)

	policy := scriptedPolicy(
		"leak_to_media", "bribe_actor", "plant_evidence", "forge_record",
		"remove_evidence", "leak_to_media", "bribe_actor", "plant_evidence",
	)
	reports, _ := eng.Run(policy, 8)

	state := eng.State()
	require.GreaterOrEqual(t, state.PublicPressure, 0.0)
	require.LessOrEqual(t, state.PublicPressure, catalog.MaxPublicPressure)
	require.GreaterOrEqual(t, state.NoiseLevel, 0.0)
	require.LessOrEqual(t, state.NoiseLevel, catalog.MaxNoiseLevel)
	require.GreaterOrEqual(t, state.Investigator.Fatigue, 0.0)
	require.LessOrEqual(t, state.Investigator.Fatigue, 2.0)
	require.GreaterOrEqual(t, state.Investigator.Compromised, 0.0)
	require.LessOrEqual(t, state.Investigator.Compromised, 1.0)

	for _, value := range state.Investigator.HypothesesLogOdds {
		require.GreaterOrEqual(t, value, catalog.MinLogOdds)
		require.LessOrEqual(t, value, catalog.MaxLogOdds)
	}
	for index, report := range reports {
		require.Equal(t, index+1, report.Turn)
		require.Equal(t, report.Turn, report.Day)
	}
}

func TestEvaluateOutcomePrecedence(t *testing.T) {
	t.Parallel()

	eng, err := New("murder", 5)
	require.NoError(t, err)

	outcome := eng.EvaluateOutcome()
	require.False(t, outcome.Ended)
	require.Equal(t, ReasonOngoing, outcome.Reason)

	// Confidence beats pressure overload when both hold.
	eng.State().Investigator.HypothesesLogOdds[models.HypothesisPlayerGuilt] = catalog.MaxLogOdds
	eng.State().PublicPressure = catalog.MaxPublicPressure
	outcome = eng.EvaluateOutcome()
	require.True(t, outcome.Ended)
	require.True(t, outcome.PlayerLost)
	require.Equal(t, ReasonConfidenceExceeded, outcome.Reason)

	eng.State().Investigator.HypothesesLogOdds[models.HypothesisPlayerGuilt] = 0.0
	outcome = eng.EvaluateOutcome()
	require.True(t, outcome.PlayerLost)
	require.Equal(t, ReasonPressureOverload, outcome.Reason)

	eng.State().PublicPressure = 0.5
	eng.State().Turn = eng.MaxTurns()
	outcome = eng.EvaluateOutcome()
	require.True(t, outcome.Ended)
	require.False(t, outcome.PlayerLost)
	require.Equal(t, ReasonMaxTurnsReached, outcome.Reason)
}

func TestRunStopsAtTerminalOutcome(t *testing.T) {
	t.Parallel()

	eng, err := New("murder", 11, WithMaxTurns(3))
	require.NoError(t, err)

	reports, outcome := eng.Run(doNothingPolicy, 50)
	require.True(t, outcome.Ended)
	require.LessOrEqual(t, len(reports), 3)
	require.Equal(t, reports[len(reports)-1].Outcome, outcome)

	// A terminal engine refuses further turns without mutating state.
	before, err := json.Marshal(eng.State())
	require.NoError(t, err)
	moreReports, again := eng.Run(doNothingPolicy, 5)
	require.Empty(t, moreReports)
	require.Equal(t, outcome, again)
	after, err := json.Marshal(eng.State())
	require.NoError(t, err)
	require.JSONEq(t, string(before), string(after))
}

func TestTurnPressureCurveHoldsLastValue(t *testing.T) {
	t.Parallel()

	eng, err := New("hit_and_run", 3, WithMaxTurns(40), WithLossConfidenceThreshold(1.1))
	require.NoError(t, err)
	curve := eng.State().Case.TurnPressureCurve
	lastDelta := curve[len(curve)-1]

	eng.State().Turn = len(curve) + 5
	eng.State().PublicPressure = 1.0
	eng.applyTurnPressure()
	require.InDelta(t, 1.0+lastDelta, eng.State().PublicPressure, 1e-12)
}

func TestLossConfidenceThresholdOption(t *testing.T) {
	t.Parallel()

	eng, err := New("murder", 8, WithLossConfidenceThreshold(0.5))
	require.NoError(t, err)
	eng.State().Investigator.HypothesesLogOdds[models.HypothesisPlayerGuilt] = odds.ProbabilityToLogOdds(0.6)

	outcome := eng.EvaluateOutcome()
	require.True(t, outcome.Ended)
	require.Equal(t, ReasonConfidenceExceeded, outcome.Reason)
}

func TestRestoreRecoversTurnLimitFromTimeline(t *testing.T) {
	t.Parallel()

	eng, err := New("fraud", 21, WithMaxTurns(6))
	require.NoError(t, err)
	eng.Run(doNothingPolicy, 2)

	serialized, err := json.Marshal(eng.State())
	require.NoError(t, err)
	var restored models.GameState
	require.NoError(t, json.Unmarshal(serialized, &restored))

	resumed := Restore(&restored)
	require.Equal(t, 6, resumed.MaxTurns())
	require.Equal(t, 2, resumed.State().Turn)
}

// Running N+M turns in one engine matches running N turns, serializing, and
// running M more in a restored engine.
func TestSerializedContinuationMatchesUninterruptedRun(t *testing.T) {
	t.Parallel()

	const seed = 424242
	script := []string{
		"remove_evidence", "plant_evidence", "do_nothing", "bribe_actor",
		"forge_record", "leak_to_media", "do_nothing", "remove_evidence",
	}

	reference, err := New("murder", seed, WithLossConfidenceThreshold(1.1))
	require.NoError(t, err)
	referenceReports, _ := reference.Run(scriptedPolicy(script...), len(script))

	split, err := New("murder", seed, WithLossConfidenceThreshold(1.1))
	require.NoError(t, err)
	firstHalf, _ := split.Run(scriptedPolicy(script[:4]...), 4)

	serialized, err := json.Marshal(split.State())
	require.NoError(t, err)
	var restored models.GameState
	require.NoError(t, json.Unmarshal(serialized, &restored))
	require.False(t, restored.RandReseeded)

	resumed := Restore(&restored, WithLossConfidenceThreshold(1.1))
	secondHalf, _ := resumed.Run(scriptedPolicy(script[4:]...), 4)

	require.Equal(t, referenceReports, append(firstHalf, secondHalf...))

	referenceState, err := json.Marshal(reference.State())
	require.NoError(t, err)
	resumedState, err := json.Marshal(resumed.State())
	require.NoError(t, err)
	require.JSONEq(t, string(referenceState), string(resumedState))
}
