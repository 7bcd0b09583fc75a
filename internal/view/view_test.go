package view

import (
	"testing"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/engine"
	"github.com/myrjola/alibi/internal/models"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, seed uint64) *models.GameState {
	t.Helper()
	eng, err := engine.New("murder", seed)
	require.NoError(t, err)
	return eng.State()
}

func TestVisibleStateHidesUndiscoveredEvidence(t *testing.T) {
	t.Parallel()

	state := newState(t, 1)
	visible := VisibleStateFrom(state)

	require.Empty(t, visible.Evidence)
	require.Equal(t, "contained", visible.Status)
	require.Equal(t, "case_001", visible.CaseID)
	require.Equal(t, "murder", visible.CrimeType)
}

func TestVisibleStateShowsDiscoveredActiveEvidence(t *testing.T) {
	t.Parallel()

	state := newState(t, 5)
	all := state.Evidence.All()
	all[0].Discovered = true
	all[1].Discovered = true
	all[1].Active = false

	visible := VisibleStateFrom(state)
	require.Len(t, visible.Evidence, 1)
	require.Equal(t, all[0].ID, visible.Evidence[0].ID)
	require.Equal(t, "Murder Ev Phys 1", visible.Evidence[0].Label)
	require.Equal(t, "active", visible.Status)
}

func TestEvidenceStateLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		active      bool
		discovered  bool
		credibility float64
		want        string
	}{
		{"inactive", false, true, 0.9, "archived"},
		{"hidden", true, false, 0.9, "logged"},
		{"low credibility", true, true, 0.2, "suppressed"},
		{"middling credibility", true, true, 0.5, "review"},
		{"high credibility", true, true, 0.9, "surfaced"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			evidence := &models.Evidence{
				Active:             tt.active,
				Discovered:         tt.discovered,
				CurrentCredibility: tt.credibility,
			}
			require.Equal(t, tt.want, evidenceState(evidence))
		})
	}
}

func TestPressureLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "low", pressureLabel(0.49))
	require.Equal(t, "moderate", pressureLabel(0.5))
	require.Equal(t, "elevated", pressureLabel(1.0))
	require.Equal(t, "high", pressureLabel(1.5))
	require.Equal(t, "critical", pressureLabel(2.0))
}

func TestInvestigatorSignals(t *testing.T) {
	t.Parallel()

	state := newState(t, 2)
	require.Equal(t, "uncertain", investigatorPriority(state))
	require.Equal(t, "uncertain", recentShift(state))
	require.Equal(t, "methodical", investigatorDemeanour(state))

	state.Investigator.ActionHistory = []string{"survey_scene", "survey_scene"}
	require.Equal(t, "forensics", investigatorPriority(state))
	require.Equal(t, "attention_narrowing", recentShift(state))

	state.Investigator.ActionHistory = []string{"audit_records", "press_briefing"}
	require.Equal(t, "public_relations", investigatorPriority(state))
	require.Equal(t, "risk_avoidance", recentShift(state))

	state.Investigator.ActionHistory = []string{"press_briefing", "interview_witnesses"}
	require.Equal(t, "interviews", investigatorPriority(state))
	require.Equal(t, "scope_balancing", recentShift(state))

	state.Investigator.Fatigue = 1.3
	require.Equal(t, "exhausted", investigatorDemeanour(state))
	state.Investigator.Fatigue = 0.9
	require.Equal(t, "impatient", investigatorDemeanour(state))
	state.Investigator.Fatigue = 0.0
	state.Investigator.Compromised = 0.6
	require.Equal(t, "guarded", investigatorDemeanour(state))
}

func TestCaseStatusPrecedence(t *testing.T) {
	t.Parallel()

	state := newState(t, 3)

	state.Turn = len(state.Case.Timeline)
	require.Equal(t, "closed", caseStatus(state, 3))

	state.Turn = 1
	state.PublicPressure = 2.5
	require.Equal(t, "cold", caseStatus(state, 3))

	state.PublicPressure = 1.0
	state.NoiseLevel = 2.5
	require.Equal(t, "paused", caseStatus(state, 3))

	state.NoiseLevel = 0.0
	require.Equal(t, "active", caseStatus(state, 1))
	require.Equal(t, "contained", caseStatus(state, 0))
}

func TestTimelineIsBounded(t *testing.T) {
	t.Parallel()

	state := newState(t, 4)
	state.Turn = 19
	state.Investigator.ActionHistory = []string{
		"survey_scene", "audit_records", "survey_scene", "press_briefing",
		"interview_witnesses", "survey_scene", "audit_records",
	}

	visible := VisibleStateFrom(state)
	require.Len(t, visible.Timeline, timelineWindow)
	last := visible.Timeline[len(visible.Timeline)-1]
	require.Equal(t, "Investigator action: audit_records", last.Details)
}

func TestActionOptionsReflectAffordability(t *testing.T) {
	t.Parallel()

	state := newState(t, 6)
	options := ActionOptionsFrom(state)
	require.Len(t, options, len(catalog.PlayerActions))

	byID := make(map[string]ActionOption, len(options))
	for _, option := range options {
		byID[option.ID] = option
	}

	bribe := byID["bribe_actor"]
	require.True(t, bribe.Enabled)
	require.NotNil(t, bribe.Cost)
	require.Equal(t, "3 money, 2 influence", *bribe.Cost)
	require.Equal(t, "Risk: 54%, Noise: +0.34", bribe.Desc)
	require.Nil(t, bribe.DisabledReason)

	idle := byID["do_nothing"]
	require.True(t, idle.Enabled)
	require.Nil(t, idle.Cost)
	require.Equal(t, "Risk: 0%, Noise: -0.10", idle.Desc)

	state.Player.Resources["money"] = 0.5
	options = ActionOptionsFrom(state)
	for _, option := range options {
		if option.ID == "bribe_actor" {
			require.False(t, option.Enabled)
			require.NotNil(t, option.DisabledReason)
			require.Equal(t, "Insufficient resources: need 3 money, 2 influence", *option.DisabledReason)
		}
	}
}
