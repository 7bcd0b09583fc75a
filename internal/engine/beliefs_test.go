package engine

import (
	"testing"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/models"
	"github.com/stretchr/testify/require"
)

func testEvidence() *models.Evidence {
	return &models.Evidence{
		ID:                 "ev_test",
		Category:           catalog.CategoryPhysical,
		BaseReliability:    0.8,
		Detectability:      0.6,
		Manipulability:     0.3,
		CurrentCredibility: 0.8,
		Active:             true,
		HypothesisImpacts: map[string]float64{
			models.HypothesisPlayerGuilt:      0.9,
			models.HypothesisAlternativeActor: -0.3,
		},
	}
}

func testInvestigator() models.InvestigatorState {
	return models.InvestigatorState{
		HypothesesLogOdds: map[string]float64{
			models.HypothesisPlayerGuilt:      0.0,
			models.HypothesisAlternativeActor: 0.0,
		},
		Skills: map[string]float64{
			catalog.SkillForensic:   0.7,
			catalog.SkillSocial:     0.6,
			catalog.SkillAnalytical: 0.65,
		},
		Biases:       map[string]float64{},
		LearningRate: 0.6,
	}
}

func TestUpdateHypothesesMovesBeliefTowardImpacts(t *testing.T) {
	t.Parallel()

	investigator := testInvestigator()
	updated := UpdateHypotheses(investigator.HypothesesLogOdds, testEvidence(), investigator, 0.0, "")

	require.Positive(t, updated[models.HypothesisPlayerGuilt])
	require.Negative(t, updated[models.HypothesisAlternativeActor])
	// The input mapping is never mutated.
	require.Equal(t, 0.0, investigator.HypothesesLogOdds[models.HypothesisPlayerGuilt])
}

func TestUpdateHypothesesFocusBonus(t *testing.T) {
	t.Parallel()

	investigator := testInvestigator()
	unfocused := UpdateHypotheses(investigator.HypothesesLogOdds, testEvidence(), investigator, 0.0, catalog.SkillSocial)
	focused := UpdateHypotheses(investigator.HypothesesLogOdds, testEvidence(), investigator, 0.0, catalog.SkillForensic)

	require.Greater(t, focused[models.HypothesisPlayerGuilt], unfocused[models.HypothesisPlayerGuilt])
}

func TestUpdateHypothesesPressureAmplifies(t *testing.T) {
	t.Parallel()

	investigator := testInvestigator()
	calm := UpdateHypotheses(investigator.HypothesesLogOdds, testEvidence(), investigator, 0.0, "")
	pressured := UpdateHypotheses(investigator.HypothesesLogOdds, testEvidence(), investigator, 2.0, "")

	require.Greater(t, pressured[models.HypothesisPlayerGuilt], calm[models.HypothesisPlayerGuilt])
}

func TestUpdateHypothesesCompromiseDampens(t *testing.T) {
	t.Parallel()

	clean := testInvestigator()
	baseline := UpdateHypotheses(clean.HypothesesLogOdds, testEvidence(), clean, 0.0, "")

	bought := testInvestigator()
	bought.Compromised = 1.0
	bought.CorruptionSusceptibility = 1.0
	dampened := UpdateHypotheses(bought.HypothesesLogOdds, testEvidence(), bought, 0.0, "")

	require.Less(t, dampened[models.HypothesisPlayerGuilt], baseline[models.HypothesisPlayerGuilt])
}

func TestUpdateHypothesesClampsToBounds(t *testing.T) {
	t.Parallel()

	investigator := testInvestigator()
	investigator.HypothesesLogOdds[models.HypothesisPlayerGuilt] = catalog.MaxLogOdds
	investigator.LearningRate = 10.0

	updated := UpdateHypotheses(investigator.HypothesesLogOdds, testEvidence(), investigator, 2.0, "")
	require.Equal(t, catalog.MaxLogOdds, updated[models.HypothesisPlayerGuilt])
}

func TestUpdateHypothesesInitializesMissingHypothesis(t *testing.T) {
	t.Parallel()

	investigator := testInvestigator()
	delete(investigator.HypothesesLogOdds, models.HypothesisAlternativeActor)

	updated := UpdateHypotheses(investigator.HypothesesLogOdds, testEvidence(), investigator, 0.0, "")
	require.Contains(t, updated, models.HypothesisAlternativeActor)
	require.Negative(t, updated[models.HypothesisAlternativeActor])
}

func TestUpdateHypothesesBiasShiftsDelta(t *testing.T) {
	t.Parallel()

	neutral := testInvestigator()
	baseline := UpdateHypotheses(neutral.HypothesesLogOdds, testEvidence(), neutral, 0.0, "")

	biased := testInvestigator()
	biased.Biases = map[string]float64{models.HypothesisPlayerGuilt: 0.08}
	shifted := UpdateHypotheses(biased.HypothesesLogOdds, testEvidence(), biased, 0.0, "")

	require.InDelta(t, baseline[models.HypothesisPlayerGuilt]+0.08*0.05,
		shifted[models.HypothesisPlayerGuilt], 1e-12)
}
