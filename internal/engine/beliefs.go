// Package engine implements the deterministic investigation simulation: the
// Bayesian-style belief update, the investigator turn and evidence discovery
// model, player action resolution with backfires, and the turn orchestrator.
//
// All randomness flows through the single generator owned by the game state,
// drawn in a fixed order per turn, so that two runs from the same seed and
// scripted player actions produce identical turn sequences.
package engine

import (
	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/models"
	"github.com/myrjola/alibi/internal/odds"
)

// categoryToSkill maps each evidence category to the skill domain that
// primarily interprets it.
var categoryToSkill = map[string]string{
	catalog.CategoryPhysical:       catalog.SkillForensic,
	catalog.CategoryDigital:        catalog.SkillAnalytical,
	catalog.CategoryTestimonial:    catalog.SkillSocial,
	catalog.CategoryCircumstantial: catalog.SkillAnalytical,
}

func primarySkillFor(category string) string {
	if skill, ok := categoryToSkill[category]; ok {
		return skill
	}
	return catalog.SkillAnalytical
}

func skillValue(skills map[string]float64, name string) float64 {
	if value, ok := skills[name]; ok {
		return value
	}
	return 0.5
}

// UpdateHypotheses applies one newly discovered evidence item to the
// hypothesis log-odds and returns the updated mapping.
//
// The influence of the evidence is weighted by its reliability and current
// credibility, the relevant investigator skill (with a bonus when the acting
// skill focus matches), public pressure, and how compromised the investigator
// is. Hypotheses the evidence names but the mapping lacks are initialized at
// zero before the update. Every resulting value is clamped into
// [MinLogOdds, MaxLogOdds].
func UpdateHypotheses(
	hypotheses map[string]float64,
	evidence *models.Evidence,
	investigator models.InvestigatorState,
	publicPressure float64,
	actionSkillFocus string,
) map[string]float64 {
	updated := make(map[string]float64, len(hypotheses))
	for name, value := range hypotheses {
		updated[name] = value
	}

	primarySkillName := primarySkillFor(evidence.Category)
	primarySkill := odds.Clamp(skillValue(investigator.Skills, primarySkillName), 0.1, 1.5)
	focusBonus := 1.0
	if actionSkillFocus == primarySkillName {
		focusBonus = 1.10
	}
	pressureFactor := 1.0 + odds.Clamp(publicPressure, 0.0, 2.0)*0.08
	corruptionPenalty := 1.0 - odds.Clamp(
		investigator.Compromised*investigator.CorruptionSusceptibility*0.25, 0.0, 0.8)
	interpretationStrength := evidence.BaseReliability *
		evidence.CurrentCredibility *
		primarySkill *
		focusBonus *
		pressureFactor *
		corruptionPenalty

	for hypothesis, impact := range evidence.HypothesisImpacts {
		if _, ok := updated[hypothesis]; !ok {
			updated[hypothesis] = 0.0
		}
		biasAdjustment := investigator.Biases[hypothesis] * 0.05
		delta := investigator.LearningRate*interpretationStrength*impact + biasAdjustment
		updated[hypothesis] = odds.Clamp(updated[hypothesis]+delta, catalog.MinLogOdds, catalog.MaxLogOdds)
	}

	return updated
}
