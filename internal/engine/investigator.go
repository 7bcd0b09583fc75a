package engine

import (
	"math"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/models"
	"github.com/myrjola/alibi/internal/odds"
)

// InvestigatorTurnResult is the result payload for one investigator action
// step.
type InvestigatorTurnResult struct {
	Action                string
	DiscoveredEvidenceIDs []string
}

// chooseInvestigatorAction selects one action from the fixed catalog using a
// scored heuristic over observable system signals only. It never reads player
// intent or resources.
//
// A small uniform jitter breaks scoring ties reproducibly; exact ties fall to
// the first-seen catalog order.
func chooseInvestigatorAction(state *models.GameState) catalog.InvestigatorAction {
	investigator := state.Investigator
	playerConfidence := odds.LogOddsToProbability(investigator.HypothesesLogOdds[models.HypothesisPlayerGuilt])
	uncertainty := 1.0 - math.Abs(playerConfidence-0.5)*2.0

	activeCount := 0
	for _, item := range state.Evidence.All() {
		if item.Active {
			activeCount++
		}
	}
	visibleCount := len(state.VisibleEvidence())
	investigationNeed := 1.0 - float64(visibleCount)/math.Max(float64(activeCount), 1.0)

	history := investigator.ActionHistory
	var best catalog.InvestigatorAction
	bestScore := math.Inf(-1)

	for _, action := range catalog.InvestigatorActions {
		score := action.BaseDiscovery*0.70 +
			skillValue(investigator.Skills, action.SkillFocus)*0.55 +
			state.PublicPressure*action.PressureWeight +
			uncertainty*0.22 -
			investigator.Fatigue*action.FatigueCost*0.70
		if len(action.TargetCategories) > 0 {
			score += investigationNeed * 0.24
		}
		if action.Name == catalog.PressBriefingName {
			score += math.Max(state.PublicPressure-1.0, 0.0) * 0.70
			score -= 0.32 + investigationNeed*0.18
		}
		if len(history) >= 1 && history[len(history)-1] == action.Name {
			score -= 0.14
		}
		if len(history) >= 2 && history[len(history)-2] == action.Name {
			score -= 0.10
		}
		score += state.Rand.Float64() * 0.03

		if score > bestScore {
			best = action
			bestScore = score
		}
	}

	return best
}

// performInvestigatorTurn executes one investigator action: pays its fatigue
// and pressure effects, then probabilistically reveals matching evidence,
// feeding every reveal into the belief update.
func performInvestigatorTurn(state *models.GameState) InvestigatorTurnResult {
	action := chooseInvestigatorAction(state)
	investigator := &state.Investigator
	investigator.ActionHistory = append(investigator.ActionHistory, action.Name)
	investigator.Fatigue = odds.Clamp(
		investigator.Fatigue+action.FatigueCost-investigator.Patience*0.03, 0.0, 2.0)
	state.PublicPressure = odds.Clamp(
		state.PublicPressure+action.PressureDelta, 0.0, catalog.MaxPublicPressure)

	var discoveredIDs []string
	if len(action.TargetCategories) > 0 {
		for _, evidence := range state.Evidence.All() {
			if evidence.Discovered || !evidence.Active {
				continue
			}
			if !containsCategory(action.TargetCategories, evidence.Category) {
				continue
			}

			chance := discoveryChance(state, *investigator, action, evidence)
			if state.Rand.Float64() < chance {
				evidence.Discovered = true
				discoveredIDs = append(discoveredIDs, evidence.ID)
				investigator.HypothesesLogOdds = UpdateHypotheses(
					investigator.HypothesesLogOdds,
					evidence,
					*investigator,
					state.PublicPressure,
					action.SkillFocus,
				)
			}
		}
	}

	return InvestigatorTurnResult{Action: action.Name, DiscoveredEvidenceIDs: discoveredIDs}
}

// discoveryChance combines evidence detectability with the action's discovery
// rate, investigator skill and condition, and world noise/pressure. Capped at
// 0.95 so no roll is a certainty.
func discoveryChance(
	state *models.GameState,
	investigator models.InvestigatorState,
	action catalog.InvestigatorAction,
	evidence *models.Evidence,
) float64 {
	skill := odds.Clamp(skillValue(investigator.Skills, action.SkillFocus), 0.1, 1.5)
	chance := evidence.Detectability * action.BaseDiscovery
	chance *= 0.70 + skill*0.60
	chance *= 1.0 / (1.0 + state.NoiseLevel*0.35)
	chance *= 1.0 - odds.Clamp(investigator.Compromised*investigator.CorruptionSusceptibility*0.40, 0.0, 0.8)
	chance *= 1.0 - odds.Clamp(investigator.Fatigue*0.25, 0.0, 0.5)
	chance *= 1.0 + odds.Clamp(state.PublicPressure, 0.0, 2.0)*0.05
	return odds.Clamp(chance, 0.0, 0.95)
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
