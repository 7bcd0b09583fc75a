package engine

import (
	"fmt"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/models"
	"github.com/myrjola/alibi/internal/odds"
)

// PlayerActionResult is the result payload for one player action step. A
// degraded request (unknown identifier or unaffordable action) is a
// successful call whose Resolved and Details fields communicate the fallback.
type PlayerActionResult struct {
	Requested string
	Resolved  string
	Success   bool
	Details   string
}

// applyPlayerAction validates affordability, resolves risk-weighted
// success/failure, and applies the action's effect or backfire.
func applyPlayerAction(state *models.GameState, requested string) PlayerActionResult {
	resolution := catalog.ResolvePlayerAction(requested)
	action := resolution.Action
	details := "ok"

	if !canPayCosts(state.Player.Resources, action.Costs) {
		action = catalog.DoNothing()
		details = "insufficient_resources"
	}

	payCosts(state.Player.Resources, action.Costs)
	state.Player.ActionsTaken = append(state.Player.ActionsTaken, action.Name)
	state.NoiseLevel = odds.Clamp(state.NoiseLevel+action.NoiseDelta, 0.0, catalog.MaxNoiseLevel)

	success := true
	if action.Kind != catalog.ActionDoNothing {
		adjustedRisk := odds.Clamp(
			action.Risk+state.NoiseLevel*0.05+state.PublicPressure*0.04, 0.0, 0.95)
		success = state.Rand.Float64() >= adjustedRisk
		state.Player.RiskExposure = odds.Clamp(
			state.Player.RiskExposure+adjustedRisk*0.10, 0.0, 3.0)
	}

	effectDetails := resolveEffect(state, action.Kind, success)
	if details != "ok" {
		effectDetails = details + "; " + effectDetails
	}
	return PlayerActionResult{
		Requested: requested,
		Resolved:  action.Name,
		Success:   success,
		Details:   effectDetails,
	}
}

// resolveEffect dispatches to the per-kind handler. The switch is exhaustive
// over the closed action catalog.
func resolveEffect(state *models.GameState, kind catalog.ActionKind, success bool) string {
	switch kind {
	case catalog.ActionRemoveEvidence:
		return effectRemoveEvidence(state, success)
	case catalog.ActionPlantEvidence:
		return effectPlantEvidence(state, success)
	case catalog.ActionBribeActor:
		return effectBribeActor(state, success)
	case catalog.ActionForgeRecord:
		return effectForgeRecord(state, success)
	case catalog.ActionLeakToMedia:
		return effectLeakToMedia(state, success)
	case catalog.ActionDoNothing:
		state.NoiseLevel = odds.Clamp(state.NoiseLevel-0.08, 0.0, catalog.MaxNoiseLevel)
		return "standby"
	}
	// Unreachable while the catalog stays closed.
	return "standby"
}

func effectRemoveEvidence(state *models.GameState, success bool) string {
	if success {
		var target *models.Evidence
		for _, item := range state.Evidence.All() {
			if !item.Active || item.Discovered {
				continue
			}
			if target == nil || item.Detectability*item.Manipulability > target.Detectability*target.Manipulability {
				target = item
			}
		}
		if target != nil {
			concealmentStrength := odds.Clamp(0.18+target.Manipulability*0.45, 0.05, 0.65)
			target.Detectability = odds.Clamp(target.Detectability*(1.0-concealmentStrength), 0.04, 1.0)
			target.CurrentCredibility = odds.Clamp(
				target.CurrentCredibility*(1.0-concealmentStrength*0.35), 0.05, 1.0)
			if state.Rand.Float64() < target.Manipulability*0.30 {
				target.Active = false
				return "concealed:" + target.ID + ":removed"
			}
			return "concealed:" + target.ID + ":reduced"
		}

		var visibleTarget *models.Evidence
		for _, item := range state.VisibleEvidence() {
			if visibleTarget == nil || item.CurrentCredibility > visibleTarget.CurrentCredibility {
				visibleTarget = item
			}
		}
		if visibleTarget != nil {
			visibleTarget.CurrentCredibility = odds.Clamp(visibleTarget.CurrentCredibility*0.65, 0.05, 1.0)
			return "degraded:" + visibleTarget.ID
		}
		return "no_target"
	}

	addGeneratedEvidence(state, generatedEvidence{
		prefix:          "tamper_trace",
		category:        catalog.CategoryPhysical,
		baseReliability: 0.74,
		detectability:   0.77,
		manipulability:  0.20,
		credibility:     0.74,
		impacts: map[string]float64{
			models.HypothesisPlayerGuilt:      0.62,
			models.HypothesisAlternativeActor: -0.20,
		},
	})
	state.PublicPressure = odds.Clamp(state.PublicPressure+0.12, 0.0, catalog.MaxPublicPressure)
	return "backfire:tamper_trace_added"
}

func effectPlantEvidence(state *models.GameState, success bool) string {
	if success {
		category := catalog.CategoryCircumstantial
		if state.Case.AllowsEvidenceType(catalog.CategoryDigital) && state.Rand.Float64() < 0.4 {
			category = catalog.CategoryDigital
		}
		planted := addGeneratedEvidence(state, generatedEvidence{
			prefix:          "planted",
			category:        category,
			baseReliability: 0.35 + state.Rand.Float64()*0.18,
			detectability:   0.68,
			manipulability:  0.74,
			credibility:     0.45 + state.Rand.Float64()*0.20,
			impacts: map[string]float64{
				models.HypothesisPlayerGuilt:      -0.34,
				models.HypothesisAlternativeActor: 0.40,
				models.HypothesisNonCriminal:      0.16,
			},
		})
		return "planted:" + planted.ID
	}

	addGeneratedEvidence(state, generatedEvidence{
		prefix:          "plant_trace",
		category:        catalog.CategoryCircumstantial,
		baseReliability: 0.71,
		detectability:   0.79,
		manipulability:  0.25,
		credibility:     0.71,
		impacts: map[string]float64{
			models.HypothesisPlayerGuilt:      0.58,
			models.HypothesisAlternativeActor: -0.14,
		},
	})
	state.PublicPressure = odds.Clamp(state.PublicPressure+0.10, 0.0, catalog.MaxPublicPressure)
	return "backfire:plant_trace_added"
}

func effectBribeActor(state *models.GameState, success bool) string {
	if success {
		gain := 0.18 + 0.20*state.Investigator.CorruptionSusceptibility
		state.Investigator.Compromised = odds.Clamp(state.Investigator.Compromised+gain, 0.0, 1.0)
		state.PublicPressure = odds.Clamp(state.PublicPressure-0.05, 0.0, catalog.MaxPublicPressure)
		return fmt.Sprintf("investigator_compromised:+%.2f", gain)
	}

	addGeneratedEvidence(state, generatedEvidence{
		prefix:          "bribe_trace",
		category:        catalog.CategoryTestimonial,
		baseReliability: 0.80,
		detectability:   0.83,
		manipulability:  0.22,
		credibility:     0.80,
		impacts: map[string]float64{
			models.HypothesisPlayerGuilt:      0.72,
			models.HypothesisAlternativeActor: -0.24,
		},
	})
	state.PublicPressure = odds.Clamp(state.PublicPressure+0.22, 0.0, catalog.MaxPublicPressure)
	return "backfire:bribe_trace_added"
}

func effectForgeRecord(state *models.GameState, success bool) string {
	var target *models.Evidence
	for _, item := range state.Evidence.All() {
		if !item.Active || item.Discovered || item.Category != catalog.CategoryDigital {
			continue
		}
		if target == nil || item.Manipulability > target.Manipulability {
			target = item
		}
	}

	if success {
		if target != nil {
			target.CurrentCredibility = odds.Clamp(
				target.CurrentCredibility-0.30*target.Manipulability, 0.05, 1.0)
			target.HypothesisImpacts[models.HypothesisPlayerGuilt] *= 0.65
			target.HypothesisImpacts[models.HypothesisAlternativeActor] += 0.18
			return "forged:" + target.ID
		}
		generated := addGeneratedEvidence(state, generatedEvidence{
			prefix:          "forged_record",
			category:        catalog.CategoryDigital,
			baseReliability: 0.40,
			detectability:   0.70,
			manipulability:  0.82,
			credibility:     0.42,
			impacts: map[string]float64{
				models.HypothesisPlayerGuilt:      -0.28,
				models.HypothesisAlternativeActor: 0.24,
				models.HypothesisNonCriminal:      0.12,
			},
		})
		return "forged:" + generated.ID
	}

	addGeneratedEvidence(state, generatedEvidence{
		prefix:          "audit_anomaly",
		category:        catalog.CategoryDigital,
		baseReliability: 0.76,
		detectability:   0.82,
		manipulability:  0.20,
		credibility:     0.76,
		impacts: map[string]float64{
			models.HypothesisPlayerGuilt:      0.66,
			models.HypothesisAlternativeActor: -0.20,
		},
	})
	state.PublicPressure = odds.Clamp(state.PublicPressure+0.16, 0.0, catalog.MaxPublicPressure)
	return "backfire:audit_anomaly_added"
}

func effectLeakToMedia(state *models.GameState, success bool) string {
	if success {
		state.PublicPressure = odds.Clamp(state.PublicPressure-0.24, 0.0, catalog.MaxPublicPressure)
		state.NoiseLevel = odds.Clamp(state.NoiseLevel+0.15, 0.0, catalog.MaxNoiseLevel)
		return "pressure_reduced"
	}

	addGeneratedEvidence(state, generatedEvidence{
		prefix:          "media_trace",
		category:        catalog.CategoryTestimonial,
		baseReliability: 0.68,
		detectability:   0.73,
		manipulability:  0.26,
		credibility:     0.68,
		impacts: map[string]float64{
			models.HypothesisPlayerGuilt:      0.46,
			models.HypothesisAlternativeActor: -0.12,
		},
	})
	state.PublicPressure = odds.Clamp(state.PublicPressure+0.36, 0.0, catalog.MaxPublicPressure)
	return "backfire:media_trace_added"
}

func canPayCosts(resources, costs map[string]float64) bool {
	for name, required := range costs {
		if resources[name] < required {
			return false
		}
	}
	return true
}

func payCosts(resources, costs map[string]float64) {
	for name, required := range costs {
		resources[name] = round4(resources[name] - required)
	}
}

// generatedEvidence describes an evidence item spawned at runtime by a player
// action's success or backfire.
type generatedEvidence struct {
	prefix          string
	category        string
	baseReliability float64
	detectability   float64
	manipulability  float64
	credibility     float64
	impacts         map[string]float64
}

// addGeneratedEvidence creates a dynamic evidence item. The category is
// coerced into the case's allowed set, and the id is made registry-unique by
// linear probing on the index suffix.
func addGeneratedEvidence(state *models.GameState, spec generatedEvidence) *models.Evidence {
	category := spec.category
	if !state.Case.AllowsEvidenceType(category) {
		category = catalog.CategoryCircumstantial
	}
	if !state.Case.AllowsEvidenceType(category) {
		category = state.Case.AllowedEvidenceTypes[0]
	}

	impacts := make(map[string]float64, len(spec.impacts))
	for name, impact := range spec.impacts {
		impacts[name] = impact
	}

	evidence := &models.Evidence{
		ID:                 nextDynamicEvidenceID(state, spec.prefix),
		Category:           category,
		BaseReliability:    odds.Clamp(spec.baseReliability, 0.05, 1.0),
		Detectability:      odds.Clamp(spec.detectability, 0.05, 1.0),
		Manipulability:     odds.Clamp(spec.manipulability, 0.0, 1.0),
		CurrentCredibility: odds.Clamp(spec.credibility, 0.05, 1.0),
		Discovered:         false,
		Active:             true,
		HypothesisImpacts:  impacts,
	}
	// The id was probed unique above, so Add cannot fail.
	_ = state.Evidence.Add(evidence)
	return evidence
}

func nextDynamicEvidenceID(state *models.GameState, prefix string) string {
	for index := 1; ; index++ {
		candidate := fmt.Sprintf("%s_%d_%d", prefix, state.Turn, index)
		if !state.Evidence.Has(candidate) {
			return candidate
		}
	}
}
