// Package view projects internal game state into the player-facing shape.
// The projection is deliberately lossy: hidden evidence, investigator
// internals, and raw probabilities never cross this boundary, only
// qualitative labels derived from them.
package view

import (
	"fmt"
	"strings"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/models"
)

// EvidenceItem is one piece of evidence as the player sees it.
type EvidenceItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	State    string `json:"state"`
	Summary  string `json:"summary"`
}

// TimelineItem is one event on the case timeline.
type TimelineItem struct {
	Time    string `json:"time"`
	Label   string `json:"label"`
	Details string `json:"details"`
}

// InvestigatorSignals are the qualitative tells the player can read off the
// investigation without seeing its internals.
type InvestigatorSignals struct {
	Priority    string `json:"priority"`
	Demeanour   string `json:"demeanour"`
	RecentShift string `json:"recent_shift"`
}

// Pressure carries the three qualitative pressure gauges.
type Pressure struct {
	Public        string `json:"public"`
	Institutional string `json:"institutional"`
	Personal      string `json:"personal"`
}

// VisibleState is the full player-facing projection of one game state.
type VisibleState struct {
	CaseID              string              `json:"case_id"`
	CrimeType           string              `json:"crime_type"`
	Turn                int                 `json:"turn"`
	Status              string              `json:"status"`
	Evidence            []EvidenceItem      `json:"evidence"`
	Timeline            []TimelineItem      `json:"timeline"`
	InvestigatorSignals InvestigatorSignals `json:"investigator_signals"`
	Pressure            Pressure            `json:"pressure"`
}

// ActionOption describes one player action for selection UIs.
type ActionOption struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Enabled        bool    `json:"enabled"`
	Cost           *string `json:"cost"`
	Desc           string  `json:"desc"`
	DisabledReason *string `json:"disabled_reason"`
}

// timelineWindow bounds how many timeline entries the player sees at once.
const timelineWindow = 12

// VisibleStateFrom builds the player-facing projection of state.
func VisibleStateFrom(state *models.GameState) VisibleState {
	visible := state.VisibleEvidence()
	evidenceItems := make([]EvidenceItem, 0, len(visible))
	for _, evidence := range visible {
		evidenceItems = append(evidenceItems, EvidenceItem{
			ID:       evidence.ID,
			Label:    titleCase(evidence.ID),
			Category: evidence.Category,
			State:    evidenceState(evidence),
			Summary:  evidenceSummary(evidence),
		})
	}

	var timeline []TimelineItem
	shown := state.Case.Timeline
	if len(shown) > state.Turn+1 {
		shown = shown[:state.Turn+1]
	}
	for index, event := range shown {
		timeline = append(timeline, TimelineItem{
			Time:    fmt.Sprintf("2026-02-01T%d:00:00.000Z", 20+index),
			Label:   fmt.Sprintf("turn_%d", index),
			Details: event,
		})
	}
	history := state.Investigator.ActionHistory
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	for _, action := range history {
		timeline = append(timeline, TimelineItem{
			Time:    fmt.Sprintf("2026-02-01T%d:00:00.000Z", 20+len(timeline)),
			Label:   titleCase(action),
			Details: "Investigator action: " + action,
		})
	}
	if len(timeline) > timelineWindow {
		timeline = timeline[len(timeline)-timelineWindow:]
	}

	institutional := float64(state.Turn)/float64(len(state.Case.Timeline)) +
		state.Player.RiskExposure/3.0
	personal := state.Player.RiskExposure/2.0 + state.NoiseLevel/3.0

	return VisibleState{
		CaseID:    fmt.Sprintf("case_%03d", state.Seed%1000),
		CrimeType: state.Case.CrimeType,
		Turn:      state.Turn,
		Status:    caseStatus(state, len(visible)),
		Evidence:  evidenceItems,
		Timeline:  timeline,
		InvestigatorSignals: InvestigatorSignals{
			Priority:    investigatorPriority(state),
			Demeanour:   investigatorDemeanour(state),
			RecentShift: recentShift(state),
		},
		Pressure: Pressure{
			Public:        pressureLabel(state.PublicPressure),
			Institutional: pressureLabel(institutional),
			Personal:      pressureLabel(personal),
		},
	}
}

// ActionOptionsFrom lists the player action catalog with affordability
// annotations against the current resources.
func ActionOptionsFrom(state *models.GameState) []ActionOption {
	options := make([]ActionOption, 0, len(catalog.PlayerActions))
	for _, action := range catalog.PlayerActions {
		canAfford := true
		for resource, cost := range action.Costs {
			if state.Player.Resources[resource] < cost {
				canAfford = false
			}
		}

		var cost *string
		if formatted := formatCosts(action.Costs); formatted != "" {
			cost = &formatted
		}
		var disabledReason *string
		if !canAfford {
			reason := "Insufficient resources: need " + derefOrEmpty(cost)
			disabledReason = &reason
		}

		options = append(options, ActionOption{
			ID:             action.Name,
			Label:          titleCase(action.Name),
			Enabled:        canAfford,
			Cost:           cost,
			Desc:           fmt.Sprintf("Risk: %.0f%%, Noise: %+.2f", action.Risk*100, action.NoiseDelta),
			DisabledReason: disabledReason,
		})
	}
	return options
}

func pressureLabel(pressure float64) string {
	switch {
	case pressure < 0.5:
		return "low"
	case pressure < 1.0:
		return "moderate"
	case pressure < 1.5:
		return "elevated"
	case pressure < 2.0:
		return "high"
	default:
		return "critical"
	}
}

func evidenceState(evidence *models.Evidence) string {
	if !evidence.Active {
		return "archived"
	}
	if !evidence.Discovered {
		return "logged"
	}
	switch {
	case evidence.CurrentCredibility < 0.3:
		return "suppressed"
	case evidence.CurrentCredibility < 0.6:
		return "review"
	default:
		return "surfaced"
	}
}

func evidenceSummary(evidence *models.Evidence) string {
	reliability := "uncertain"
	if evidence.CurrentCredibility > 0.6 {
		reliability = "probable"
	}
	integrity := "stable"
	switch {
	case evidence.Manipulability > 0.7:
		integrity = "contradictory"
	case evidence.Manipulability > 0.4:
		integrity = "partially contradictory"
	}
	return titleCase(reliability) + " evidence with " + integrity + " integrity profile."
}

func investigatorPriority(state *models.GameState) string {
	history := state.Investigator.ActionHistory
	if len(history) == 0 {
		return "uncertain"
	}
	switch history[len(history)-1] {
	case "survey_scene":
		return "forensics"
	case "audit_records":
		return "financial"
	case "interview_witnesses":
		return "interviews"
	case catalog.PressBriefingName:
		return "public_relations"
	default:
		return "uncertain"
	}
}

func investigatorDemeanour(state *models.GameState) string {
	investigator := state.Investigator
	switch {
	case investigator.Fatigue > 1.2:
		return "exhausted"
	case investigator.Fatigue > 0.8:
		return "impatient"
	case investigator.Compromised > 0.5:
		return "guarded"
	default:
		return "methodical"
	}
}

func recentShift(state *models.GameState) string {
	history := state.Investigator.ActionHistory
	if len(history) < 2 {
		return "uncertain"
	}
	recent, previous := history[len(history)-1], history[len(history)-2]
	switch {
	case recent == previous:
		return "attention_narrowing"
	case recent == catalog.PressBriefingName:
		return "risk_avoidance"
	default:
		return "scope_balancing"
	}
}

func caseStatus(state *models.GameState, visibleCount int) string {
	switch {
	case state.Turn >= len(state.Case.Timeline):
		return "closed"
	case state.PublicPressure > 2.0:
		return "cold"
	case state.NoiseLevel > 2.0:
		return "paused"
	case visibleCount > 0:
		return "active"
	default:
		return "contained"
	}
}

// resourceOrder fixes cost display order; maps have no stable iteration.
var resourceOrder = []string{"money", "influence", "focus"}

func formatCosts(costs map[string]float64) string {
	var parts []string
	for _, resource := range resourceOrder {
		if cost, ok := costs[resource]; ok {
			parts = append(parts, fmt.Sprintf("%.0f %s", cost, resource))
		}
	}
	return strings.Join(parts, ", ")
}

func titleCase(identifier string) string {
	words := strings.Fields(strings.ReplaceAll(identifier, "_", " "))
	for index, word := range words {
		words[index] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
