package models

// Canonical hypothesis names. The hypothesis key set is closed per case
// configuration; these three are the ones every built-in crime type tracks.
const (
	HypothesisPlayerGuilt      = "player_committed_crime"
	HypothesisAlternativeActor = "alternative_actor"
	HypothesisNonCriminal      = "non_criminal_explanation"
)

// PlayerState holds the player's fungible resources, action history, and
// cumulative risk exposure. RiskExposure only ever increases.
type PlayerState struct {
	Resources    map[string]float64 `json:"resources"`
	ActionsTaken []string           `json:"actions_taken"`
	RiskExposure float64            `json:"risk_exposure"`
}

// InvestigatorState is the hidden model of the investigator. It is owned by
// the game state and mutated only by the investigator turn and the passive
// decay step.
type InvestigatorState struct {
	HypothesesLogOdds        map[string]float64 `json:"hypotheses_log_odds"`
	Skills                   map[string]float64 `json:"skills"`
	Biases                   map[string]float64 `json:"biases"`
	Patience                 float64            `json:"patience"`
	Fatigue                  float64            `json:"fatigue"`
	LearningRate             float64            `json:"learning_rate"`
	CorruptionSusceptibility float64            `json:"corruption_susceptibility"`
	Compromised              float64            `json:"compromised"`
	ActionHistory            []string           `json:"action_history"`
}

// CaseData is the immutable per-session case description derived from a crime
// type configuration at creation time.
type CaseData struct {
	CrimeType            string    `json:"crime_type"`
	Timeline             []string  `json:"timeline"`
	AllowedEvidenceTypes []string  `json:"allowed_evidence_types"`
	TurnPressureCurve    []float64 `json:"turn_pressure_curve"`
}

// AllowsEvidenceType reports whether the case permits the given evidence
// category.
func (c CaseData) AllowsEvidenceType(category string) bool {
	for _, allowed := range c.AllowedEvidenceTypes {
		if allowed == category {
			return true
		}
	}
	return false
}
