// Package engine implements the turn-based investigation simulation: a
// hidden investigator accumulates belief about the player's guilt while the
// player spends resources on evidence tampering. All stochastic behavior
// flows through the single generator owned by the game state, so two engines
// created from the same seed and fed the same actions produce identical
// histories.
package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/models"
	"github.com/myrjola/alibi/internal/odds"
	"github.com/myrjola/alibi/internal/random"
)

const defaultMaxTurns = 20

// Outcome is the terminal/non-terminal condition at one point in the
// simulation.
type Outcome struct {
	Ended      bool   `json:"ended"`
	PlayerLost bool   `json:"player_lost"`
	Reason     string `json:"reason"`
}

// Outcome reasons in precedence order.
const (
	ReasonOngoing            = "ongoing"
	ReasonConfidenceExceeded = "confidence_threshold_exceeded"
	ReasonPressureOverload   = "public_pressure_overload"
	ReasonMaxTurnsReached    = "max_turns_reached"
)

// TurnReport summarizes one completed turn.
type TurnReport struct {
	Turn                  int      `json:"turn"`
	Day                   int      `json:"day"`
	InvestigatorAction    string   `json:"investigator_action"`
	DiscoveredEvidenceIDs []string `json:"discovered_evidence_ids"`
	PlayerActionRequested string   `json:"player_action_requested"`
	PlayerActionResolved  string   `json:"player_action_resolved"`
	PlayerActionSuccess   bool     `json:"player_action_success"`
	PlayerActionDetails   string   `json:"player_action_details"`
	PublicPressure        float64  `json:"public_pressure"`
	NoiseLevel            float64  `json:"noise_level"`
	VisibleEvidenceCount  int      `json:"visible_evidence_count"`
	Outcome               Outcome  `json:"outcome"`
}

// PlayerPolicy chooses the player action name for the coming turn. It
// receives the full game state read-only; mutating it breaks determinism.
type PlayerPolicy func(state *models.GameState) string

// Engine owns simulation state and executes deterministic turn progression.
// It is not safe for concurrent use; callers serialize access.
type Engine struct {
	maxTurns                int
	lossConfidenceThreshold float64
	state                   *models.GameState
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMaxTurns overrides the default turn limit.
func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) {
		e.maxTurns = maxTurns
	}
}

// WithLossConfidenceThreshold overrides the guilt-probability threshold at
// which the investigation closes against the player.
func WithLossConfidenceThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.lossConfidenceThreshold = threshold
	}
}

// New creates an engine for one of the built-in crime types.
func New(crimeType string, seed uint64, opts ...Option) (*Engine, error) {
	config, err := catalog.CrimeTypeByName(crimeType)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return NewFromConfig(config, seed, opts...), nil
}

// NewFromConfig creates an engine from an explicit crime type configuration,
// such as one loaded from a scenario file.
func NewFromConfig(config catalog.CrimeType, seed uint64, opts ...Option) *Engine {
	e := &Engine{
		maxTurns:                defaultMaxTurns,
		lossConfidenceThreshold: catalog.LossConfidenceThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = buildInitialState(config, seed, e.maxTurns)
	return e
}

// Restore wraps a previously serialized game state in a new engine. The turn
// limit is recovered from the case timeline; options may override it.
func Restore(state *models.GameState, opts ...Option) *Engine {
	e := &Engine{
		maxTurns:                len(state.Case.Timeline),
		lossConfidenceThreshold: catalog.LossConfidenceThreshold,
		state:                   state,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State exposes the underlying game state for serialization and read-only
// inspection.
func (e *Engine) State() *models.GameState {
	return e.state
}

// MaxTurns returns the configured turn limit.
func (e *Engine) MaxTurns() int {
	return e.maxTurns
}

// Step advances one turn: pressure curve, investigator phase with evidence
// discovery, player phase, passive decay, then outcome evaluation.
func (e *Engine) Step(playerAction string) TurnReport {
	state := e.state
	state.Turn++
	state.Day++
	e.applyTurnPressure()

	investigatorResult := performInvestigatorTurn(state)
	playerResult := applyPlayerAction(state, playerAction)
	e.applyPassiveDynamics()
	outcome := e.EvaluateOutcome()

	return TurnReport{
		Turn:                  state.Turn,
		Day:                   state.Day,
		InvestigatorAction:    investigatorResult.Action,
		DiscoveredEvidenceIDs: investigatorResult.DiscoveredEvidenceIDs,
		PlayerActionRequested: playerResult.Requested,
		PlayerActionResolved:  playerResult.Resolved,
		PlayerActionSuccess:   playerResult.Success,
		PlayerActionDetails:   playerResult.Details,
		PublicPressure:        round4(state.PublicPressure),
		NoiseLevel:            round4(state.NoiseLevel),
		VisibleEvidenceCount:  len(state.VisibleEvidence()),
		Outcome:               outcome,
	}
}

// Run executes repeated turns using the supplied player policy. A
// non-positive turns value runs up to the engine's turn limit. Run stops as
// soon as the outcome is terminal, including before the first turn when the
// restored state is already terminal.
func (e *Engine) Run(policy PlayerPolicy, turns int) ([]TurnReport, Outcome) {
	limit := turns
	if limit <= 0 {
		limit = e.maxTurns
	}
	var reports []TurnReport
	outcome := e.EvaluateOutcome()
	for len(reports) < limit && !outcome.Ended {
		action := policy(e.state)
		report := e.Step(action)
		reports = append(reports, report)
		outcome = report.Outcome
	}
	return reports, outcome
}

// EvaluateOutcome checks the loss and exit conditions in fixed precedence:
// investigator confidence, then pressure overload, then the turn limit.
func (e *Engine) EvaluateOutcome() Outcome {
	suspicion := odds.LogOddsToProbability(
		e.state.Investigator.HypothesesLogOdds[models.HypothesisPlayerGuilt])
	if suspicion >= e.lossConfidenceThreshold {
		return Outcome{Ended: true, PlayerLost: true, Reason: ReasonConfidenceExceeded}
	}
	if e.state.PublicPressure >= catalog.MaxPublicPressure {
		return Outcome{Ended: true, PlayerLost: true, Reason: ReasonPressureOverload}
	}
	if e.state.Turn >= e.maxTurns {
		return Outcome{Ended: true, PlayerLost: false, Reason: ReasonMaxTurnsReached}
	}
	return Outcome{Reason: ReasonOngoing}
}

// applyTurnPressure raises public pressure along the crime-specific curve.
// Past the end of the curve the last value applies each turn.
func (e *Engine) applyTurnPressure() {
	curve := e.state.Case.TurnPressureCurve
	index := e.state.Turn - 1
	if index < 0 {
		index = 0
	}
	if index > len(curve)-1 {
		index = len(curve) - 1
	}
	e.state.PublicPressure = odds.Clamp(
		e.state.PublicPressure+curve[index], 0.0, catalog.MaxPublicPressure)
}

// applyPassiveDynamics applies the deterministic once-per-turn decay of
// investigator compromise, fatigue, and world noise.
func (e *Engine) applyPassiveDynamics() {
	investigator := &e.state.Investigator
	investigator.Compromised = odds.Clamp(investigator.Compromised-0.03, 0.0, 1.0)
	investigator.Fatigue = odds.Clamp(investigator.Fatigue-0.02, 0.0, 2.0)
	e.state.NoiseLevel = odds.Clamp(e.state.NoiseLevel*0.98, 0.0, catalog.MaxNoiseLevel)
}

// buildInitialState draws investigator traits from the seeded generator in a
// fixed order. Changing the draw order changes every seeded playthrough, so
// additions must append, never reorder.
func buildInitialState(config catalog.CrimeType, seed uint64, maxTurns int) *models.GameState {
	rng := random.NewSource(seed)

	timeline := make([]string, maxTurns)
	for index := range timeline {
		timeline[index] = fmt.Sprintf("turn_%d", index+1)
	}
	caseData := models.CaseData{
		CrimeType:            config.Name,
		Timeline:             timeline,
		AllowedEvidenceTypes: append([]string(nil), config.AllowedEvidenceTypes...),
		TurnPressureCurve:    append([]float64(nil), config.TurnPressureCurve...),
	}

	registry := models.NewEvidenceRegistry()
	for _, template := range config.EvidenceTemplates {
		impacts := make(map[string]float64, len(template.HypothesisImpacts))
		for name, impact := range template.HypothesisImpacts {
			impacts[name] = impact
		}
		// Registry ids are namespaced by crime type so scenario-loaded cases
		// cannot collide with dynamically generated evidence.
		_ = registry.Add(&models.Evidence{
			ID:                 config.Name + "_" + template.ID,
			Category:           template.Category,
			BaseReliability:    template.BaseReliability,
			Detectability:      template.Detectability,
			Manipulability:     template.Manipulability,
			CurrentCredibility: template.CurrentCredibility,
			Discovered:         false,
			Active:             true,
			HypothesisImpacts:  impacts,
		})
	}

	player := models.PlayerState{
		Resources: map[string]float64{
			"money":     12.0,
			"influence": 8.0,
			"focus":     10.0,
		},
	}

	return &models.GameState{
		Turn:           0,
		Day:            0,
		Case:           caseData,
		Evidence:       registry,
		Player:         player,
		Investigator:   buildInvestigatorState(config.BaselineHypotheses, rng),
		PublicPressure: config.DefaultPublicPressure,
		NoiseLevel:     0.0,
		Seed:           seed,
		Rand:           rng,
	}
}

// buildInvestigatorState draws skills, biases, and temperament. Biases are
// drawn in sorted hypothesis-name order to keep the draw sequence independent
// of map iteration.
func buildInvestigatorState(baseline map[string]float64, rng *random.Source) models.InvestigatorState {
	hypotheses := make(map[string]float64, len(baseline))
	for name, value := range baseline {
		hypotheses[name] = value
	}

	skills := map[string]float64{
		catalog.SkillForensic:   round4(0.55 + rng.Float64()*0.35),
		catalog.SkillSocial:     round4(0.50 + rng.Float64()*0.35),
		catalog.SkillAnalytical: round4(0.58 + rng.Float64()*0.30),
	}

	biases := make(map[string]float64, len(hypotheses))
	for _, name := range sortedKeys(hypotheses) {
		biases[name] = round4(rng.Uniform(-0.08, 0.08))
	}

	return models.InvestigatorState{
		HypothesesLogOdds:        hypotheses,
		Skills:                   skills,
		Biases:                   biases,
		Patience:                 round4(0.45 + rng.Float64()*0.45),
		Fatigue:                  0.0,
		LearningRate:             round4(0.58 + rng.Float64()*0.20),
		CorruptionSusceptibility: round4(0.20 + rng.Float64()*0.35),
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func round4(value float64) float64 {
	return math.Round(value*10000) / 10000
}
