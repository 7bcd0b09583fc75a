package catalog

// ActionKind enumerates the closed player action catalog. New kinds require a
// handler in the engine's effect dispatch, which switches exhaustively over
// this enumeration.
type ActionKind uint8

const (
	ActionDoNothing ActionKind = iota
	ActionRemoveEvidence
	ActionPlantEvidence
	ActionBribeActor
	ActionForgeRecord
	ActionLeakToMedia
)

// PlayerAction defines cost/risk/noise settings for one player action.
type PlayerAction struct {
	Kind       ActionKind
	Name       string
	Costs      map[string]float64
	Risk       float64
	NoiseDelta float64
}

// DoNothingName is the identifier of the always-affordable no-op action that
// unknown or unaffordable requests degrade to.
const DoNothingName = "do_nothing"

// PlayerActions is the fixed player action catalog in first-seen order.
var PlayerActions = []PlayerAction{
	{
		Kind:       ActionRemoveEvidence,
		Name:       "remove_evidence",
		Costs:      map[string]float64{"focus": 1.0},
		Risk:       0.36,
		NoiseDelta: 0.12,
	},
	{
		Kind:       ActionPlantEvidence,
		Name:       "plant_evidence",
		Costs:      map[string]float64{"money": 2.0, "focus": 1.0},
		Risk:       0.42,
		NoiseDelta: 0.26,
	},
	{
		Kind:       ActionBribeActor,
		Name:       "bribe_actor",
		Costs:      map[string]float64{"money": 3.0, "influence": 2.0},
		Risk:       0.54,
		NoiseDelta: 0.34,
	},
	{
		Kind:       ActionForgeRecord,
		Name:       "forge_record",
		Costs:      map[string]float64{"money": 1.0, "focus": 1.5},
		Risk:       0.46,
		NoiseDelta: 0.22,
	},
	{
		Kind:       ActionLeakToMedia,
		Name:       "leak_to_media",
		Costs:      map[string]float64{"influence": 2.0},
		Risk:       0.51,
		NoiseDelta: 0.50,
	},
	{
		Kind:       ActionDoNothing,
		Name:       DoNothingName,
		Costs:      map[string]float64{},
		Risk:       0.0,
		NoiseDelta: -0.10,
	},
}

// PlayerActionByName looks up one action from the fixed catalog.
func PlayerActionByName(name string) (PlayerAction, bool) {
	for _, action := range PlayerActions {
		if action.Name == name {
			return action, true
		}
	}
	return PlayerAction{}, false
}

// DoNothing returns the no-op action.
func DoNothing() PlayerAction {
	action, _ := PlayerActionByName(DoNothingName)
	return action
}

// Resolution distinguishes a directly resolved action request from one that
// degraded to the no-op fallback. Degradation is an expected, common case and
// never an error.
type Resolution struct {
	Action   PlayerAction
	Fallback bool
	Reason   string
}

// ResolvePlayerAction maps a requested action identifier to a catalog action.
// Unknown identifiers resolve to do_nothing; the catalog is closed and
// out-of-catalog requests degrade gracefully.
func ResolvePlayerAction(requested string) Resolution {
	if action, ok := PlayerActionByName(requested); ok {
		return Resolution{Action: action}
	}
	return Resolution{Action: DoNothing(), Fallback: true, Reason: "unknown_action"}
}

// InvestigatorAction defines one investigator action profile.
type InvestigatorAction struct {
	Name             string
	SkillFocus       string
	TargetCategories []string
	BaseDiscovery    float64
	PressureWeight   float64
	FatigueCost      float64
	PressureDelta    float64
}

// PressBriefingName identifies the action with the special pressure-relief
// scoring terms.
const PressBriefingName = "press_briefing"

// InvestigatorActions is the fixed investigator action catalog. The slice
// order is the tie-break and jitter draw order, so it must stay stable.
var InvestigatorActions = []InvestigatorAction{
	{
		Name:             "survey_scene",
		SkillFocus:       SkillForensic,
		TargetCategories: []string{CategoryPhysical, CategoryCircumstantial},
		BaseDiscovery:    0.28,
		PressureWeight:   0.13,
		FatigueCost:      0.12,
		PressureDelta:    0.03,
	},
	{
		Name:             "audit_records",
		SkillFocus:       SkillAnalytical,
		TargetCategories: []string{CategoryDigital, CategoryCircumstantial},
		BaseDiscovery:    0.26,
		PressureWeight:   0.10,
		FatigueCost:      0.10,
		PressureDelta:    0.02,
	},
	{
		Name:             "interview_witnesses",
		SkillFocus:       SkillSocial,
		TargetCategories: []string{CategoryTestimonial, CategoryCircumstantial},
		BaseDiscovery:    0.24,
		PressureWeight:   0.17,
		FatigueCost:      0.14,
		PressureDelta:    0.04,
	},
	{
		Name:             PressBriefingName,
		SkillFocus:       SkillSocial,
		TargetCategories: nil,
		BaseDiscovery:    0.0,
		PressureWeight:   0.52,
		FatigueCost:      0.06,
		PressureDelta:    -0.18,
	},
}
