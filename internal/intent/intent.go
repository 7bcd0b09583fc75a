// Package intent maps free player text to one of the supported game actions.
// Mapping never executes anything; whatever the text says, the only possible
// outputs are members of the fixed action catalog.
package intent

import (
	"strings"

	"github.com/myrjola/alibi/internal/catalog"
)

// Intent is a resolved player intention with mapper confidence in [0, 1].
type Intent struct {
	Action     string         `json:"intent"`
	Params     map[string]any `json:"params"`
	Confidence float64        `json:"confidence"`
}

// Mapper turns free text into a supported intent. Implementations must
// degrade to do_nothing rather than fail: every input maps to something.
type Mapper interface {
	MapText(text string) Intent
}

// RuleMapper resolves intents with fixed keyword rules only.
type RuleMapper struct{}

// NewRuleMapper returns the keyword-rule mapper.
func NewRuleMapper() RuleMapper {
	return RuleMapper{}
}

// MapText normalizes the text and applies the keyword rules in fixed order.
// Unrecognized text is a confident do_nothing, not a low-confidence guess.
func (RuleMapper) MapText(text string) Intent {
	normalized := normalize(text)
	if normalized == "" {
		return doNothingIntent()
	}
	if _, ok := catalog.PlayerActionByName(normalized); ok {
		return Intent{Action: normalized, Params: map[string]any{}, Confidence: 1.0}
	}

	keyword := func(action string) Intent {
		return Intent{Action: action, Params: map[string]any{}, Confidence: 0.9}
	}
	switch {
	case strings.Contains(normalized, "remove") && strings.Contains(normalized, "evidence"):
		return keyword("remove_evidence")
	case strings.Contains(normalized, "plant") && strings.Contains(normalized, "evidence"):
		return keyword("plant_evidence")
	case strings.Contains(normalized, "bribe"):
		return keyword("bribe_actor")
	case strings.Contains(normalized, "forge") && strings.Contains(normalized, "record"):
		return keyword("forge_record")
	case strings.Contains(normalized, "leak") && strings.Contains(normalized, "media"):
		return keyword("leak_to_media")
	}
	return doNothingIntent()
}

func doNothingIntent() Intent {
	return Intent{Action: catalog.DoNothingName, Params: map[string]any{}, Confidence: 1.0}
}

// normalize lowercases, maps hyphens to underscores, and collapses interior
// whitespace, so "Leak  To-Media" and "leak to_media" read the same.
func normalize(text string) string {
	lowered := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), "-", "_")
	return strings.Join(strings.Fields(lowered), " ")
}

