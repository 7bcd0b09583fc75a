package intent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/errors"
	"github.com/sashabaranov/go-openai"
)

// Completer is the narrow completion surface AIMapper needs, satisfied by
// ai.Client.
type Completer interface {
	SyncCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (openai.ChatCompletionResponse, error)
}

// AIMapper asks a language model to classify the text into the action
// catalog and falls back to the keyword rules when the model is unavailable
// or answers outside the catalog. The model only ever picks from the fixed
// set; its output is validated, never executed.
type AIMapper struct {
	completer Completer
	fallback  RuleMapper
	logger    *slog.Logger
	timeout   time.Duration
}

// NewAIMapper wraps completer with rule-based fallback.
func NewAIMapper(completer Completer, logger *slog.Logger) *AIMapper {
	return &AIMapper{
		completer: completer,
		fallback:  NewRuleMapper(),
		logger:    logger,
		timeout:   10 * time.Second,
	}
}

const systemPrompt = `You classify a player's free-form instruction in a detective game into exactly one action identifier. Answer with only the identifier, nothing else. The identifiers are: %s. When none fits, answer do_nothing.`

// MapText classifies text with the model, degrading to rules on any failure.
func (m *AIMapper) MapText(text string) Intent {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	names := make([]string, 0, len(catalog.PlayerActions))
	for _, action := range catalog.PlayerActions {
		names = append(names, action.Name)
	}
	completion, err := m.completer.SyncCompletion(ctx, []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: fmt.Sprintf(systemPrompt, strings.Join(names, ", ")),
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: text,
		},
	})
	if err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "intent model unavailable, using rules",
			errors.SlogError(errors.Wrap(err, "map intent")))
		return m.fallback.MapText(text)
	}
	if len(completion.Choices) == 0 {
		return m.fallback.MapText(text)
	}

	answer := normalize(completion.Choices[0].Message.Content)
	if _, ok := catalog.PlayerActionByName(answer); !ok {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "intent model answered outside catalog, using rules",
			slog.String("answer", answer))
		return m.fallback.MapText(text)
	}
	return Intent{Action: answer, Params: map[string]any{}, Confidence: 0.8}
}
