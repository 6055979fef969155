// README: Plan generator; prompts the LLM and recovers malformed output into a default plan.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tripcast/internal/ai"
	"tripcast/internal/modules/weather"
	"tripcast/internal/types"
)

const (
	Temperature = 0.7
	MaxTokens   = 2000
)

// GenerationError wraps a failed completion call. Malformed output never produces one.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("Error generating itinerary: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

type Generator struct {
	llm    ai.LLMProvider
	logger *slog.Logger
}

func NewGenerator(llm ai.LLMProvider, logger *slog.Logger) *Generator {
	return &Generator{llm: llm, logger: logger.With("component", "plan-generator")}
}

// Generate asks the model for a plan and extracts the embedded JSON object,
// degrading to DefaultRecord when the reply has none.
func (g *Generator) Generate(ctx context.Context, destination string, date types.Date, w weather.Record) (Record, error) {
	content, err := g.llm.Complete(ctx, ai.CompletionRequest{
		Prompt:      BuildPrompt(destination, date.String(), w),
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	rec, err := ExtractJSON(content)
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, ErrNoJSON):
		g.logger.Warn("model reply has no JSON, using default plan", "destination", destination)
		return DefaultRecord(w), nil
	default:
		g.logger.Warn("model reply JSON unparseable, using default plan", "destination", destination, "error", err)
		fallback := DefaultRecord(w)
		fallback[KeyAIResponse] = content
		return fallback, nil
	}
}
