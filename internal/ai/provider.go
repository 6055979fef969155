package ai

import (
	"context"
	"fmt"

	"tripcast/internal/config"
)

// NewProvider builds the completion backend selected by cfg.Provider.
func NewProvider(ctx context.Context, cfg config.AIConfig) (LLMProvider, error) {
	switch cfg.Provider {
	case config.ProviderGroq:
		return NewChatCompletionsProvider(cfg.GroqBaseURL, cfg.GroqKey, cfg.GroqModel)
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
