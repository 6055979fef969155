package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcast/internal/config"
)

func TestNewProviderGroq(t *testing.T) {
	p, err := NewProvider(context.Background(), config.AIConfig{Provider: config.ProviderGroq, GroqKey: "gsk_test"})
	require.NoError(t, err)
	defer p.Close()

	cc, ok := p.(*ChatCompletionsProvider)
	require.True(t, ok)
	assert.Equal(t, DefaultGroqBaseURL+"/chat/completions", cc.endpoint)
	assert.Equal(t, DefaultGroqModel, cc.model)
}

func TestNewProviderRejectsUnknown(t *testing.T) {
	_, err := NewProvider(context.Background(), config.AIConfig{Provider: "openai"})
	assert.Error(t, err)
}

func TestNewProviderMissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), config.AIConfig{Provider: config.ProviderGroq})
	assert.Error(t, err)
}
