package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiProvider{client: client, modelName: modelName}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	// One model handle per call; sampling parameters are request-scoped.
	model := p.client.GenerativeModel(p.modelName)
	if req.Temperature > 0 {
		model.SetTemperature(req.Temperature)
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		// A blocked reply is an empty reply.
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return replyText(resp), nil
}

// replyText joins the non-blank text parts of the first candidate; "" when there are none.
func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	return strings.Join(textParts, "\n")
}
