package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama3-8b-8192"
)

// ChatCompletionsProvider implements LLMProvider against any OpenAI-compatible
// /chat/completions endpoint (Groq by default).
type ChatCompletionsProvider struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
}

// NewChatCompletionsProvider builds a provider for baseURL (e.g. https://api.groq.com/openai/v1).
// Requests time out after 30s; ctx cancellation still applies.
func NewChatCompletionsProvider(baseURL, apiKey, model string) (*ChatCompletionsProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("chat completions: missing api key")
	}
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	if model == "" {
		model = DefaultGroqModel
	}
	return &ChatCompletionsProvider{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   strings.TrimRight(baseURL, "/") + "/chat/completions",
		apiKey:     apiKey,
		model:      model,
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *ChatCompletionsProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completions: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("chat completions: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat completions: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("chat completions: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("chat completions: status %d: %s", resp.StatusCode, body)
		}
		return "", fmt.Errorf("chat completions: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("chat completions: api error (status %d): %s", resp.StatusCode, cr.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions: status %d: %s", resp.StatusCode, body)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("chat completions: API returned empty choices array (raw: %s)", body)
	}
	return cr.Choices[0].Message.Content, nil
}

// Close is a no-op; the HTTP client holds no per-provider resources.
func (p *ChatCompletionsProvider) Close() {}
