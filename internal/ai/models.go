package ai

// CompletionRequest carries the prompt and sampling parameters for one call.
type CompletionRequest struct {
	Prompt string

	// Temperature controls sampling randomness; zero leaves the provider default.
	Temperature float32

	// MaxTokens caps the reply length; zero leaves the provider default.
	MaxTokens int
}
