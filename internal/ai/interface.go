package ai

import (
	"context"
)

// LLMProvider defines the contract for single-turn completions.
// Implementations return the raw model text; interpreting it is the caller's job.
type LLMProvider interface {
	// Complete sends req.Prompt as a single user message and returns the reply text.
	// An error means the call itself failed (transport, auth, empty reply).
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Close releases client resources.
	Close()
}
