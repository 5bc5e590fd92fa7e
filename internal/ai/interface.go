// README: LLM provider contract shared by the Gemini and OpenAI-compatible clients.
package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with text-generation models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.).
type LLMProvider interface {
	// GenerateText submits a single prompt and returns the full generated text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Model returns the model identifier used for generation.
	Model() string
}
