// README: Provider factory; picks the LLM backend from configuration.
package ai

import (
	"context"
	"fmt"
	"strings"

	"tripmate/internal/config"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewProvider creates the configured LLMProvider. The returned close function
// releases client resources and is never nil.
func NewProvider(ctx context.Context, cfg config.AIConfig) (LLMProvider, func(), error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderGemini, "":
		p, err := NewGeminiProvider(ctx, cfg.GeminiKey, cfg.Model)
		if err != nil {
			return nil, func() {}, err
		}
		return p, p.Close, nil
	case ProviderOpenAI:
		p, err := NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.Model)
		if err != nil {
			return nil, func() {}, err
		}
		return p, func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
