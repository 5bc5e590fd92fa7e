// README: Generation gateway; turns trip parameters into an itinerary via the LLM provider.
package planner

import (
	"context"
	"fmt"
	"log"

	"tripmate/internal/ai"
)

// Service wraps one LLM provider. It performs no validation, retries or caching.
type Service struct {
	provider ai.LLMProvider
}

func NewService(provider ai.LLMProvider) *Service {
	return &Service{provider: provider}
}

// Generate makes exactly one provider call. Every failure, including a
// provider panic, comes back as a failed Result rather than an error.
func (s *Service) Generate(ctx context.Context, req TripRequest) (res Result) {
	if s.provider == nil {
		return failed("no ai provider configured", "")
	}
	model := s.provider.Model()

	defer func() {
		if p := recover(); p != nil {
			log.Printf("planner: provider panic: %v", p)
			res = failed(fmt.Sprint(p), model)
		}
	}()

	text, err := s.provider.GenerateText(ctx, BuildPrompt(req))
	if err != nil {
		log.Printf("planner: generate itinerary for %q failed: %v", req.City, err)
		return failed(err.Error(), model)
	}
	return succeeded(text, model)
}
