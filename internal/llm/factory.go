package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/tutoriz/internal/telemetry"
)

// NewPrimaryProvider creates the primary Provider from configuration,
// wrapped with telemetry recording when a recorder is given.
func NewPrimaryProvider(ctx context.Context, cfg Config, recorder telemetry.Recorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Primary {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Primary)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Primary, err)
	}

	if recorder != nil {
		base = WithTelemetry(base, recorder)
	}
	return base, nil
}

// NewFallbackProvider creates the fallback Provider. The fallback slot
// is always OpenRouter with its fixed model.
func NewFallbackProvider(cfg Config, recorder telemetry.Recorder) (Provider, error) {
	base, err := NewOpenRouterProvider(cfg.OpenRouter)
	if err != nil {
		return nil, fmt.Errorf("initializing openrouter provider: %w", err)
	}

	if recorder != nil {
		return WithTelemetry(base, recorder), nil
	}
	return base, nil
}
