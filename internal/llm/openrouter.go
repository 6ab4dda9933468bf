package llm

import (
	"context"
	"fmt"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific
// defaults. OpenRouter exposes an OpenAI-compatible API, so the
// underlying SDK is reused. It serves as the pipeline's fallback slot
// and always answers with its fixed configured model: per-request model
// overrides are dropped before delegating.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}
	inner.name = "openrouter"

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// Complete ignores req.Model and always calls the configured fallback
// model.
func (p *OpenRouterProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	req.Model = ""
	return p.OpenAIProvider.Complete(ctx, req)
}
