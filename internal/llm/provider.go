package llm

import (
	"context"
)

// Provider is the core abstraction for chat-completion backends.
// Consumers send a single-turn request and receive the raw answer text;
// all structure is imposed downstream by the response formatter.
type Provider interface {
	// Complete sends one chat completion request and returns the raw
	// answer text. Providers never retry internally — fallback policy
	// lives in the pipeline orchestrator.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Name returns the provider's short name ("openai", "openrouter", ...).
	Name() string

	// ModelID returns the default model identifier this provider is
	// configured to use.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation. For the answer pipeline this holds
	// one user message carrying the learner's question.
	Messages []Message

	// Model overrides the provider's configured default model when set.
	// The primary provider is model-selectable per request; the fallback
	// provider ignores this and always uses its fixed model.
	Model string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the backend's output.
type Response struct {
	// Text is the raw answer text, exactly as the backend produced it.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
