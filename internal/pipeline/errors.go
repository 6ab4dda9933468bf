package pipeline

import (
	"fmt"
)

// Pipeline errors surfaced to callers. Together with the provider
// errors in internal/llm they form the closed taxonomy the HTTP layer
// translates into status codes.

// ErrValidation indicates a malformed request. Never retried; no
// provider call is attempted.
type ErrValidation struct {
	Field  string
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// ErrNotConfigured indicates no provider credential is available. The
// pipeline stays unusable until reconfigured; requests fail fast
// without touching the queue.
type ErrNotConfigured struct{}

func (e *ErrNotConfigured) Error() string {
	return "answer pipeline is not configured: no provider credentials available"
}

// ErrServiceUnavailable indicates both providers were exhausted for one
// request. The message embeds both underlying failures (typed provider
// errors only — never credentials or transport internals).
type ErrServiceUnavailable struct {
	Primary  error
	Fallback error
}

func (e *ErrServiceUnavailable) Error() string {
	return fmt.Sprintf("all providers failed: primary: %v; fallback: %v", e.Primary, e.Fallback)
}
