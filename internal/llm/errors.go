package llm

import (
	"fmt"
	"time"
)

// Provider errors form a closed taxonomy constructed at the client
// boundary. No raw SDK or transport error crosses into the orchestrator;
// callers match with errors.As.

// ErrRateLimited indicates the provider returned HTTP 429.
type ErrRateLimited struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimited) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrAuthentication indicates the provider rejected the credential
// (HTTP 401 or 403). The other provider has an independent credential,
// so the orchestrator still falls through on this.
type ErrAuthentication struct {
	Err error
}

func (e *ErrAuthentication) Error() string {
	return fmt.Sprintf("provider authentication failed: %v", e.Err)
}

func (e *ErrAuthentication) Unwrap() error { return e.Err }

// ErrTimeout indicates the per-call deadline elapsed before the
// provider answered.
type ErrTimeout struct {
	Err error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("provider call timed out: %v", e.Err)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrNetwork indicates the request never completed at the transport
// level (connection refused, DNS failure, reset).
type ErrNetwork struct {
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("provider network error: %v", e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider replied 2xx but the payload
// carried no usable answer text (no choices, empty content).
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid provider response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrUnknown covers any other non-2xx status.
type ErrUnknown struct {
	Status int
	Err    error
}

func (e *ErrUnknown) Error() string {
	return fmt.Sprintf("provider error (status %d): %v", e.Status, e.Err)
}

func (e *ErrUnknown) Unwrap() error { return e.Err }
