package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/tutoriz/internal/telemetry"
)

// TelemetryProvider is a decorator that records every provider call as
// an event. Only status, latency and payload lengths are recorded —
// credentials and bodies never reach the log.
type TelemetryProvider struct {
	inner    Provider
	recorder telemetry.Recorder
}

// WithTelemetry wraps a Provider with event recording.
func WithTelemetry(p Provider, recorder telemetry.Recorder) Provider {
	return &TelemetryProvider{inner: p, recorder: recorder}
}

func (t *TelemetryProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	meta := CallMetaFrom(ctx)

	resp, err := t.inner.Complete(ctx, req)

	data := telemetry.ProviderCallData{
		RequestID:   meta.RequestID,
		Provider:    t.inner.Name(),
		Model:       t.inner.ModelID(),
		Tier:        meta.Tier,
		Mode:        meta.Mode,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		PromptChars: promptChars(req),
	}
	if req.Model != "" {
		data.Model = req.Model
	}

	if resp != nil {
		data.Model = resp.Model
		data.ResponseChars = len(resp.Text)
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorKind = errorKind(err)
	}

	// Record the event but don't fail the request if recording fails.
	if logErr := t.recorder.AppendProviderCall(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record provider call event: %v\n", logErr)
	}

	return resp, err
}

func (t *TelemetryProvider) Name() string {
	return t.inner.Name()
}

func (t *TelemetryProvider) ModelID() string {
	return t.inner.ModelID()
}

func promptChars(req Request) int {
	n := len(req.System)
	for _, m := range req.Messages {
		n += len(m.Content)
	}
	return n
}

// errorKind labels a provider error for the event log.
func errorKind(err error) string {
	var (
		rl      *ErrRateLimited
		auth    *ErrAuthentication
		timeout *ErrTimeout
		network *ErrNetwork
		invalid *ErrInvalidResponse
		unknown *ErrUnknown
	)
	switch {
	case errors.As(err, &rl):
		return "rate_limited"
	case errors.As(err, &auth):
		return "authentication"
	case errors.As(err, &timeout):
		return "timeout"
	case errors.As(err, &network):
		return "network"
	case errors.As(err, &invalid):
		return "invalid_response"
	case errors.As(err, &unknown):
		return fmt.Sprintf("status_%d", unknown.Status)
	default:
		return "error"
	}
}
