// Package pipeline is the AI answer pipeline: it selects a model for a
// learner's question, executes the call with ordered provider fallback
// through a single-flight FIFO queue, and returns the formatted answer.
package pipeline

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abhisek/tutoriz/internal/format"
	"github.com/abhisek/tutoriz/internal/llm"
)

// maxQuestionChars bounds question length in characters (runes).
const maxQuestionChars = 10_000

// Question is one inbound learner question with its caller context.
// Immutable once submitted; discarded after resolution.
type Question struct {
	Text        string
	UserID      string
	DisplayName string
	PageContext string
	Course      string // optional

	// Mode is the answer's rhetorical purpose, driving formatter
	// reassembly. Defaults to explanation.
	Mode format.Mode

	RequestedAt time.Time
}

// Service is the pipeline facade — the single entry point the chat
// handler uses. Construct once at process startup and inject wherever
// questions arrive.
type Service struct {
	orch       *Orchestrator
	configured bool
}

// New creates the facade over one primary and one fallback provider.
// Passing nil for both marks the pipeline unconfigured: every Answer
// call fails fast with ErrNotConfigured without touching the queue.
func New(primary, fallback llm.Provider, cfg Config) *Service {
	return &Service{
		orch:       NewOrchestrator(primary, fallback, cfg),
		configured: primary != nil || fallback != nil,
	}
}

// Answer resolves one question into a fully formatted answer or a
// typed pipeline error.
func (s *Service) Answer(ctx context.Context, q Question) (*format.Answer, error) {
	if !s.configured {
		return nil, &ErrNotConfigured{}
	}
	if q.Mode == "" {
		q.Mode = format.ModeExplanation
	}
	if q.RequestedAt.IsZero() {
		q.RequestedAt = time.Now()
	}
	return s.orch.Submit(ctx, q)
}

// QueueDepth exposes the orchestrator's backlog for telemetry.
func (s *Service) QueueDepth() int {
	return s.orch.QueueDepth()
}

// validate enforces the request contract before anything is queued.
func validate(q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return &ErrValidation{Field: "questionText", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(q.Text) > maxQuestionChars {
		return &ErrValidation{Field: "questionText", Reason: "exceeds 10000 characters"}
	}
	if strings.TrimSpace(q.UserID) == "" {
		return &ErrValidation{Field: "userId", Reason: "must not be empty"}
	}
	if strings.TrimSpace(q.DisplayName) == "" {
		return &ErrValidation{Field: "displayName", Reason: "must not be empty"}
	}
	return nil
}
