package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tutoriz/internal/format"
	"github.com/abhisek/tutoriz/internal/llm"
)

// Config holds the already-resolved call parameters every provider
// attempt uses.
type Config struct {
	// Timeout bounds each provider call. Default: 30s.
	Timeout time.Duration

	// MaxTokens caps the response length. Default: 2048.
	MaxTokens int

	// Temperature is applied to every call. Default: 0.7.
	Temperature float64
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 2048
	}
	if c.Temperature <= 0 {
		c.Temperature = 0.7
	}
	return c
}

// Orchestrator owns the in-memory FIFO queue of pending answer
// requests and serializes execution: one provider call in flight per
// process, requests completed strictly in submission order. The queue
// slice and the running flag are the only shared mutable state, both
// guarded by mu; the worker goroutine starts lazily on submission and
// exits when the queue drains.
//
// The single-flight discipline is deliberate backpressure against both
// providers' rate limits: latency under load is traded for rate-limit
// safety and FIFO fairness.
type Orchestrator struct {
	primary  llm.Provider
	fallback llm.Provider
	cfg      Config

	mu      sync.Mutex
	queue   []*job
	running bool
}

type job struct {
	id   string
	q    Question
	done chan outcome
}

type outcome struct {
	answer *format.Answer
	err    error
}

// NewOrchestrator creates an orchestrator over one primary and one
// fallback provider. Either may be nil when its credential is absent;
// attempts against a nil slot fail as unavailable.
func NewOrchestrator(primary, fallback llm.Provider, cfg Config) *Orchestrator {
	return &Orchestrator{
		primary:  primary,
		fallback: fallback,
		cfg:      cfg.withDefaults(),
	}
}

// Submit validates the request, queues it, and blocks until the worker
// resolves it. Validation failures bypass the queue entirely. If ctx
// is done before the request completes, Submit returns early but the
// queued request still runs to completion — callers abandon results,
// they cannot abort processing.
func (o *Orchestrator) Submit(ctx context.Context, q Question) (*format.Answer, error) {
	if err := validate(q); err != nil {
		return nil, err
	}

	j := &job{
		id:   uuid.NewString(),
		q:    q,
		done: make(chan outcome, 1),
	}

	o.mu.Lock()
	o.queue = append(o.queue, j)
	if !o.running {
		o.running = true
		go o.run()
	}
	o.mu.Unlock()

	select {
	case res := <-j.done:
		return res.answer, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// QueueDepth reports the number of requests waiting behind the one in
// flight. Observable for telemetry only — not part of the caller
// contract.
func (o *Orchestrator) QueueDepth() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.queue)
}

// run drains the queue one request at a time, then goes idle.
func (o *Orchestrator) run() {
	for {
		o.mu.Lock()
		if len(o.queue) == 0 {
			o.running = false
			o.mu.Unlock()
			return
		}
		j := o.queue[0]
		o.queue = o.queue[1:]
		o.mu.Unlock()

		j.done <- o.process(j)
	}
}

// process drives one request through the state machine: model
// selection, primary attempt, fallback attempt, then formatting.
// Formatter failures degrade inside Format rather than failing the
// request.
func (o *Orchestrator) process(j *job) outcome {
	sel := SelectModel(j.q.Text)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: j.q.Text},
		},
		Model:       sel.Model,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	}

	// The job outlives the caller's context; provider calls are bounded
	// by the per-call timeout alone.
	base := llm.WithCallMeta(context.Background(), llm.CallMeta{
		RequestID: j.id,
		Tier:      string(sel.Tier),
		Mode:      string(j.q.Mode),
	})

	resp, primaryErr := o.attempt(base, o.primary, req)
	if primaryErr != nil {
		// Fallback uses its fixed model — the selector's tier does not
		// carry over.
		req.Model = ""
		var fallbackErr error
		resp, fallbackErr = o.attempt(base, o.fallback, req)
		if fallbackErr != nil {
			return outcome{err: &ErrServiceUnavailable{
				Primary:  primaryErr,
				Fallback: fallbackErr,
			}}
		}
	}

	ans := format.Format(resp.Text, j.q.Mode)
	return outcome{answer: &ans}
}

func (o *Orchestrator) attempt(ctx context.Context, p llm.Provider, req llm.Request) (*llm.Response, error) {
	if p == nil {
		return nil, errors.New("provider not configured")
	}
	callCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()
	return p.Complete(callCtx, req)
}
