package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested event does not exist.
var ErrNotFound = errors.New("event not found")

// ProviderCallData captures a single provider call for the event log.
type ProviderCallData struct {
	RequestID     string
	Provider      string
	Model         string
	Tier          string
	Mode          string
	LatencyMs     int64
	Success       bool
	ErrorKind     string
	PromptChars   int
	ResponseChars int
	InputTokens   int
	OutputTokens  int
}

// ProviderCall is a stored provider call event.
type ProviderCall struct {
	ID        int64
	Timestamp time.Time
	ProviderCallData
}

// Recorder provides append access to the provider-call event log.
type Recorder interface {
	AppendProviderCall(ctx context.Context, data ProviderCallData) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int    // max results (0 = unlimited)
	Provider string // filter by provider name when non-empty
}

// AppendProviderCall records one provider call event.
func (s *Store) AppendProviderCall(ctx context.Context, data ProviderCallData) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO provider_calls
		(request_id, provider, model, tier, mode, latency_ms, success,
		 error_kind, prompt_chars, response_chars, input_tokens, output_tokens)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.RequestID, data.Provider, data.Model, data.Tier, data.Mode,
		data.LatencyMs, boolToInt(data.Success), data.ErrorKind,
		data.PromptChars, data.ResponseChars, data.InputTokens, data.OutputTokens,
	)
	if err != nil {
		return fmt.Errorf("save provider call event: %w", err)
	}
	return nil
}

// QueryProviderCalls returns recent events, newest first.
func (s *Store) QueryProviderCalls(ctx context.Context, opts QueryOpts) ([]ProviderCall, error) {
	query := `SELECT id, timestamp, request_id, provider, model, tier, mode,
		latency_ms, success, error_kind, prompt_chars, response_chars,
		input_tokens, output_tokens
		FROM provider_calls`
	args := []any{}

	if opts.Provider != "" {
		query += ` WHERE provider = ?`
		args = append(args, opts.Provider)
	}
	query += ` ORDER BY id DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query provider calls: %w", err)
	}
	defer rows.Close()

	var out []ProviderCall
	for rows.Next() {
		var pc ProviderCall
		var success int
		if err := rows.Scan(&pc.ID, &pc.Timestamp, &pc.RequestID, &pc.Provider,
			&pc.Model, &pc.Tier, &pc.Mode, &pc.LatencyMs, &success,
			&pc.ErrorKind, &pc.PromptChars, &pc.ResponseChars,
			&pc.InputTokens, &pc.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan provider call: %w", err)
		}
		pc.Success = success != 0
		out = append(out, pc)
	}
	return out, rows.Err()
}

// GetProviderCall returns one event by ID, or ErrNotFound.
func (s *Store) GetProviderCall(ctx context.Context, id int64) (*ProviderCall, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, timestamp, request_id, provider,
		model, tier, mode, latency_ms, success, error_kind, prompt_chars,
		response_chars, input_tokens, output_tokens
		FROM provider_calls WHERE id = ?`, id)

	var pc ProviderCall
	var success int
	err := row.Scan(&pc.ID, &pc.Timestamp, &pc.RequestID, &pc.Provider,
		&pc.Model, &pc.Tier, &pc.Mode, &pc.LatencyMs, &success,
		&pc.ErrorKind, &pc.PromptChars, &pc.ResponseChars,
		&pc.InputTokens, &pc.OutputTokens)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get provider call: %w", err)
	}
	pc.Success = success != 0
	return &pc, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
