package llm

import (
	"context"
	"sync"
	"time"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text  string
	Usage Usage
	Err   error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	name      string
	responses []MockResponse
	repeat    bool
	delay     time.Duration
	Calls     []Request
	Starts    []time.Time
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{name: "mock", responses: responses}
}

// NewRepeatingMockProvider creates a MockProvider that answers every
// call with the same response.
func NewRepeatingMockProvider(resp MockResponse) *MockProvider {
	return &MockProvider{name: "mock", responses: []MockResponse{resp}, repeat: true}
}

// SetName overrides the provider name reported to telemetry.
func (m *MockProvider) SetName(name string) *MockProvider {
	m.name = name
	return m
}

// SetDelay makes every Complete call block for d before answering.
func (m *MockProvider) SetDelay(d time.Duration) *MockProvider {
	m.delay = d
	return m
}

// Complete returns the next canned response or ErrNetwork if the queue
// is empty.
func (m *MockProvider) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.Starts = append(m.Starts, time.Now())

	if len(m.responses) == 0 {
		m.mu.Unlock()
		return nil, &ErrNetwork{}
	}

	resp := m.responses[0]
	if !m.repeat {
		m.responses = m.responses[1:]
	}
	delay := m.delay
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Text:       resp.Text,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// Name returns the configured provider name.
func (m *MockProvider) Name() string {
	return m.name
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Complete calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
