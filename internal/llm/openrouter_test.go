package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenRouterProvider_IgnoresModelOverride(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string `json:"model"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		gotModel = body.Model

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionJSON("fallback answer", body.Model))
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "test-key",
		Model:   "google/gemini-2.0-flash-exp",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}

	// The selector's model choice must not leak into the fallback call.
	resp, err := p.Complete(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "test"}},
		Model:    "gpt-4.1",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if gotModel != "google/gemini-2.0-flash-exp" {
		t.Fatalf("fallback used model %q, want its fixed model", gotModel)
	}
	if resp.Text != "fallback answer" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestOpenRouterProvider_Name(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p.Name() != "openrouter" {
		t.Fatalf("Name() = %q, want openrouter", p.Name())
	}
}

func TestNewOpenRouterProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
