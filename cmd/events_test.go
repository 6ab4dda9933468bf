package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/tutoriz/internal/telemetry"
)

func TestEventsList_HonorsCommandContext(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "events.db")
	store, err := telemetry.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.AppendProviderCall(context.Background(), telemetry.ProviderCallData{
		RequestID: "r", Provider: "mock", Model: "mock", Success: true,
	}); err != nil {
		t.Fatalf("AppendProviderCall: %v", err)
	}
	store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rootCmd.SetArgs([]string{"events", "list", "--db", dbPath})
	err = rootCmd.ExecuteContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled context should abort the query, got %v", err)
	}
}
