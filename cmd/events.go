package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutoriz/internal/telemetry"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect provider call events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent provider calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		provider, _ := cmd.Flags().GetString("provider")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		store, err := telemetry.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer store.Close()

		events, err := store.QueryProviderCalls(cmd.Context(), telemetry.QueryOpts{
			Limit:    limit,
			Provider: provider,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No provider call events found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-9s  %-6s  %-7s  %-4s  %s\n",
			"ID", "Timestamp", "Provider", "Model", "Tier", "Mode", "Ms", "OK", "Error")
		fmt.Println(strings.Repeat("─", 110))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-9s  %-6s  %-7d  %-4s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Provider,
				model,
				e.Tier,
				e.Mode,
				e.LatencyMs,
				ok,
				e.ErrorKind,
			)
		}
		return nil
	},
}

var eventsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one provider call in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid event ID %q", args[0])
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		store, err := telemetry.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer store.Close()

		e, err := store.GetProviderCall(cmd.Context(), id)
		if err != nil {
			return err
		}

		status := "success"
		if !e.Success {
			status = "failed (" + e.ErrorKind + ")"
		}
		fmt.Printf("Event #%d\n", e.ID)
		fmt.Printf("  Timestamp:   %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("  Request ID:  %s\n", e.RequestID)
		fmt.Printf("  Provider:    %s\n", e.Provider)
		fmt.Printf("  Model:       %s\n", e.Model)
		fmt.Printf("  Tier:        %s\n", e.Tier)
		fmt.Printf("  Mode:        %s\n", e.Mode)
		fmt.Printf("  Latency:     %d ms\n", e.LatencyMs)
		fmt.Printf("  Status:      %s\n", status)
		fmt.Printf("  Prompt:      %d chars / %d tokens\n", e.PromptChars, e.InputTokens)
		fmt.Printf("  Response:    %d chars / %d tokens\n", e.ResponseChars, e.OutputTokens)
		return nil
	},
}

func init() {
	eventsListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	eventsListCmd.Flags().String("provider", "", "Filter by provider name")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsViewCmd)
}
