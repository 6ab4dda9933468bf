package cmd

import (
	"github.com/abhisek/tutoriz/internal/telemetry"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutoriz",
	Short: "AI tutoring answer pipeline",
	Long:  "Tutoriz turns free-text learner questions into structured, audience-appropriate answers with model selection and provider fallback.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite telemetry database (overrides TUTORIZ_DB env var)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the telemetry database path using --db flag
// (highest priority), then TUTORIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, telemetry.EnsureDir(p)
	}
	return telemetry.DefaultDBPath()
}
