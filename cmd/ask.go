package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/abhisek/tutoriz/internal/format"
	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/pipeline"
	"github.com/abhisek/tutoriz/internal/telemetry"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI tutor a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		userID, _ := cmd.Flags().GetString("user")
		name, _ := cmd.Flags().GetString("name")
		pageContext, _ := cmd.Flags().GetString("context")
		course, _ := cmd.Flags().GetString("course")
		plain, _ := cmd.Flags().GetBool("plain")

		cfg, _ := llm.DiscoverConfig()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		store, err := telemetry.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open telemetry database: %w", err)
		}
		defer store.Close()

		ctx := cmd.Context()

		var primary, fallback llm.Provider
		if cfg.HasPrimary() {
			primary, err = llm.NewPrimaryProvider(ctx, cfg, store)
			if err != nil {
				return err
			}
		}
		if cfg.HasFallback() {
			fallback, err = llm.NewFallbackProvider(cfg, store)
			if err != nil {
				return err
			}
		}

		svc := pipeline.New(primary, fallback, pipeline.Config{
			Timeout:     cfg.Timeout,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})

		answer, err := svc.Answer(ctx, pipeline.Question{
			Text:        args[0],
			UserID:      userID,
			DisplayName: name,
			PageContext: pageContext,
			Course:      course,
			Mode:        format.ParseMode(mode),
		})
		if err != nil {
			return err
		}

		if plain {
			fmt.Println(answer.PlainText)
			return nil
		}
		fmt.Print(renderMarkdown(answer.Markdown))
		return nil
	},
}

// renderMarkdown converts markdown to styled terminal output, falling
// back to the raw markdown when the renderer cannot initialize.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func init() {
	askCmd.Flags().String("mode", "explanation", "Answer mode: teach, question, hint, review, explanation")
	askCmd.Flags().String("user", "cli", "User ID recorded with the request")
	askCmd.Flags().String("name", "CLI User", "Display name recorded with the request")
	askCmd.Flags().String("context", "cli", "Page context label")
	askCmd.Flags().String("course", "", "Optional course name")
	askCmd.Flags().Bool("plain", false, "Print the plain-text rendering instead of styled markdown")
}
