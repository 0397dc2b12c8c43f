package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/screening-assistant/internal/config"
	"github.com/jonathan/screening-assistant/internal/conversation"
	"github.com/jonathan/screening-assistant/internal/observability"
	"github.com/jonathan/screening-assistant/internal/session"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <session-id>",
	Short: "Print the stored candidate summary for a session",
	Long:  "Print the candidate summary, interview progress, and technical questions recorded for a stored session.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

var (
	summaryDataDir string
	summaryDBURL   string
)

func init() {
	summaryCmd.Flags().StringVar(&summaryDataDir, "data-dir", "", "Directory for session files (defaults to DATA_DIR env var)")
	summaryCmd.Flags().StringVar(&summaryDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	sessionID := args[0]
	if !session.ValidSessionID(sessionID) {
		return fmt.Errorf("invalid session ID %q: use letters, digits, '.', '_' or '-'", sessionID)
	}

	cfg := config.Config{DataDir: summaryDataDir, DatabaseURL: summaryDBURL}
	cfg = cfg.MergeWithDefaults(*config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	ctx := context.Background()
	store, err := session.Open(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer session.Close(store)

	record, err := store.Load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if record == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCandidateSummary(record)
	printer.PrintAnalytics(conversation.ComputeAnalytics(record))
	if len(record.TechnicalQuestions) > 0 {
		printer.PrintQuestions(record.TechnicalQuestions, record.TechnicalAnswers)
	}
	if len(record.SentimentHistory) > 0 {
		printer.PrintSentiment(record.SentimentHistory)
	}

	return nil
}
