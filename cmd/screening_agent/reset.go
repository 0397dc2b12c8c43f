package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/screening-assistant/internal/config"
	"github.com/jonathan/screening-assistant/internal/conversation"
	"github.com/jonathan/screening-assistant/internal/llm"
	"github.com/jonathan/screening-assistant/internal/sentiment"
	"github.com/jonathan/screening-assistant/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Reset a stored session to a fresh interview",
	Long:  "Replace the stored candidate record with a fresh one so the next chat turn starts the interview over.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReset,
}

var (
	resetDataDir string
	resetDBURL   string
)

func init() {
	resetCmd.Flags().StringVar(&resetDataDir, "data-dir", "", "Directory for session files (defaults to DATA_DIR env var)")
	resetCmd.Flags().StringVar(&resetDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, args []string) error {
	sessionID := args[0]
	if !session.ValidSessionID(sessionID) {
		return fmt.Errorf("invalid session ID %q: use letters, digits, '.', '_' or '-'", sessionID)
	}

	cfg := config.Config{DataDir: resetDataDir, DatabaseURL: resetDBURL}
	cfg = cfg.MergeWithDefaults(*config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	ctx := context.Background()
	store, err := session.Open(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer session.Close(store)

	manager := conversation.NewManager(store, llm.NewRouter(ctx, &cfg), sentiment.NewAnalyzer(cfg.HuggingFaceAPIKey), cfg.DefaultLanguage)
	if err := manager.Reset(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Session reset: %s\n", sessionID)
	return nil
}
