package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/screening-assistant/internal/config"
	"github.com/jonathan/screening-assistant/internal/conversation"
	"github.com/jonathan/screening-assistant/internal/language"
	"github.com/jonathan/screening-assistant/internal/llm"
	"github.com/jonathan/screening-assistant/internal/observability"
	"github.com/jonathan/screening-assistant/internal/sentiment"
	"github.com/jonathan/screening-assistant/internal/session"
	"github.com/jonathan/screening-assistant/internal/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run a screening interview in the terminal",
	Long: `Start an interactive screening interview on stdin/stdout. The session is
persisted after every turn, so a later run with the same --session resumes
where the interview left off.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runChat,
}

var (
	chatConfigPath string
	chatSessionID  string
	chatDataDir    string
	chatDBURL      string
	chatLanguage   string
	chatVerbose    bool
)

func init() {
	chatCmd.Flags().StringVar(&chatConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	chatCmd.Flags().StringVar(&chatSessionID, "session", "", "Session ID to start or resume (generated if omitted)")
	chatCmd.Flags().StringVar(&chatDataDir, "data-dir", "", "Directory for session files (defaults to DATA_DIR env var)")
	chatCmd.Flags().StringVar(&chatDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	chatCmd.Flags().StringVar(&chatLanguage, "language", "", "Interview language code, e.g. en, es, hi")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print interview progress after every turn")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if chatConfigPath != "" {
		loaded, err := config.LoadConfig(chatConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Apply CLI overrides, then fill remaining fields from the environment
	// and the built-in defaults
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = chatDataDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = chatDBURL
	}
	if cmd.Flags().Changed("language") {
		cfg.DefaultLanguage = chatLanguage
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = chatVerbose
	}
	cfg = cfg.MergeWithDefaults(*config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return err
	}
	if !language.IsSupported(cfg.DefaultLanguage) {
		fmt.Fprintln(os.Stderr, language.SelectorPrompt())
		return fmt.Errorf("unsupported language %q", cfg.DefaultLanguage)
	}

	sessionID := chatSessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	if !session.ValidSessionID(sessionID) {
		return fmt.Errorf("invalid session ID %q: use letters, digits, '.', '_' or '-'", sessionID)
	}

	ctx := context.Background()
	store, err := session.Open(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer session.Close(store)

	router := llm.NewRouter(ctx, &cfg)
	if !router.HasProviders() {
		fmt.Fprintf(os.Stderr, "Warning: no LLM provider configured, interview will use canned responses only\n")
	}
	analyzer := sentiment.NewAnalyzer(cfg.HuggingFaceAPIKey)
	manager := conversation.NewManager(store, router, analyzer, cfg.DefaultLanguage)
	printer := observability.NewPrinter(os.Stdout)

	record, err := store.Load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	greetCode := cfg.DefaultLanguage
	if record != nil {
		greetCode = record.LanguageOrDefault()
	}

	fmt.Printf("%s\n", config.AppTitle)
	fmt.Printf("%s\n\n", language.Greeting(greetCode))

	if record != nil && len(record.ConversationHistory) > 0 {
		fmt.Printf("Resuming session %s (%d messages).\n", sessionID, len(record.ConversationHistory))
		last := record.ConversationHistory[len(record.ConversationHistory)-1]
		if last.Role == types.RoleAssistant {
			fmt.Printf("\nAssistant: %s\n", last.Content)
		}
	} else {
		fmt.Printf("Session: %s\n", sessionID)
	}
	fmt.Printf("Type 'exit' or 'goodbye' at any time to end the interview.\n")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		turn, err := manager.ProcessMessage(ctx, sessionID, message)
		if err != nil {
			return fmt.Errorf("interview turn failed: %w", err)
		}
		fmt.Printf("\nAssistant: %s\n", turn.Reply)

		if cfg.Verbose {
			if rec, err := manager.Session(ctx, sessionID); err == nil && rec != nil {
				printer.PrintAnalytics(conversation.ComputeAnalytics(rec))
			}
		}
		if turn.Complete {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if cfg.Verbose {
		if rec, err := manager.Session(ctx, sessionID); err == nil && rec != nil {
			printer.PrintCandidateSummary(rec)
			printer.PrintQuestions(rec.TechnicalQuestions, rec.TechnicalAnswers)
			if analyzer.Available() {
				printer.PrintSentiment(rec.SentimentHistory)
			}
		}
	}

	fmt.Printf("\nSession saved: %s\n", sessionID)
	return nil
}
