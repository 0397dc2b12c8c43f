package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/screening-assistant/internal/config"
	"github.com/jonathan/screening-assistant/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running screening interviews.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv().MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.HasProvider() {
		return fmt.Errorf("an LLM provider key is required (set GROQ_API_KEY, OPENROUTER_API_KEY, or GEMINI_API_KEY)")
	}

	srv, err := server.New(server.Config{
		Port: servePort,
		App:  &cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
