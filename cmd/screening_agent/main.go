// Package main provides the entry point for the TalentScout screening assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/screening-assistant/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "screening_agent",
	Short: config.AppTitle,
	Long: config.AppTitle + " conducts scripted multi-turn screening interviews in the terminal or over REST. " +
		"Interviews follow a fixed stage script and persist after every turn; without an LLM provider key the assistant still runs on canned responses.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
