package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// getBinaryPath returns the path to the screening_agent binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "screening_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// offlineEnv returns the test environment with provider and storage variables
// cleared, so commands run on canned responses and local files regardless of
// what the developer's .env configures.
func offlineEnv() []string {
	drop := map[string]bool{
		"GROQ_API_KEY":        true,
		"OPENROUTER_API_KEY":  true,
		"GEMINI_API_KEY":      true,
		"HUGGINGFACE_API_KEY": true,
		"DATABASE_URL":        true,
		"DATA_DIR":            true,
		"DEFAULT_LANGUAGE":    true,
	}

	var env []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !drop[name] {
			env = append(env, kv)
		}
	}
	return env
}
