// Package config provides configuration loading and validation for the screening assistant.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Interview tuning constants shared across packages.
const (
	// MinTechnicalQuestions is the floor for generated technical questions.
	MinTechnicalQuestions = 3
	// MaxTechnicalQuestions caps the generated technical questions.
	MaxTechnicalQuestions = 5
	// MaxHistoryLength is the number of conversation turns kept for context.
	MaxHistoryLength = 10
	// DefaultLLMTimeout bounds a single provider call.
	DefaultLLMTimeout = 5 * time.Second
)

// App identity shown in CLI banners and API metadata.
const (
	AppTitle       = "TalentScout Hiring Assistant"
	AppDescription = "AI-powered chatbot for initial candidate screening"
)

// DefaultGroqModel is the fast model used for most interactions.
const DefaultGroqModel = "llama3-70b-8192"

// DefaultOpenRouterModels lists fallback models in priority order. The head
// entry is the primary; the rest are tried when earlier ones fail or return
// empty content.
var DefaultOpenRouterModels = []string{
	"tngtech/deepseek-r1t2-chimera",
	"deepseek/r1-0528",
	"tngtech/deepseek-r1t-chimera",
	"microsoft/mai-ds-r1",
	"deepseek/r1",
}

// Config represents the assistant configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or come
// from environment variables.
type Config struct {
	// Storage
	DataDir     string `json:"data_dir,omitempty"`     // Directory for per-session candidate files
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; file store when empty

	// Providers
	GroqAPIKey        string   `json:"groq_api_key,omitempty"`
	GroqModel         string   `json:"groq_model,omitempty"`
	OpenRouterAPIKey  string   `json:"openrouter_api_key,omitempty"`
	OpenRouterModels  []string `json:"openrouter_models,omitempty"`
	GeminiAPIKey      string   `json:"gemini_api_key,omitempty"`
	HuggingFaceAPIKey string   `json:"huggingface_api_key,omitempty"` // Enables sentiment analysis when set

	// Behavior
	DefaultLanguage   string `json:"default_language,omitempty"`
	LLMTimeoutSeconds int    `json:"llm_timeout_seconds,omitempty"`
	Verbose           bool   `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. A .env file, when
// present, is loaded by the CLI entry point before this runs.
func FromEnv() *Config {
	return &Config{
		DataDir:           os.Getenv("DATA_DIR"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		HuggingFaceAPIKey: os.Getenv("HUGGINGFACE_API_KEY"),
		DefaultLanguage:   os.Getenv("DEFAULT_LANGUAGE"),
	}
}

// Validate checks that the configuration has valid values.
// Required provider keys are checked by the commands that need them.
func (c *Config) Validate() error {
	if c.LLMTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'llm_timeout_seconds' must be non-negative")
	}
	if c.DefaultLanguage != "" && len(c.DefaultLanguage) != 2 {
		return fmt.Errorf("config error: 'default_language' must be a two-letter code, got %q", c.DefaultLanguage)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GroqAPIKey == "" {
		result.GroqAPIKey = defaults.GroqAPIKey
	}
	if result.GroqModel == "" {
		result.GroqModel = defaults.GroqModel
	}
	if result.OpenRouterAPIKey == "" {
		result.OpenRouterAPIKey = defaults.OpenRouterAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.HuggingFaceAPIKey == "" {
		result.HuggingFaceAPIKey = defaults.HuggingFaceAPIKey
	}
	if result.DefaultLanguage == "" {
		result.DefaultLanguage = defaults.DefaultLanguage
	}

	// Slice fields: use default if empty
	if len(result.OpenRouterModels) == 0 {
		result.OpenRouterModels = defaults.OpenRouterModels
	}

	// Int fields: use default if zero
	if result.LLMTimeoutSeconds == 0 {
		result.LLMTimeoutSeconds = defaults.LLMTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		DataDir:           "data",
		GroqModel:         DefaultGroqModel,
		OpenRouterModels:  DefaultOpenRouterModels,
		DefaultLanguage:   "en",
		LLMTimeoutSeconds: int(DefaultLLMTimeout / time.Second),
	}
}

// LLMTimeout returns the per-call provider timeout as a duration.
func (c *Config) LLMTimeout() time.Duration {
	if c.LLMTimeoutSeconds <= 0 {
		return DefaultLLMTimeout
	}
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// HasProvider reports whether at least one LLM provider key is configured.
// The assistant still functions without any (canned responses only); chat
// warns in that case while serve refuses to start.
func (c *Config) HasProvider() bool {
	return c.GroqAPIKey != "" || c.OpenRouterAPIKey != "" || c.GeminiAPIKey != ""
}
