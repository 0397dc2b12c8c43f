package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"data_dir": "/tmp/screening-data",
		"groq_model": "llama3-70b-8192",
		"default_language": "es",
		"llm_timeout_seconds": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/screening-data", cfg.DataDir)
	assert.Equal(t, "llama3-70b-8192", cfg.GroqModel)
	assert.Equal(t, "es", cfg.DefaultLanguage)
	assert.Equal(t, 8, cfg.LLMTimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{
		LLMTimeoutSeconds: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "llm_timeout_seconds")
}

func TestValidate_BadLanguageCode(t *testing.T) {
	cfg := &Config{
		DefaultLanguage: "english",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "default_language")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		DataDir:           "data",
		DefaultLanguage:   "en",
		LLMTimeoutSeconds: 5,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults()

	partial := Config{
		DataDir:    "/custom/data",
		GroqAPIKey: "gsk-test",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "/custom/data", merged.DataDir)
	assert.Equal(t, "gsk-test", merged.GroqAPIKey)

	// Default values should fill in empty fields
	assert.Equal(t, DefaultGroqModel, merged.GroqModel)
	assert.Equal(t, DefaultOpenRouterModels, merged.OpenRouterModels)
	assert.Equal(t, "en", merged.DefaultLanguage)
	assert.Equal(t, 5, merged.LLMTimeoutSeconds)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		DataDir:     "mydata",
		DatabaseURL: "postgres://localhost/screening",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "mydata", merged.DataDir)
	assert.Equal(t, "postgres://localhost/screening", merged.DatabaseURL)
}

func TestLLMTimeout(t *testing.T) {
	cfg := &Config{LLMTimeoutSeconds: 10}
	assert.Equal(t, 10*time.Second, cfg.LLMTimeout())

	// Unset falls back to the default
	cfg = &Config{}
	assert.Equal(t, DefaultLLMTimeout, cfg.LLMTimeout())
}

func TestHasProvider(t *testing.T) {
	assert.False(t, (&Config{}).HasProvider())
	assert.True(t, (&Config{GroqAPIKey: "k"}).HasProvider())
	assert.True(t, (&Config{OpenRouterAPIKey: "k"}).HasProvider())
	assert.True(t, (&Config{GeminiAPIKey: "k"}).HasProvider())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-env")
	t.Setenv("DATA_DIR", "/env/data")
	t.Setenv("DATABASE_URL", "")

	cfg := FromEnv()
	assert.Equal(t, "gsk-env", cfg.GroqAPIKey)
	assert.Equal(t, "/env/data", cfg.DataDir)
	assert.Empty(t, cfg.DatabaseURL)
}
