package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(ScreeningFile, "greeting")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "TalentScout's AI Hiring Assistant")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(ScreeningFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet(ScreeningFile, "technical_questions")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, welcome to {{.Company}}!"
	data := map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	}

	result := Format(template, data)
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}

func TestScreening_FormatsTemplate(t *testing.T) {
	ClearCache()

	prompt := Screening("candidate_info", map[string]string{
		"KnownInfo": "Name: Jane Smith",
		"NextInfo":  "email address and phone number",
	})
	assert.Contains(t, prompt, "Known info: Name: Jane Smith.")
	assert.Contains(t, prompt, "Next info to collect: email address and phone number.")
	assert.NotContains(t, prompt, "{{.")
}

func TestScreening_AllInterviewKeys(t *testing.T) {
	ClearCache()

	// Every stage of the interview depends on one of these.
	keys := []string{
		"greeting",
		"candidate_info",
		"tech_stack",
		"follow_up",
		"technical_questions",
		"farewell",
		"fallback",
	}
	for _, key := range keys {
		prompt, err := Get(ScreeningFile, key)
		require.NoError(t, err, "missing screening prompt %q", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List(ScreeningFile)
	require.NoError(t, err)
	assert.Contains(t, keys, "greeting")
	assert.Contains(t, keys, "farewell")
}

func TestCaching(t *testing.T) {
	ClearCache()

	// First call loads from file
	prompt1, err := Get(ScreeningFile, "greeting")
	require.NoError(t, err)

	// Second call should use cache
	prompt2, err := Get(ScreeningFile, "greeting")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
