package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/screening-assistant/internal/types"
)

func TestValidateCandidateRecord_Valid(t *testing.T) {
	years := 5.0
	record := types.CandidateRecord{
		Name:            "Jane Smith",
		Email:           "jane@example.com",
		Phone:           "+1-555-123-4567",
		YearsExperience: &years,
		Position:        "Backend Developer",
		Location:        "Berlin",
		TechStack:       []string{"Go", "PostgreSQL"},
		TechnicalQuestions: []string{
			"How does Go handle goroutine scheduling?",
		},
		TechnicalAnswers: []string{"With an M:N scheduler."},
		Language:         "en",
		SentimentHistory: []types.SentimentEntry{
			{Message: "I love this role", Emotion: "joy", Score: 0.9},
		},
		ConversationHistory: []types.Message{
			{Role: types.RoleUser, Content: "Hi"},
			{Role: types.RoleAssistant, Content: "Hello! Welcome to TalentScout."},
		},
		ConversationComplete: false,
		Timestamp:            time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	assert.NoError(t, ValidateCandidateRecord(data))
}

func TestValidateCandidateRecord_EmptyRecord(t *testing.T) {
	data, err := json.Marshal(types.NewCandidateRecord())
	require.NoError(t, err)

	assert.NoError(t, ValidateCandidateRecord(data))
}

func TestValidateCandidateRecord_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{
			name:      "wrong type for years",
			content:   `{"years_experience": "five"}`,
			wantField: "years_experience",
		},
		{
			name:      "years out of range",
			content:   `{"years_experience": 120}`,
			wantField: "years_experience",
		},
		{
			name:      "bad history role",
			content:   `{"conversation_history": [{"role": "system", "content": "hi"}]}`,
			wantField: "conversation_history.0.role",
		},
		{
			name:      "sentiment score above one",
			content:   `{"sentiment_history": [{"message": "hi", "emotion": "joy", "score": 1.5}]}`,
			wantField: "sentiment_history.0.score",
		},
		{
			name:      "unknown top-level field",
			content:   `{"favorite_color": "green"}`,
			wantField: "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidateRecord([]byte(tt.content))
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type")
			require.Greater(t, len(validationErr.Errors), 0)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidateCandidateRecord_MalformedJSON(t *testing.T) {
	err := ValidateCandidateRecord([]byte("{ not json }"))
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "years_experience", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "years_experience")
}
