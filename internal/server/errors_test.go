package server

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/screening-assistant/internal/types"
)

func TestErrSessionNotFound(t *testing.T) {
	err := &ErrSessionNotFound{SessionID: "abc-123"}
	assert.Equal(t, "session not found: abc-123", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "session_id", Message: "invalid format"}
	assert.Equal(t, "validation error: session_id - invalid format", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrSessionNotFound",
			err:      &ErrSessionNotFound{SessionID: "abc-123"},
			expected: http.StatusNotFound,
		},
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "message", Message: "required"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(types.ChatRequest{SessionID: "abc-123"})
	require.Error(t, err)

	ve := validationError(err)
	assert.Equal(t, "Message", ve.Field)
	assert.Equal(t, "required", ve.Message)

	// Non-validator errors get the generic wrapper
	assert.Equal(t, "validation error: request - invalid", validationError(assert.AnError).Error())
}
