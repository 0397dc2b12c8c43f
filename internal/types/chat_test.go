//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request ChatRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: ChatRequest{
				SessionID: "abc-123",
				Message:   "Hello, my name is Jane Smith",
			},
			wantErr: false,
		},
		{
			name: "valid request without session id",
			request: ChatRequest{
				Message: "Hello",
			},
			wantErr: false,
		},
		{
			name:    "missing message",
			request: ChatRequest{SessionID: "abc-123"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "empty message",
			request: ChatRequest{
				SessionID: "abc-123",
				Message:   "",
			},
			wantErr: true,
			errMsg:  "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestChatRequest_ValidateMethod(t *testing.T) {
	req := ChatRequest{Message: "hi"}
	require.NoError(t, req.Validate())

	req.Message = ""
	require.Error(t, req.Validate())
}
