// Package types provides type definitions for structured data used throughout the screening-assistant system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ChatRequest represents the request body for one conversation turn.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message" validate:"required,min=1"`
}

// ChatResponse represents the assistant's reply for one conversation turn.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Stage     string `json:"stage"`
	Language  string `json:"language"`
	Complete  bool   `json:"complete"`
}

// ResetResponse represents the response after resetting a session.
type ResetResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// LanguageInfo describes one supported interview language.
type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Flag       string `json:"flag"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
