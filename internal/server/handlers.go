package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/screening-assistant/internal/conversation"
	"github.com/jonathan/screening-assistant/internal/language"
	"github.com/jonathan/screening-assistant/internal/session"
	"github.com/jonathan/screening-assistant/internal/types"
)

// SummaryResponse represents the response for /sessions/{id}/summary
type SummaryResponse struct {
	SessionID string                         `json:"session_id"`
	Summary   string                         `json:"summary"`
	Candidate conversation.StructuredSummary `json:"candidate"`
}

// AnalyticsResponse represents the response for /sessions/{id}/analytics
type AnalyticsResponse struct {
	SessionID string                 `json:"session_id"`
	Analytics conversation.Analytics `json:"analytics"`
}

// LanguagesResponse represents the response for /languages
type LanguagesResponse struct {
	Languages []types.LanguageInfo `json:"languages"`
	Default   string               `json:"default"`
}

// handleChat runs one conversation turn for a session
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.respondError(w, validationError(err))
		return
	}

	// A missing session ID starts a new interview
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	} else if !session.ValidSessionID(sessionID) {
		s.respondError(w, &ErrValidation{Field: "session_id", Message: "invalid format"})
		return
	}

	turn, err := s.manager.ProcessMessage(r.Context(), sessionID, req.Message)
	if err != nil {
		log.Printf("Chat turn failed for session %s: %v", sessionID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{
		SessionID: sessionID,
		Reply:     turn.Reply,
		Stage:     turn.Stage.String(),
		Language:  turn.Language,
		Complete:  turn.Complete,
	})
}

// handleResetSession discards a session's collected data
func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := s.sessionIDFromPath(w, r)
	if !ok {
		return
	}

	if err := s.manager.Reset(r.Context(), sessionID); err != nil {
		log.Printf("Reset failed for session %s: %v", sessionID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to reset session")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ResetResponse{
		SessionID: sessionID,
		Status:    "reset",
	})
}

// handleSessionAnalytics returns interview progress for a session
func (s *Server) handleSessionAnalytics(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := s.sessionIDFromPath(w, r)
	if !ok {
		return
	}

	record, err := s.manager.Session(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if record == nil {
		s.respondError(w, &ErrSessionNotFound{SessionID: sessionID})
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyticsResponse{
		SessionID: sessionID,
		Analytics: conversation.ComputeAnalytics(record),
	})
}

// handleSessionSummary returns the candidate summary for a session
func (s *Server) handleSessionSummary(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := s.sessionIDFromPath(w, r)
	if !ok {
		return
	}

	record, err := s.manager.Session(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if record == nil {
		s.respondError(w, &ErrSessionNotFound{SessionID: sessionID})
		return
	}

	s.jsonResponse(w, http.StatusOK, SummaryResponse{
		SessionID: sessionID,
		Summary:   conversation.CandidateSummary(record),
		Candidate: conversation.StructuredCandidateSummary(record),
	})
}

// handleLanguages returns the supported interview languages
func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	supported := language.Supported()
	languages := make([]types.LanguageInfo, 0, len(supported))
	for _, lang := range supported {
		languages = append(languages, types.LanguageInfo{
			Code:       lang.Code,
			Name:       lang.Name,
			NativeName: lang.NativeName,
			Flag:       lang.Flag,
		})
	}

	s.jsonResponse(w, http.StatusOK, LanguagesResponse{
		Languages: languages,
		Default:   language.DefaultCode,
	})
}

// sessionIDFromPath extracts and validates the session ID path segment.
func (s *Server) sessionIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		s.respondError(w, &ErrValidation{Field: "session_id", Message: "required"})
		return "", false
	}
	if !session.ValidSessionID(sessionID) {
		s.respondError(w, &ErrValidation{Field: "session_id", Message: "invalid format"})
		return "", false
	}
	return sessionID, true
}
