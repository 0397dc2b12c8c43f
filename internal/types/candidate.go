// Package types provides type definitions for structured data used throughout the screening-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Conversation roles stored in CandidateRecord.ConversationHistory.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Candidate field names used by the stage machine, analytics, and extraction.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldYearsExperience = "years_experience"
	FieldPosition        = "position"
	FieldLocation        = "location"
	FieldTechStack       = "tech_stack"
)

// AllFields lists candidate fields in the order the interview collects them.
var AllFields = []string{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldYearsExperience,
	FieldPosition,
	FieldLocation,
	FieldTechStack,
}

// Message represents a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SentimentEntry records the detected emotion for one user message.
type SentimentEntry struct {
	Message string  `json:"message"`
	Emotion string  `json:"emotion"`
	Score   float64 `json:"score"`
}

// CandidateRecord holds everything collected from a candidate during one
// screening session. Fields start unset and fill in as the interview
// progresses; once set, a field is never overwritten by extraction.
// YearsExperience is a pointer because 0 is a legitimate collected value.
type CandidateRecord struct {
	Name                 string           `json:"name,omitempty"`
	Email                string           `json:"email,omitempty"`
	Phone                string           `json:"phone,omitempty"`
	YearsExperience      *float64         `json:"years_experience,omitempty"`
	Position             string           `json:"position,omitempty"`
	Location             string           `json:"location,omitempty"`
	TechStack            []string         `json:"tech_stack,omitempty"`
	TechnicalQuestions   []string         `json:"technical_questions,omitempty"`
	TechnicalAnswers     []string         `json:"technical_answers,omitempty"`
	Language             string           `json:"language,omitempty"`
	SentimentHistory     []SentimentEntry `json:"sentiment_history,omitempty"`
	ConversationHistory  []Message        `json:"conversation_history,omitempty"`
	ConversationComplete bool             `json:"conversation_complete,omitempty"`
	TechLLMAttempted     bool             `json:"tech_llm_attempted,omitempty"`
	Timestamp            time.Time        `json:"timestamp,omitempty"`
}

// NewCandidateRecord returns an empty record with the default language.
func NewCandidateRecord() *CandidateRecord {
	return &CandidateRecord{Language: "en"}
}

// Has reports whether the named field has been collected.
func (r *CandidateRecord) Has(field string) bool {
	switch field {
	case FieldName:
		return r.Name != ""
	case FieldEmail:
		return r.Email != ""
	case FieldPhone:
		return r.Phone != ""
	case FieldYearsExperience:
		return r.YearsExperience != nil
	case FieldPosition:
		return r.Position != ""
	case FieldLocation:
		return r.Location != ""
	case FieldTechStack:
		return len(r.TechStack) > 0
	default:
		return false
	}
}

// CollectedFields returns the names of collected fields in interview order.
func (r *CandidateRecord) CollectedFields() []string {
	collected := make([]string, 0, len(AllFields))
	for _, field := range AllFields {
		if r.Has(field) {
			collected = append(collected, field)
		}
	}
	return collected
}

// MissingFields returns the names of fields not yet collected, in interview order.
func (r *CandidateRecord) MissingFields() []string {
	missing := make([]string, 0, len(AllFields))
	for _, field := range AllFields {
		if !r.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// Empty reports whether the session has collected nothing and exchanged no messages.
func (r *CandidateRecord) Empty() bool {
	return !r.ConversationComplete &&
		len(r.ConversationHistory) == 0 &&
		len(r.CollectedFields()) == 0
}

// AppendMessage adds one turn to the conversation history.
func (r *CandidateRecord) AppendMessage(role, content string) {
	r.ConversationHistory = append(r.ConversationHistory, Message{Role: role, Content: content})
}

// TrimHistory keeps only the most recent max entries of the conversation history.
func (r *CandidateRecord) TrimHistory(max int) {
	if max > 0 && len(r.ConversationHistory) > max {
		r.ConversationHistory = r.ConversationHistory[len(r.ConversationHistory)-max:]
	}
}

// LanguageOrDefault returns the session language, falling back to English.
func (r *CandidateRecord) LanguageOrDefault() string {
	if r.Language == "" {
		return "en"
	}
	return r.Language
}
