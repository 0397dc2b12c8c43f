package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/screening-assistant/internal/conversation"
	"github.com/jonathan/screening-assistant/internal/types"
)

func TestPrintAnalytics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalytics(conversation.Analytics{
		CurrentStage:         3,
		StageName:            "experience",
		CompletionPercentage: 33.333,
		ConversationLength:   6,
		Language:             "en",
		CollectedFields:      []string{"name", "email", "phone"},
		MissingFields:        []string{"years_experience", "position", "location", "tech_stack"},
	})
	output := buf.String()

	assert.Contains(t, output, "INTERVIEW PROGRESS")
	assert.Contains(t, output, "💼 Experience (4/10)")
	assert.Contains(t, output, "33.3% complete")
	assert.Contains(t, output, "6 (language: EN)")
	assert.Contains(t, output, "Collected:  name, email, phone")
	assert.Contains(t, output, "years_experience, position")
	assert.NotContains(t, output, "Questions:")
}

func TestPrintAnalytics_QuestionRound(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalytics(conversation.Analytics{
		CurrentStage:            7,
		StageName:               "technical_questions",
		CompletionPercentage:    81.5,
		ConversationLength:      16,
		Language:                "es",
		TechnicalQuestionsCount: 3,
		TechnicalAnswersCount:   1,
	})
	output := buf.String()

	assert.Contains(t, output, "🔧 Technical Questions (8/10)")
	assert.Contains(t, output, "1/3 answered")
	assert.Contains(t, output, "language: ES")
}

func TestPrintCandidateSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.CandidateRecord{
		Name:  "Jane Smith",
		Email: "jane.smith@example.com",
	}

	p.PrintCandidateSummary(record)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE SUMMARY")
	assert.Contains(t, output, "Name: Jane Smith")
	assert.Contains(t, output, "Email: jane.smith@example.com")
}

func TestPrintCandidateSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidateSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	questions := []string{
		"Could you describe your experience with Go?",
		"How do you monitor a PostgreSQL database in production?",
	}
	answers := []string{"I have used Go for five years."}

	p.PrintQuestions(questions, answers)
	output := buf.String()

	assert.Contains(t, output, "TECHNICAL QUESTIONS")
	assert.Contains(t, output, "1. ✓ Could you describe your experience with Go?")
	assert.Contains(t, output, "Answered: 1/2")
}

func TestPrintQuestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuestions(nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintSentiment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entries := []types.SentimentEntry{
		{Message: "I love building distributed systems", Emotion: "joy", Score: 0.9},
		{Message: "This role sounds like a great fit", Emotion: "joy", Score: 0.8},
	}

	p.PrintSentiment(entries)
	output := buf.String()

	assert.Contains(t, output, "SENTIMENT ANALYSIS")
	assert.Contains(t, output, "Overall state: joy")
	assert.Contains(t, output, "enthusiastic")
}

func TestPrintSentiment_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSentiment(nil)

	assert.Contains(t, buf.String(), "No sentiment recorded yet")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.CandidateRecord{
		Position: "Senior Staff Principal Distinguished Engineer Responsible For Everything",
	}

	p.PrintCandidateSummary(record)
	output := buf.String()

	// Should contain box characters and truncate the long line
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
	assert.Contains(t, output, "...")
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"greeting", "Greeting"},
		{"contact_info", "Contact Info"},
		{"technical_questions", "Technical Questions"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in))
	}
}
