// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/screening-assistant/internal/conversation"
	"github.com/jonathan/screening-assistant/internal/sentiment"
	"github.com/jonathan/screening-assistant/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// stageEmojis mark each interview stage in the progress panel.
var stageEmojis = map[string]string{
	"greeting":            "👋",
	"name":                "📝",
	"contact_info":        "📧",
	"experience":          "💼",
	"position":            "🎯",
	"location":            "📍",
	"tech_stack":          "💻",
	"technical_questions": "🔧",
	"farewell":            "👋",
	"complete":            "✅",
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padLine(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", padLine(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// padLine trims or pads a line to the box's inner width. Counting runes
// keeps multilingual candidate text from being split mid-character.
func padLine(line string) string {
	width := boxWidth - 4
	runes := []rune(line)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-len(runes))
}

// clip shortens a string to at most maxRunes runes.
func clip(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-3]) + "..."
}

// PrintAnalytics outputs interview progress for the current session.
func (p *Printer) PrintAnalytics(a conversation.Analytics) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Stage:      %s %s (%d/10)\n", stageEmoji(a.StageName), titleCase(a.StageName), a.CurrentStage+1))
	sb.WriteString(fmt.Sprintf("Progress:   %.1f%% complete\n", a.CompletionPercentage))
	sb.WriteString(fmt.Sprintf("Messages:   %d (language: %s)\n", a.ConversationLength, strings.ToUpper(a.Language)))
	if a.TechnicalQuestionsCount > 0 {
		sb.WriteString(fmt.Sprintf("Questions:  %d/%d answered\n", a.TechnicalAnswersCount, a.TechnicalQuestionsCount))
	}

	if len(a.CollectedFields) > 0 || len(a.MissingFields) > 0 {
		sb.WriteString("\n")
	}
	if len(a.CollectedFields) > 0 {
		sb.WriteString(fmt.Sprintf("Collected:  %s\n", strings.Join(a.CollectedFields, ", ")))
	}
	if len(a.MissingFields) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:    %s\n", strings.Join(a.MissingFields, ", ")))
	}

	p.printBox("INTERVIEW PROGRESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidateSummary outputs the recruiter-facing candidate summary.
func (p *Printer) PrintCandidateSummary(record *types.CandidateRecord) {
	if record == nil {
		return
	}
	p.printBox("CANDIDATE SUMMARY", conversation.CandidateSummary(record))
}

// PrintQuestions outputs the technical question round with answered marks.
func (p *Printer) PrintQuestions(questions, answers []string) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		mark := " "
		if i < len(answers) {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, mark, clip(q, 48)))
	}
	sb.WriteString(fmt.Sprintf("\nAnswered: %d/%d", len(answers), len(questions)))

	p.printBox("TECHNICAL QUESTIONS", sb.String())
}

// PrintSentiment outputs the recorded emotional arc of the interview.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSentiment(entries []types.SentimentEntry) {
	if len(entries) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", padLine("No sentiment recorded yet"))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	progress := sentiment.AnalyzeProgress(entries)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall state: %s (confidence %.2f)\n\n", progress.OverallState, progress.Confidence))

	start := len(entries) - maxItemsToShow
	if start < 0 {
		start = 0
	}
	sb.WriteString("Recent messages:\n")
	for _, e := range entries[start:] {
		sb.WriteString(fmt.Sprintf("  %s (%.2f) %q\n", e.Emotion, e.Score, clip(e.Message, 30)))
	}

	if progress.Feedback != "" {
		sb.WriteString("\n")
		sb.WriteString(progress.Feedback)
	}

	p.printBox("SENTIMENT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

func stageEmoji(stage string) string {
	if e, ok := stageEmojis[stage]; ok {
		return e
	}
	return "📋"
}

// titleCase renders a snake_case stage name for display
// ("contact_info" -> "Contact Info").
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
