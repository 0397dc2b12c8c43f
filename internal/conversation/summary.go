package conversation

import (
	"fmt"
	"strings"

	"github.com/jonathan/screening-assistant/internal/types"
)

// CandidateSummary renders the recruiter-facing text summary of a session.
// Only collected fields appear; answers are truncated to 100 characters.
func CandidateSummary(record *types.CandidateRecord) string {
	if record == nil || record.Empty() {
		return "No candidate data found."
	}

	lines := []string{"Candidate Summary:"}
	if record.Name != "" {
		lines = append(lines, "Name: "+record.Name)
	}
	if record.Email != "" {
		lines = append(lines, "Email: "+record.Email)
	}
	if record.Phone != "" {
		lines = append(lines, "Phone: "+record.Phone)
	}
	if record.Location != "" {
		lines = append(lines, "Location: "+record.Location)
	}
	if record.YearsExperience != nil {
		lines = append(lines, "Experience: "+formatYears(record.YearsExperience)+" years")
	}
	if record.Position != "" {
		lines = append(lines, "Desired Position: "+record.Position)
	}

	if len(record.TechStack) > 0 {
		lines = append(lines, "\nTech Stack:")
		for _, tech := range record.TechStack {
			lines = append(lines, "- "+tech)
		}
	}
	if len(record.TechnicalQuestions) > 0 {
		lines = append(lines, "\nTechnical Questions Asked:")
		for i, question := range record.TechnicalQuestions {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, question))
		}
	}
	if len(record.TechnicalAnswers) > 0 {
		lines = append(lines, "\nCandidate's Answers:")
		for i, answer := range record.TechnicalAnswers {
			lines = append(lines, fmt.Sprintf("Q%d: %s...", i+1, truncate(answer, 100)))
		}
	}
	return strings.Join(lines, "\n")
}

// StructuredSummary is the API view of a candidate record, split the way
// the recruiter dashboard renders it.
type StructuredSummary struct {
	BasicInfo     BasicInfo     `json:"basic_info"`
	TechnicalInfo TechnicalInfo `json:"technical_info"`
}

// BasicInfo holds the collected contact fields, with "Not provided"
// placeholders for anything still missing.
type BasicInfo struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Position        string `json:"position"`
	Location        string `json:"location"`
	YearsExperience string `json:"years_experience"`
}

// TechnicalInfo holds the tech stack and the question round.
type TechnicalInfo struct {
	TechStack          []string `json:"tech_stack"`
	TechnicalQuestions []string `json:"technical_questions"`
	TechnicalAnswers   []string `json:"technical_answers"`
}

// StructuredCandidateSummary builds the structured summary variant.
func StructuredCandidateSummary(record *types.CandidateRecord) StructuredSummary {
	if record == nil {
		record = types.NewCandidateRecord()
	}
	return StructuredSummary{
		BasicInfo: BasicInfo{
			Name:            valueOr(record.Name),
			Email:           valueOr(record.Email),
			Phone:           valueOr(record.Phone),
			Position:        valueOr(record.Position),
			Location:        valueOr(record.Location),
			YearsExperience: formatYears(record.YearsExperience),
		},
		TechnicalInfo: TechnicalInfo{
			TechStack:          record.TechStack,
			TechnicalQuestions: record.TechnicalQuestions,
			TechnicalAnswers:   record.TechnicalAnswers,
		},
	}
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
