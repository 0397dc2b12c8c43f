package llm

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jonathan/screening-assistant/internal/config"
	"github.com/jonathan/screening-assistant/internal/prompts"
	"github.com/jonathan/screening-assistant/internal/questions"
)

var (
	// questionArrayPattern finds a JSON array of strings embedded in prose.
	questionArrayPattern = regexp.MustCompile(`(?s)\[\s*".*"\s*\]`)
	// numberedLinePrefix strips "1." and "2)" style list markers.
	numberedLinePrefix = regexp.MustCompile(`^\d+[.)]\s*`)
)

// GenerateTechnicalQuestions builds interview questions for the stack via
// the provider chain, then repairs whatever came back: parse a JSON array,
// scrape list lines, synthesize per-technology questions, and finally top
// up from the offline generator so the count always lands in the configured
// range.
func (r *Router) GenerateTechnicalQuestions(ctx context.Context, techStack []string, yearsExperience float64, gen *questions.Generator) []string {
	num := questions.NumQuestions(len(techStack))
	if len(techStack) == 0 {
		return gen.General(num)
	}
	difficulty := questions.DifficultyFor(yearsExperience)

	prompt := prompts.Screening("technical_questions", map[string]string{
		"MinQuestions":    strconv.Itoa(config.MinTechnicalQuestions),
		"MaxQuestions":    strconv.Itoa(config.MaxTechnicalQuestions),
		"YearsExperience": strconv.FormatFloat(yearsExperience, 'f', -1, 64),
		"TechStack":       strings.Join(techStack, ", "),
		"Difficulty":      string(difficulty),
	})

	var qs []string
	if response, err := r.Complete(ctx, prompt, QuestionOptions()); err == nil {
		qs = ParseQuestionList(response)
	} else {
		log.Printf("Question generation failed, using templates: %v", err)
	}

	if len(qs) == 0 {
		for _, tech := range techStack {
			qs = append(qs, fmt.Sprintf("Could you describe your experience with %s?", tech))
		}
	}
	if len(qs) > num {
		qs = qs[:num]
	}
	if len(qs) < num {
		for _, q := range gen.ForStack(techStack, difficulty, num) {
			if len(qs) >= num {
				break
			}
			if !slices.Contains(qs, q) {
				qs = append(qs, q)
			}
		}
	}
	return qs
}

// ParseQuestionList extracts interview questions from an LLM reply: first
// as a JSON array of strings, then by scraping lines that look like
// questions.
func ParseQuestionList(response string) []string {
	cleaned := cleanJSONBlock(response)

	candidates := []string{cleaned}
	if m := questionArrayPattern.FindString(cleaned); m != "" && m != cleaned {
		candidates = append(candidates, m)
	}
	for _, candidate := range candidates {
		if !gjson.Valid(candidate) {
			continue
		}
		parsed := gjson.Parse(candidate)
		if !parsed.IsArray() {
			continue
		}
		var qs []string
		for _, item := range parsed.Array() {
			if item.Type != gjson.String {
				continue
			}
			if q := strings.TrimSpace(item.String()); q != "" {
				qs = append(qs, q)
			}
		}
		if len(qs) > 0 {
			return qs
		}
	}

	var qs []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = numberedLinePrefix.ReplaceAllString(strings.TrimSpace(line), "")
		line = strings.Trim(line, `"', `)
		if strings.Contains(line, "?") && len(line) > 10 {
			qs = append(qs, line)
		}
	}
	return qs
}
