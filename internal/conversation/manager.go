// Package conversation drives the scripted screening interview: a stage
// machine over the candidate record, per-stage field extraction, prompt
// construction for the LLM router, and session persistence.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/screening-assistant/internal/config"
	"github.com/jonathan/screening-assistant/internal/extraction"
	"github.com/jonathan/screening-assistant/internal/language"
	"github.com/jonathan/screening-assistant/internal/llm"
	"github.com/jonathan/screening-assistant/internal/prompts"
	"github.com/jonathan/screening-assistant/internal/questions"
	"github.com/jonathan/screening-assistant/internal/sentiment"
	"github.com/jonathan/screening-assistant/internal/session"
	"github.com/jonathan/screening-assistant/internal/types"
)

// exitKeywords end the interview from any stage. Matched case-insensitively
// as substrings of the user message.
var exitKeywords = []string{"exit", "quit", "end interview", "stop", "bye", "goodbye"}

// Fixed replies the script guarantees regardless of provider availability.
const (
	exitFarewell = "Thank you for your time. The interview has been concluded. " +
		"The TalentScout team will review your information and will be in touch " +
		"if there's a match for your profile. Have a great day!"

	firstQuestionPreamble = "Thank you for sharing your technical background. " +
		"Now, I'd like to ask you a few technical questions based on your skills.\n\n" +
		"Here's the first question:\n\n"

	nextQuestionPreamble = "Thank you for your answer. Here's the next question:\n\n"

	questionsDone = "Thank you for answering all the technical questions. " +
		"Your responses have been recorded."

	notProvided = "Not provided"
)

// SentimentAnalyzer scores the emotional tone of a user message.
// *sentiment.Analyzer satisfies it.
type SentimentAnalyzer interface {
	Available() bool
	Analyze(ctx context.Context, text string) sentiment.Scores
}

// Manager runs one screening interview per session id. It is safe for
// concurrent use across sessions; concurrent turns on the same session
// are last-write-wins.
type Manager struct {
	store           session.Store
	router          *llm.Router
	analyzer        SentimentAnalyzer
	generator       *questions.Generator
	vocabulary      *extraction.Vocabulary
	defaultLanguage string
}

// NewManager wires a conversation manager. defaultLanguage applies to new
// sessions; empty means English.
func NewManager(store session.Store, router *llm.Router, analyzer SentimentAnalyzer, defaultLanguage string) *Manager {
	if defaultLanguage == "" {
		defaultLanguage = language.DefaultCode
	}
	return &Manager{
		store:           store,
		router:          router,
		analyzer:        analyzer,
		generator:       questions.NewGenerator(),
		vocabulary:      extraction.DefaultVocabulary(),
		defaultLanguage: defaultLanguage,
	}
}

// Turn is the outcome of one processed message.
type Turn struct {
	Reply    string
	Stage    Stage
	Language string
	Complete bool
}

// ProcessMessage runs one interview turn: load the session, append the
// message, extract whatever the current stage is waiting for, build the
// reply, and persist. Save failures are logged, not returned; the candidate
// still gets a reply.
func (m *Manager) ProcessMessage(ctx context.Context, sessionID, message string) (Turn, error) {
	record, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return Turn{}, fmt.Errorf("loading session %s: %w", sessionID, err)
	}
	if record == nil {
		record = types.NewCandidateRecord()
		record.Language = m.defaultLanguage
	}

	if containsExitKeyword(message) {
		record.ConversationComplete = true
		m.persist(ctx, sessionID, record)
		return m.turn(exitFarewell, record), nil
	}

	record.AppendMessage(types.RoleUser, message)
	m.updateLanguage(record, message)

	stage := DetermineStage(record)

	var reply string
	switch {
	case !m.analyzer.Available():
		reply = m.respond(ctx, stage, record, message)
	case stage == StageFarewell:
		// The farewell summary reports on sentiment, so this message
		// has to be scored before the reply is built.
		m.recordSentiment(ctx, record, message)
		reply = m.respond(ctx, stage, record, message)
	default:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			m.recordSentiment(gctx, record, message)
			return nil
		})
		g.Go(func() error {
			reply = m.respond(gctx, stage, record, message)
			return nil
		})
		_ = g.Wait()
	}

	record.AppendMessage(types.RoleAssistant, reply)
	record.TrimHistory(config.MaxHistoryLength * 2)
	m.persist(ctx, sessionID, record)

	return m.turn(reply, record), nil
}

// Reset discards a session's collected data and history.
func (m *Manager) Reset(ctx context.Context, sessionID string) error {
	record := types.NewCandidateRecord()
	record.Language = m.defaultLanguage
	if err := m.store.Save(ctx, sessionID, record); err != nil {
		return fmt.Errorf("resetting session %s: %w", sessionID, err)
	}
	return nil
}

// Session returns the stored record for a session id, or nil when none
// exists yet.
func (m *Manager) Session(ctx context.Context, sessionID string) (*types.CandidateRecord, error) {
	return m.store.Load(ctx, sessionID)
}

func (m *Manager) turn(reply string, record *types.CandidateRecord) Turn {
	return Turn{
		Reply:    reply,
		Stage:    DetermineStage(record),
		Language: record.LanguageOrDefault(),
		Complete: record.ConversationComplete,
	}
}

func (m *Manager) persist(ctx context.Context, sessionID string, record *types.CandidateRecord) {
	if err := m.store.Save(ctx, sessionID, record); err != nil {
		log.Printf("Session save failed for %s: %v", sessionID, err)
	}
}

func containsExitKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range exitKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// updateLanguage switches the session language when the detector is
// confident enough, and just logs a suggestion when it is only fairly sure.
func (m *Manager) updateLanguage(record *types.CandidateRecord, message string) {
	det := language.Detect(message)
	current := record.LanguageOrDefault()
	if det.Code == current {
		return
	}
	switch {
	case det.Confidence >= language.SwitchThreshold:
		log.Printf("Session language switched from %s to %s (confidence %.2f)", current, det.Code, det.Confidence)
		record.Language = det.Code
	case det.Confidence >= language.SuggestThreshold:
		log.Printf("Detected %s (confidence %.2f), keeping %s", det.Code, det.Confidence, current)
	}
}

func (m *Manager) recordSentiment(ctx context.Context, record *types.CandidateRecord, message string) {
	scores := m.analyzer.Analyze(ctx, message)
	emotion, score := sentiment.Dominant(scores)
	record.SentimentHistory = append(record.SentimentHistory, types.SentimentEntry{
		Message: message,
		Emotion: emotion,
		Score:   score,
	})
}

// respond dispatches on the stage the incoming message was answering.
// Handlers extract their own fields, so a message that satisfies a stage
// is acknowledged with the next stage's prompt in the same turn.
func (m *Manager) respond(ctx context.Context, stage Stage, record *types.CandidateRecord, message string) string {
	switch stage {
	case StageGreeting:
		return m.greet(ctx, record)
	case StageName:
		return m.collectName(ctx, record, message)
	case StageContactInfo:
		return m.collectContact(ctx, record, message)
	case StageExperience:
		return m.collectExperience(ctx, record, message)
	case StagePosition:
		return m.collectPosition(ctx, record, message)
	case StageLocation:
		return m.collectLocation(ctx, record, message)
	case StageTechStack:
		return m.collectTechStack(ctx, record, message)
	case StageTechnicalQuestions:
		return m.handleQuestions(ctx, record, message)
	case StageFarewell:
		return m.farewell(ctx, record)
	default:
		return language.Completion(record.LanguageOrDefault())
	}
}

// ask sends a screening prompt through the provider chain, keeping the
// reply in the session language. useCase selects the canned fallback.
func (m *Manager) ask(ctx context.Context, record *types.CandidateRecord, prompt, useCase string) string {
	prompt = language.RespondIn(prompt, record.LanguageOrDefault())
	return m.router.GetResponse(ctx, prompt, useCase, llm.DefaultOptions())
}

func (m *Manager) greet(ctx context.Context, record *types.CandidateRecord) string {
	return m.ask(ctx, record, prompts.Screening("greeting", nil), "greeting")
}

func (m *Manager) collectName(ctx context.Context, record *types.CandidateRecord, message string) string {
	var hint string
	if record.Name == "" {
		name, err := extraction.ExtractName(message)
		switch {
		case err != nil:
			hint = validationHint(err)
		case name != "":
			record.Name = name
		}
	}

	if record.Name != "" {
		prompt := prompts.Screening("candidate_info", map[string]string{
			"KnownInfo": "Name: " + record.Name,
			"NextInfo":  "email address and phone number",
		})
		return m.ask(ctx, record, prompt, "name")
	}
	prompt := prompts.Screening("candidate_info", map[string]string{
		"KnownInfo": "No information collected yet.",
		"NextInfo":  "name" + hint,
	})
	return m.ask(ctx, record, prompt, "greeting")
}

func (m *Manager) collectContact(ctx context.Context, record *types.CandidateRecord, message string) string {
	var hints []string
	if record.Email == "" {
		email, err := extraction.ExtractEmail(message)
		switch {
		case err != nil:
			hints = append(hints, validationHint(err))
		case email != "":
			record.Email = email
		}
	}
	if record.Phone == "" {
		phone, err := extraction.ExtractPhone(message)
		switch {
		case err != nil:
			hints = append(hints, validationHint(err))
		case phone != "":
			record.Phone = phone
		}
	}

	knownInfo := "Name: " + valueOr(record.Name)
	if record.Email != "" {
		knownInfo += "\nEmail: " + record.Email
	}
	if record.Phone != "" {
		knownInfo += "\nPhone: " + record.Phone
	}

	if record.Email != "" && record.Phone != "" {
		prompt := prompts.Screening("candidate_info", map[string]string{
			"KnownInfo": knownInfo,
			"NextInfo":  "years of experience in the industry",
		})
		return m.ask(ctx, record, prompt, "contact_info")
	}

	var missing []string
	if record.Email == "" {
		missing = append(missing, "email address")
	}
	if record.Phone == "" {
		missing = append(missing, "phone number")
	}
	prompt := prompts.Screening("candidate_info", map[string]string{
		"KnownInfo": knownInfo,
		"NextInfo":  strings.Join(missing, " and ") + strings.Join(hints, ""),
	})
	return m.ask(ctx, record, prompt, "name")
}

func (m *Manager) collectExperience(ctx context.Context, record *types.CandidateRecord, message string) string {
	var hint string
	if record.YearsExperience == nil {
		years, err := extraction.ExtractYears(message)
		switch {
		case err != nil:
			hint = validationHint(err)
		case years != nil:
			record.YearsExperience = years
		}
	}

	knownInfo := "Name: " + valueOr(record.Name) +
		"\nEmail: " + valueOr(record.Email) +
		"\nPhone: " + valueOr(record.Phone)

	if record.YearsExperience != nil {
		knownInfo += "\nYears of Experience: " + formatYears(record.YearsExperience)
		prompt := prompts.Screening("candidate_info", map[string]string{
			"KnownInfo": knownInfo,
			"NextInfo":  "desired position or role",
		})
		return m.ask(ctx, record, prompt, "experience")
	}
	prompt := prompts.Screening("candidate_info", map[string]string{
		"KnownInfo": knownInfo,
		"NextInfo":  "years of experience in the industry" + hint,
	})
	return m.ask(ctx, record, prompt, "contact_info")
}

func (m *Manager) collectPosition(ctx context.Context, record *types.CandidateRecord, message string) string {
	var hint string
	if record.Position == "" {
		position, err := extraction.ExtractPosition(message)
		switch {
		case err != nil:
			hint = validationHint(err)
		case position != "":
			record.Position = position
		}
	}

	knownInfo := "Name: " + valueOr(record.Name) +
		"\nEmail: " + valueOr(record.Email) +
		"\nPhone: " + valueOr(record.Phone) +
		"\nYears of Experience: " + formatYears(record.YearsExperience)

	if record.Position != "" {
		knownInfo += "\nDesired Position: " + record.Position
		prompt := prompts.Screening("candidate_info", map[string]string{
			"KnownInfo": knownInfo,
			"NextInfo":  "current location",
		})
		return m.ask(ctx, record, prompt, "position")
	}
	prompt := prompts.Screening("candidate_info", map[string]string{
		"KnownInfo": knownInfo,
		"NextInfo":  "desired position or role" + hint,
	})
	return m.ask(ctx, record, prompt, "experience")
}

func (m *Manager) collectLocation(ctx context.Context, record *types.CandidateRecord, message string) string {
	var hint string
	if record.Location == "" {
		location, err := extraction.ExtractLocation(message)
		switch {
		case err != nil:
			hint = validationHint(err)
		case location != "":
			record.Location = location
		}
	}

	knownInfo := "Name: " + valueOr(record.Name) +
		"\nEmail: " + valueOr(record.Email) +
		"\nPhone: " + valueOr(record.Phone) +
		"\nYears of Experience: " + formatYears(record.YearsExperience) +
		"\nDesired Position: " + valueOr(record.Position)

	if record.Location != "" {
		knownInfo += "\nLocation: " + record.Location
		prompt := prompts.Screening("tech_stack", map[string]string{
			"KnownInfo": knownInfo,
		})
		return m.ask(ctx, record, prompt, "location")
	}
	prompt := prompts.Screening("candidate_info", map[string]string{
		"KnownInfo": knownInfo,
		"NextInfo":  "current location" + hint,
	})
	return m.ask(ctx, record, prompt, "position")
}

func (m *Manager) collectTechStack(ctx context.Context, record *types.CandidateRecord, message string) string {
	if len(record.TechStack) == 0 {
		stack := m.vocabulary.Match(message)
		if len(stack) == 0 && !record.TechLLMAttempted {
			// One LLM attempt per session; a second unparseable answer
			// just gets the clarification prompt.
			record.TechLLMAttempted = true
			stack = m.filterTechNames(m.router.ExtractTechStack(ctx, message))
		}
		if len(stack) > 0 {
			record.TechStack = stack
		}
	}

	if len(record.TechStack) > 0 {
		record.TechnicalQuestions = m.router.GenerateTechnicalQuestions(ctx, record.TechStack, yearsOrZero(record), m.generator)
		record.TechnicalAnswers = []string{}
		return firstQuestionPreamble + record.TechnicalQuestions[0]
	}

	knownInfo := "Name: " + valueOr(record.Name) +
		"\nEmail: " + valueOr(record.Email) +
		"\nPhone: " + valueOr(record.Phone) +
		"\nYears of Experience: " + formatYears(record.YearsExperience) +
		"\nDesired Position: " + valueOr(record.Position) +
		"\nLocation: " + valueOr(record.Location)
	prompt := prompts.Screening("tech_stack", map[string]string{
		"KnownInfo": knownInfo,
	})
	return m.ask(ctx, record, prompt, "location")
}

func (m *Manager) handleQuestions(ctx context.Context, record *types.CandidateRecord, message string) string {
	if len(record.TechnicalQuestions) == 0 {
		// Session resumed with fields collected but no question set; generate
		// one and serve the first question without treating this message as
		// an answer.
		record.TechnicalQuestions = m.router.GenerateTechnicalQuestions(ctx, record.TechStack, yearsOrZero(record), m.generator)
		if record.TechnicalAnswers == nil {
			record.TechnicalAnswers = []string{}
		}
		return firstQuestionPreamble + record.TechnicalQuestions[0]
	}

	record.TechnicalAnswers = append(record.TechnicalAnswers, message)
	if len(record.TechnicalAnswers) < len(record.TechnicalQuestions) {
		return nextQuestionPreamble + record.TechnicalQuestions[len(record.TechnicalAnswers)]
	}
	return questionsDone
}

func (m *Manager) farewell(ctx context.Context, record *types.CandidateRecord) string {
	candidateInfo := CandidateSummary(record)
	if m.analyzer.Available() && len(record.SentimentHistory) > 0 {
		progress := sentiment.AnalyzeProgress(record.SentimentHistory)
		if progress.Feedback != "" {
			candidateInfo += "\n\nSentiment Analysis:\n" + progress.Feedback
		}
	}
	prompt := prompts.Screening("farewell", map[string]string{
		"CandidateInfo": candidateInfo,
	})
	reply := m.ask(ctx, record, prompt, "farewell")
	record.ConversationComplete = true
	return reply
}

// filterTechNames canonicalizes LLM-suggested technology names and drops
// fragments that do not look like technologies.
func (m *Manager) filterTechNames(names []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if canonical, ok := m.vocabulary.Canonical(name); ok {
			name = canonical
		} else if len(name) < 2 || len(name) > 30 || !hasLetter(name) {
			continue
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// validationHint turns a rejected-value error into extra prompt context so
// the assistant re-asks with the expected format.
func validationHint(err error) string {
	var verr *extraction.ValidationError
	if errors.As(err, &verr) && verr.Hint != "" {
		return fmt.Sprintf(" (the candidate's previous answer was invalid; ask again with an example like %q)", verr.Hint)
	}
	return ""
}

func valueOr(v string) string {
	if v == "" {
		return notProvided
	}
	return v
}

func formatYears(years *float64) string {
	if years == nil {
		return notProvided
	}
	return strconv.FormatFloat(*years, 'f', -1, 64)
}

func yearsOrZero(record *types.CandidateRecord) float64 {
	if record.YearsExperience == nil {
		return 0
	}
	return *record.YearsExperience
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
