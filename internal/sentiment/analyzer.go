// Package sentiment scores candidate messages against a hosted emotion
// model and turns the results into recruiter-facing feedback. Failures
// never surface to the candidate: anything that goes wrong reads as
// neutral.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/screening-assistant/internal/types"
)

const (
	defaultAPIURL = "https://api-inference.huggingface.co/models/j-hartmann/emotion-english-distilroberta-base"

	// Scores below this are too weak to base feedback on.
	minFeedbackScore = 0.5
)

// Scores maps emotion labels to model confidence.
type Scores map[string]float64

func neutralScores() Scores {
	return Scores{"neutral": 1.0}
}

// Analyzer calls the HuggingFace inference API. An empty API key yields an
// analyzer that always reports neutral.
type Analyzer struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewAnalyzer creates an analyzer for the emotion model.
func NewAnalyzer(apiKey string) *Analyzer {
	return &Analyzer{
		apiKey: apiKey,
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Available reports whether a real API key is configured.
func (a *Analyzer) Available() bool {
	return a.apiKey != ""
}

// Analyze scores the text. Any failure yields the neutral result.
func (a *Analyzer) Analyze(ctx context.Context, text string) Scores {
	if !a.Available() {
		return neutralScores()
	}

	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return neutralScores()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return neutralScores()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		log.Printf("Sentiment request failed: %v", err)
		return neutralScores()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Sentiment API returned status %d", resp.StatusCode)
		return neutralScores()
	}

	var result [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("Sentiment response unreadable: %v", err)
		return neutralScores()
	}
	if len(result) == 0 || len(result[0]) == 0 {
		return neutralScores()
	}

	scores := make(Scores, len(result[0]))
	for _, e := range result[0] {
		scores[e.Label] = e.Score
	}
	return scores
}

// Dominant returns the highest scoring emotion. Ties break alphabetically
// so the result is stable.
func Dominant(scores Scores) (string, float64) {
	best := ""
	bestScore := -1.0
	for emotion, score := range scores {
		if score > bestScore || (score == bestScore && emotion < best) {
			best = emotion
			bestScore = score
		}
	}
	if best == "" {
		return "neutral", 1.0
	}
	return best, bestScore
}

// Feedback converts a dominant emotion into a recruiter note. Weak or
// neutral readings produce no feedback.
func Feedback(emotion string, score float64) string {
	if score < minFeedbackScore {
		return ""
	}
	switch emotion {
	case "joy":
		return "Candidate appears enthusiastic and positive about the opportunity."
	case "sadness":
		return "Candidate seems hesitant or uncertain. Consider asking encouraging follow-up questions to boost confidence."
	case "anger":
		return "Candidate may be frustrated with the process. Consider a more supportive approach or clarify any confusing questions."
	case "fear":
		return "Candidate appears nervous or anxious. Consider a more reassuring tone and provide clear expectations."
	case "surprise":
		return "Candidate seems surprised by the questions. Consider providing more context about the interview process."
	case "disgust":
		return "Candidate may be uncomfortable with the current topic. Consider shifting to a different area of discussion."
	default:
		return ""
	}
}

// Progress summarizes the emotional arc of the interview.
type Progress struct {
	OverallState string
	Confidence   float64
	Feedback     string
	Distribution Scores
}

// AnalyzeProgress aggregates the recorded per-message sentiment history
// into an overall state, emotional shifts, and recruiter feedback.
func AnalyzeProgress(entries []types.SentimentEntry) Progress {
	if len(entries) == 0 {
		return Progress{OverallState: "neutral", Confidence: 1.0, Distribution: neutralScores()}
	}

	distribution := make(Scores)
	for _, e := range entries {
		distribution[e.Emotion] += e.Score
	}
	for emotion := range distribution {
		distribution[emotion] /= float64(len(entries))
	}
	state, confidence := Dominant(distribution)

	var shifts [][2]string
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Emotion != entries[i].Emotion {
			shifts = append(shifts, [2]string{entries[i-1].Emotion, entries[i].Emotion})
		}
	}

	var feedback []string
	var significant [][2]string
	for _, s := range shifts {
		if s[0] != "neutral" && s[1] != "neutral" {
			significant = append(significant, s)
		}
	}
	if len(significant) > 0 {
		feedback = append(feedback, fmt.Sprintf(
			"Candidate's emotional state shifted from %s to %s during the interview.",
			significant[0][0], significant[len(significant)-1][1]))
	}
	if note := Feedback(state, confidence); note != "" {
		feedback = append(feedback, note)
	}
	if confidence > 0.8 {
		feedback = append(feedback, "High confidence in emotional assessment.")
	} else if confidence < 0.6 {
		feedback = append(feedback, "Low confidence in emotional assessment - consider manual review.")
	}

	return Progress{
		OverallState: state,
		Confidence:   confidence,
		Feedback:     strings.Join(feedback, " "),
		Distribution: distribution,
	}
}
