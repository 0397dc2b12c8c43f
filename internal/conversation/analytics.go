package conversation

import (
	"github.com/jonathan/screening-assistant/internal/types"
)

// Analytics summarizes interview progress for the dashboard endpoints.
type Analytics struct {
	CurrentStage            int      `json:"current_stage"`
	StageName               string   `json:"stage_name"`
	CompletionPercentage    float64  `json:"completion_percentage"`
	ConversationLength      int      `json:"conversation_length"`
	Language                string   `json:"language"`
	TechnicalQuestionsCount int      `json:"technical_questions_count"`
	TechnicalAnswersCount   int      `json:"technical_answers_count"`
	CollectedFields         []string `json:"collected_fields"`
	MissingFields           []string `json:"missing_fields"`
}

// ComputeAnalytics derives progress metrics from a record. Completion is
// the stage index over the complete stage, with the question round
// interpolated by the fraction of questions answered.
func ComputeAnalytics(record *types.CandidateRecord) Analytics {
	if record == nil {
		record = types.NewCandidateRecord()
	}
	stage := DetermineStage(record)

	progress := float64(stage)
	if stage == StageTechnicalQuestions && len(record.TechnicalQuestions) > 0 {
		progress += float64(len(record.TechnicalAnswers)) / float64(len(record.TechnicalQuestions))
	}

	return Analytics{
		CurrentStage:            int(stage),
		StageName:               stage.String(),
		CompletionPercentage:    progress / float64(StageComplete) * 100,
		ConversationLength:      len(record.ConversationHistory),
		Language:                record.LanguageOrDefault(),
		TechnicalQuestionsCount: len(record.TechnicalQuestions),
		TechnicalAnswersCount:   len(record.TechnicalAnswers),
		CollectedFields:         record.CollectedFields(),
		MissingFields:           record.MissingFields(),
	}
}
