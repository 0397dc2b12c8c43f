package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/screening-assistant/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func TestDetermineStage(t *testing.T) {
	collected := func(fields ...string) *types.CandidateRecord {
		record := types.NewCandidateRecord()
		record.AppendMessage(types.RoleUser, "hi")
		for _, field := range fields {
			switch field {
			case types.FieldName:
				record.Name = "Jane Smith"
			case types.FieldEmail:
				record.Email = "jane@example.com"
			case types.FieldPhone:
				record.Phone = "+1-555-123-4567"
			case types.FieldYearsExperience:
				record.YearsExperience = floatPtr(6)
			case types.FieldPosition:
				record.Position = "Backend Developer"
			case types.FieldLocation:
				record.Location = "Austin, Texas, USA"
			case types.FieldTechStack:
				record.TechStack = []string{"Go", "PostgreSQL"}
			}
		}
		return record
	}

	tests := []struct {
		name   string
		record *types.CandidateRecord
		want   Stage
	}{
		{"nil record", nil, StageGreeting},
		{"fresh record", types.NewCandidateRecord(), StageGreeting},
		{"history only", collected(), StageName},
		{"name collected", collected(types.FieldName), StageContactInfo},
		{"email without phone", collected(types.FieldName, types.FieldEmail), StageContactInfo},
		{"contact complete", collected(types.FieldName, types.FieldEmail, types.FieldPhone), StageExperience},
		{
			"experience collected",
			collected(types.FieldName, types.FieldEmail, types.FieldPhone, types.FieldYearsExperience),
			StagePosition,
		},
		{
			"position collected",
			collected(types.FieldName, types.FieldEmail, types.FieldPhone, types.FieldYearsExperience, types.FieldPosition),
			StageLocation,
		},
		{
			"location collected",
			collected(types.FieldName, types.FieldEmail, types.FieldPhone, types.FieldYearsExperience,
				types.FieldPosition, types.FieldLocation),
			StageTechStack,
		},
		{
			"stack without questions",
			collected(types.AllFields...),
			StageTechnicalQuestions,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineStage(tt.record))
		})
	}

	t.Run("question round in progress", func(t *testing.T) {
		record := collected(types.AllFields...)
		record.TechnicalQuestions = []string{"q1", "q2", "q3"}
		record.TechnicalAnswers = []string{"a1"}
		assert.Equal(t, StageTechnicalQuestions, DetermineStage(record))
	})

	t.Run("all questions answered", func(t *testing.T) {
		record := collected(types.AllFields...)
		record.TechnicalQuestions = []string{"q1", "q2"}
		record.TechnicalAnswers = []string{"a1", "a2"}
		assert.Equal(t, StageFarewell, DetermineStage(record))
	})

	t.Run("completed session", func(t *testing.T) {
		record := collected(types.FieldName)
		record.ConversationComplete = true
		assert.Equal(t, StageComplete, DetermineStage(record))
	})
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "greeting", StageGreeting.String())
	assert.Equal(t, "contact_info", StageContactInfo.String())
	assert.Equal(t, "technical_questions", StageTechnicalQuestions.String())
	assert.Equal(t, "complete", StageComplete.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
