package conversation

import (
	"github.com/jonathan/screening-assistant/internal/types"
)

// Stage identifies where a screening session is in the scripted interview
// flow. The stage is never stored; DetermineStage recomputes it from the
// record so a session resumes exactly where its data says it should.
type Stage int

const (
	StageGreeting Stage = iota
	StageName
	StageContactInfo
	StageExperience
	StagePosition
	StageLocation
	StageTechStack
	StageTechnicalQuestions
	StageFarewell
	StageComplete
)

var stageNames = map[Stage]string{
	StageGreeting:           "greeting",
	StageName:               "name",
	StageContactInfo:        "contact_info",
	StageExperience:         "experience",
	StagePosition:           "position",
	StageLocation:           "location",
	StageTechStack:          "tech_stack",
	StageTechnicalQuestions: "technical_questions",
	StageFarewell:           "farewell",
	StageComplete:           "complete",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// stageRequirements lists, in interview order, the fields each collection
// stage must have before the interview moves past it.
var stageRequirements = []struct {
	stage  Stage
	fields []string
}{
	{StageName, []string{types.FieldName}},
	{StageContactInfo, []string{types.FieldEmail, types.FieldPhone}},
	{StageExperience, []string{types.FieldYearsExperience}},
	{StagePosition, []string{types.FieldPosition}},
	{StageLocation, []string{types.FieldLocation}},
	{StageTechStack, []string{types.FieldTechStack}},
}

// DetermineStage computes the interview stage for a record: the first
// collection stage with a missing required field, then the question round
// until every generated question has an answer, then farewell. A finished
// session always reports complete.
func DetermineStage(record *types.CandidateRecord) Stage {
	if record == nil || record.Empty() {
		return StageGreeting
	}
	if record.ConversationComplete {
		return StageComplete
	}
	for _, req := range stageRequirements {
		for _, field := range req.fields {
			if !record.Has(field) {
				return req.stage
			}
		}
	}
	if len(record.TechnicalQuestions) == 0 {
		return StageTechnicalQuestions
	}
	if len(record.TechnicalAnswers) < len(record.TechnicalQuestions) {
		return StageTechnicalQuestions
	}
	return StageFarewell
}
