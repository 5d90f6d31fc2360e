// internals/features/surveys/surveys/model/survey_question_model.go
package model

import (
	"github.com/google/uuid"

	questionModel "surveyku_backend/internals/features/surveys/questions/model"
)

// SurveyQuestionModel: relasi survey <-> question dengan urutan & override "required" per survey.
type SurveyQuestionModel struct {
	SurveyQuestionSurveyID   uuid.UUID `gorm:"type:uuid;primaryKey;column:survey_question_survey_id" json:"survey_question_survey_id"`
	SurveyQuestionQuestionID uuid.UUID `gorm:"type:uuid;primaryKey;column:survey_question_question_id" json:"survey_question_question_id"`

	SurveyQuestionSortOrder  int  `gorm:"not null;index;column:survey_question_sort_order" json:"survey_question_sort_order"`
	SurveyQuestionIsRequired bool `gorm:"not null;column:survey_question_is_required" json:"survey_question_is_required"`
}

func (SurveyQuestionModel) TableName() string { return "survey_questions" }

// SurveyQuestionRow: hasil join survey_questions + questions (read-only).
type SurveyQuestionRow struct {
	questionModel.QuestionModel
	SurveyQuestionSortOrder  int  `gorm:"column:survey_question_sort_order"`
	SurveyQuestionIsRequired bool `gorm:"column:survey_question_is_required"`
}
