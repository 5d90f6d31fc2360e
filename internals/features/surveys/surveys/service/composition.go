package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	questionModel "surveyku_backend/internals/features/surveys/questions/model"
	"surveyku_backend/internals/features/surveys/surveys/model"
	helper "surveyku_backend/internals/helpers"
)

// SetSurveyQuestions replaces the survey's question list with questionIDs, in order.
// Repeated ids keep their first position; row i of the de-duplicated list gets sort order i
// and is_required=false. Nothing changes unless every check passes.
func (s *SurveyService) SetSurveyQuestions(ctx context.Context, surveyID uuid.UUID, questionIDs []uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return SetSurveyQuestionsTx(tx, surveyID, questionIDs)
	})
}

// SetSurveyQuestionsTx is SetSurveyQuestions inside a caller-owned transaction.
func SetSurveyQuestionsTx(tx *gorm.DB, surveyID uuid.UUID, questionIDs []uuid.UUID) error {
	if _, err := getSurvey(tx, surveyID); err != nil {
		return err
	}
	questionIDs, err := uniqueQuestionIDs(questionIDs)
	if err != nil {
		return err
	}
	if err := checkQuestionIDs(tx, questionIDs); err != nil {
		return err
	}

	if err := tx.Where("survey_question_survey_id = ?", surveyID).
		Delete(&model.SurveyQuestionModel{}).Error; err != nil {
		return helper.ErrInternal("Failed to clear survey questions", err)
	}
	if len(questionIDs) == 0 {
		return nil
	}

	links := make([]model.SurveyQuestionModel, 0, len(questionIDs))
	for i, qid := range questionIDs {
		links = append(links, model.SurveyQuestionModel{
			SurveyQuestionSurveyID:   surveyID,
			SurveyQuestionQuestionID: qid,
			SurveyQuestionSortOrder:  i,
			SurveyQuestionIsRequired: false,
		})
	}
	if err := tx.Create(&links).Error; err != nil {
		return helper.ErrInternal("Failed to link survey questions", err)
	}

	log.Info().Str("survey_id", surveyID.String()).Int("questions", len(links)).Msg("survey questions set")
	return nil
}

// uniqueQuestionIDs drops repeats (first occurrence wins) and rejects uuid.Nil.
func uniqueQuestionIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, helper.ErrValidation("question_ids contains an empty id")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// checkQuestionIDs names the first id (in input order) with no question row.
func checkQuestionIDs(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	var found []uuid.UUID
	if err := tx.Model(&questionModel.QuestionModel{}).
		Where("question_id IN ?", ids).
		Pluck("question_id", &found).Error; err != nil {
		return helper.ErrInternal("Failed to check questions", err)
	}
	exists := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		exists[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			return helper.ErrValidation("Question " + id.String() + " does not exist")
		}
	}
	return nil
}
