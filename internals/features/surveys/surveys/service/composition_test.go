package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"surveyku_backend/internals/constants"
	questionModel "surveyku_backend/internals/features/surveys/questions/model"
	"surveyku_backend/internals/features/surveys/surveys/model"
	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/testutil"
)

type link struct {
	QuestionID uuid.UUID
	SortOrder  int
	IsRequired bool
}

func links(t *testing.T, db *gorm.DB, surveyID uuid.UUID) []link {
	t.Helper()
	var rows []model.SurveyQuestionModel
	require.NoError(t, db.
		Where("survey_question_survey_id = ?", surveyID).
		Order("survey_question_sort_order ASC").
		Find(&rows).Error)
	out := make([]link, 0, len(rows))
	for _, r := range rows {
		out = append(out, link{r.SurveyQuestionQuestionID, r.SurveyQuestionSortOrder, r.SurveyQuestionIsRequired})
	}
	return out
}

type fixture struct {
	db     *gorm.DB
	svc    *SurveyService
	survey *model.SurveyModel
	q      []*questionModel.QuestionModel
}

func setupComposition(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	admin := testutil.SeedUser(t, db, "admin", "secret123", constants.LevelAdmin, true)
	f := fixture{db: db, svc: NewSurveyService(db), survey: testutil.SeedSurvey(t, db, "Onboarding", admin.ID)}
	for _, text := range []string{"Q1", "Q2", "Q3", "Q4", "Q5"} {
		f.q = append(f.q, testutil.SeedQuestion(t, db, text))
	}
	return f
}

func seedLink(t *testing.T, db *gorm.DB, surveyID, questionID uuid.UUID, order int, required bool) {
	t.Helper()
	require.NoError(t, db.Create(&model.SurveyQuestionModel{
		SurveyQuestionSurveyID:   surveyID,
		SurveyQuestionQuestionID: questionID,
		SurveyQuestionSortOrder:  order,
		SurveyQuestionIsRequired: required,
	}).Error)
}

func TestSetSurveyQuestions_ReplacesAndReorders(t *testing.T) {
	f := setupComposition(t)
	ctx := context.Background()
	q1, q3, q5 := f.q[0].QuestionID, f.q[2].QuestionID, f.q[4].QuestionID

	// existing [Q3@0 required, Q5@1]
	seedLink(t, f.db, f.survey.SurveyID, q3, 0, true)
	seedLink(t, f.db, f.survey.SurveyID, q5, 1, false)

	require.NoError(t, f.svc.SetSurveyQuestions(ctx, f.survey.SurveyID, []uuid.UUID{q5, q1}))
	assert.Equal(t, []link{{q5, 0, false}, {q1, 1, false}}, links(t, f.db, f.survey.SurveyID))
}

func TestSetSurveyQuestions_Idempotent(t *testing.T) {
	f := setupComposition(t)
	ctx := context.Background()
	ids := []uuid.UUID{f.q[1].QuestionID, f.q[3].QuestionID, f.q[0].QuestionID}

	require.NoError(t, f.svc.SetSurveyQuestions(ctx, f.survey.SurveyID, ids))
	first := links(t, f.db, f.survey.SurveyID)
	require.NoError(t, f.svc.SetSurveyQuestions(ctx, f.survey.SurveyID, ids))
	assert.Equal(t, first, links(t, f.db, f.survey.SurveyID))
	assert.Len(t, first, 3)
	for i, l := range first {
		assert.Equal(t, ids[i], l.QuestionID)
		assert.Equal(t, i, l.SortOrder)
	}
}

func TestSetSurveyQuestions_UnknownQuestionChangesNothing(t *testing.T) {
	f := setupComposition(t)
	ctx := context.Background()
	q2 := f.q[1].QuestionID
	seedLink(t, f.db, f.survey.SurveyID, q2, 0, true)
	before := links(t, f.db, f.survey.SurveyID)

	ghost := uuid.New()
	err := f.svc.SetSurveyQuestions(ctx, f.survey.SurveyID, []uuid.UUID{f.q[0].QuestionID, ghost, uuid.New()})
	require.Error(t, err)
	assert.True(t, helper.IsValidation(err))
	assert.Contains(t, err.Error(), ghost.String())

	assert.Equal(t, before, links(t, f.db, f.survey.SurveyID))
}

func TestSetSurveyQuestions_MissingSurvey(t *testing.T) {
	f := setupComposition(t)
	err := f.svc.SetSurveyQuestions(context.Background(), uuid.New(), []uuid.UUID{f.q[0].QuestionID})
	assert.True(t, helper.IsNotFound(err))

	var n int64
	require.NoError(t, f.db.Model(&model.SurveyQuestionModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSetSurveyQuestions_EmptyClears(t *testing.T) {
	f := setupComposition(t)
	seedLink(t, f.db, f.survey.SurveyID, f.q[0].QuestionID, 0, false)
	seedLink(t, f.db, f.survey.SurveyID, f.q[1].QuestionID, 1, false)

	require.NoError(t, f.svc.SetSurveyQuestions(context.Background(), f.survey.SurveyID, []uuid.UUID{}))
	assert.Empty(t, links(t, f.db, f.survey.SurveyID))
}

func TestSetSurveyQuestions_RepeatedIDsKeepFirstPosition(t *testing.T) {
	f := setupComposition(t)
	q1, q2 := f.q[0].QuestionID, f.q[1].QuestionID
	seedLink(t, f.db, f.survey.SurveyID, f.q[2].QuestionID, 0, false)

	require.NoError(t, f.svc.SetSurveyQuestions(context.Background(), f.survey.SurveyID, []uuid.UUID{q1, q2, q1}))
	assert.Equal(t, []link{{q1, 0, false}, {q2, 1, false}}, links(t, f.db, f.survey.SurveyID))
}

func TestSetSurveyQuestions_InsertFailureRollsBack(t *testing.T) {
	f := setupComposition(t)
	seedLink(t, f.db, f.survey.SurveyID, f.q[2].QuestionID, 0, true)
	before := links(t, f.db, f.survey.SurveyID)

	// gagalkan insert ke survey_questions setelah delete sudah jalan di dalam transaksi
	require.NoError(t, f.db.Callback().Create().Before("gorm:create").Register("test:fail_survey_questions", func(tx *gorm.DB) {
		if tx.Statement.Table == "survey_questions" {
			_ = tx.AddError(errors.New("insert refused"))
		}
	}))

	err := f.svc.SetSurveyQuestions(context.Background(), f.survey.SurveyID, []uuid.UUID{f.q[0].QuestionID, f.q[1].QuestionID})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, helper.StatusOf(err))
	assert.Equal(t, before, links(t, f.db, f.survey.SurveyID))
	assert.Equal(t, []link{{f.q[2].QuestionID, 0, true}}, before)
}

func TestSetSurveyQuestions_OtherSurveysUntouched(t *testing.T) {
	f := setupComposition(t)
	other := testutil.SeedSurvey(t, f.db, "Exit", f.survey.SurveyCreatedBy)
	seedLink(t, f.db, other.SurveyID, f.q[0].QuestionID, 0, true)

	require.NoError(t, f.svc.SetSurveyQuestions(context.Background(), f.survey.SurveyID, []uuid.UUID{f.q[0].QuestionID}))
	assert.Equal(t, []link{{f.q[0].QuestionID, 0, true}}, links(t, f.db, other.SurveyID))
}

func TestQuestions_OrderedBySurveyPosition(t *testing.T) {
	f := setupComposition(t)
	ctx := context.Background()
	ids := []uuid.UUID{f.q[4].QuestionID, f.q[0].QuestionID, f.q[2].QuestionID}
	require.NoError(t, f.svc.SetSurveyQuestions(ctx, f.survey.SurveyID, ids))

	require.NoError(t, f.db.Model(&questionModel.QuestionModel{}).
		Where("question_id = ?", f.q[0].QuestionID).
		Update("question_is_active", false).Error)

	all, err := f.svc.Questions(ctx, f.survey.SurveyID, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Q5", all[0].QuestionText)
	assert.Equal(t, "Q1", all[1].QuestionText)
	assert.Equal(t, "Q3", all[2].QuestionText)
	assert.Equal(t, 2, all[2].SurveyQuestionSortOrder)

	active, err := f.svc.Questions(ctx, f.survey.SurveyID, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Q5", active[0].QuestionText)
	assert.Equal(t, "Q3", active[1].QuestionText)
}
