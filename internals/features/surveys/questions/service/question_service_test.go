package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyModel "surveyku_backend/internals/features/companies/company/model"
	"surveyku_backend/internals/features/surveys/questions/dto"
	"surveyku_backend/internals/features/surveys/questions/model"
	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/testutil"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateQuestion(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewQuestionService(db)
	ctx := context.Background()

	m, err := svc.Create(ctx, dto.CreateQuestionRequest{
		QuestionText:      "  How satisfied are you? ",
		QuestionType:      " Rating ",
		QuestionCategory:  strPtr("service"),
		QuestionSortOrder: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "How satisfied are you?", m.QuestionText)
	assert.Equal(t, model.TypeRating, m.QuestionType)
	assert.Equal(t, 3, m.QuestionSortOrder)
	assert.True(t, m.QuestionIsActive)
	assert.False(t, m.QuestionIsRequired)

	got, err := svc.GetByID(ctx, m.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, model.TypeRating, got.QuestionType)
}

func TestCreateQuestion_Validation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewQuestionService(db)
	ctx := context.Background()
	ghost := uuid.New()

	tests := []struct {
		name string
		req  dto.CreateQuestionRequest
	}{
		{"unknown type", dto.CreateQuestionRequest{QuestionText: "Q", QuestionType: "essay"}},
		{"blank text", dto.CreateQuestionRequest{QuestionText: "  ", QuestionType: "text"}},
		{"missing type", dto.CreateQuestionRequest{QuestionText: "Q"}},
		{"unknown company", dto.CreateQuestionRequest{QuestionText: "Q", QuestionType: "text", QuestionCompanyID: &ghost}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.True(t, helper.IsValidation(err), "got %v", err)
		})
	}

	var n int64
	require.NoError(t, db.Model(&model.QuestionModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateQuestion(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewQuestionService(db)
	ctx := context.Background()
	q := testutil.SeedQuestion(t, db, "Original")

	_, err := svc.Update(ctx, dto.UpdateQuestionRequest{QuestionID: q.QuestionID})
	assert.True(t, helper.IsValidation(err))

	_, err = svc.Update(ctx, dto.UpdateQuestionRequest{QuestionID: q.QuestionID, QuestionType: strPtr("essay")})
	assert.True(t, helper.IsValidation(err))

	_, err = svc.Update(ctx, dto.UpdateQuestionRequest{QuestionID: uuid.New(), QuestionText: strPtr("x")})
	assert.True(t, helper.IsNotFound(err))

	co := &companyModel.CompanyModel{CompanyName: "Acme", CompanyIsActive: true}
	require.NoError(t, db.Create(co).Error)
	required := true
	got, err := svc.Update(ctx, dto.UpdateQuestionRequest{
		QuestionID:         q.QuestionID,
		QuestionType:       strPtr("multiple_choice"),
		QuestionCompanyID:  &co.CompanyID,
		QuestionIsRequired: &required,
	})
	require.NoError(t, err)
	assert.Equal(t, "Original", got.QuestionText)
	assert.Equal(t, model.TypeMultipleChoice, got.QuestionType)
	assert.True(t, got.QuestionIsRequired)
	require.NotNil(t, got.QuestionCompanyID)
	assert.Equal(t, co.CompanyID, *got.QuestionCompanyID)
}

func TestListQuestions(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewQuestionService(db)
	ctx := context.Background()

	for _, req := range []dto.CreateQuestionRequest{
		{QuestionText: "Name?", QuestionType: "text", QuestionSortOrder: intPtr(2)},
		{QuestionText: "Score?", QuestionType: "rating", QuestionSortOrder: intPtr(1)},
		{QuestionText: "Pick one", QuestionType: "multiple_choice", QuestionCategory: strPtr("general")},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}
	page := helper.Params{Page: 1, PerPage: 10, SortBy: "sort_order", SortOrder: "asc"}

	rows, total, err := svc.List(ctx, dto.ListQuestionsQuery{Paging: page})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	assert.Equal(t, "Pick one", rows[0].QuestionText)
	assert.Equal(t, "Score?", rows[1].QuestionText)

	rows, _, err = svc.List(ctx, dto.ListQuestionsQuery{Type: "RATING", Paging: page})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Score?", rows[0].QuestionText)

	rows, _, err = svc.List(ctx, dto.ListQuestionsQuery{Category: "general", Paging: page})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, _, err = svc.List(ctx, dto.ListQuestionsQuery{Type: "essay", Paging: page})
	assert.True(t, helper.IsValidation(err))
}
