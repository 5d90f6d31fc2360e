package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"surveyku_backend/internals/features/surveys/questions/model"
	helper "surveyku_backend/internals/helpers"
)

/* ===================== REQUEST ===================== */

type CreateQuestionRequest struct {
	QuestionText       string     `json:"question_text" validate:"required"`
	QuestionType       string     `json:"question_type" validate:"required"`
	QuestionCategory   *string    `json:"question_category,omitempty" validate:"omitempty,max=100"`
	QuestionCompanyID  *uuid.UUID `json:"question_company_id,omitempty"`
	QuestionIsActive   *bool      `json:"question_is_active,omitempty"`
	QuestionSortOrder  *int       `json:"question_sort_order,omitempty" validate:"omitempty,min=0"`
	QuestionIsRequired *bool      `json:"question_is_required,omitempty"`

	// diisi dari token oleh controller
	CreatedBy *uuid.UUID `json:"-"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	r.QuestionType = strings.ToLower(strings.TrimSpace(r.QuestionType))
	r.QuestionCategory = helper.NilIfBlank(r.QuestionCategory)
}

func (r *CreateQuestionRequest) ToModel() *model.QuestionModel {
	m := &model.QuestionModel{
		QuestionText:      r.QuestionText,
		QuestionType:      model.QuestionType(r.QuestionType),
		QuestionCategory:  r.QuestionCategory,
		QuestionCompanyID: r.QuestionCompanyID,
		QuestionCreatedBy: r.CreatedBy,
		QuestionIsActive:  true,
	}
	if r.QuestionIsActive != nil {
		m.QuestionIsActive = *r.QuestionIsActive
	}
	if r.QuestionSortOrder != nil {
		m.QuestionSortOrder = *r.QuestionSortOrder
	}
	if r.QuestionIsRequired != nil {
		m.QuestionIsRequired = *r.QuestionIsRequired
	}
	return m
}

type UpdateQuestionRequest struct {
	QuestionID         uuid.UUID  `json:"question_id" validate:"required"`
	QuestionText       *string    `json:"question_text,omitempty"`
	QuestionType       *string    `json:"question_type,omitempty"`
	QuestionCategory   *string    `json:"question_category,omitempty" validate:"omitempty,max=100"`
	QuestionCompanyID  *uuid.UUID `json:"question_company_id,omitempty"`
	QuestionIsActive   *bool      `json:"question_is_active,omitempty"`
	QuestionSortOrder  *int       `json:"question_sort_order,omitempty" validate:"omitempty,min=0"`
	QuestionIsRequired *bool      `json:"question_is_required,omitempty"`
}

func (r *UpdateQuestionRequest) Normalize() {
	r.QuestionText = helper.TrimPtr(r.QuestionText)
	if r.QuestionType != nil {
		v := strings.ToLower(strings.TrimSpace(*r.QuestionType))
		r.QuestionType = &v
	}
	r.QuestionCategory = helper.TrimPtr(r.QuestionCategory)
}

func (r *UpdateQuestionRequest) Validate() error {
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	if r.QuestionText != nil && *r.QuestionText == "" {
		return helper.ErrValidation("question_text cannot be empty")
	}
	if r.QuestionType != nil && !model.IsValidType(model.QuestionType(*r.QuestionType)) {
		return ErrInvalidType()
	}
	return nil
}

func (r *UpdateQuestionRequest) Updates() map[string]any {
	up := map[string]any{}
	if r.QuestionText != nil {
		up["question_text"] = *r.QuestionText
	}
	if r.QuestionType != nil {
		up["question_type"] = model.QuestionType(*r.QuestionType)
	}
	if r.QuestionCategory != nil {
		if *r.QuestionCategory == "" {
			up["question_category"] = nil
		} else {
			up["question_category"] = *r.QuestionCategory
		}
	}
	if r.QuestionCompanyID != nil {
		if *r.QuestionCompanyID == uuid.Nil {
			up["question_company_id"] = nil
		} else {
			up["question_company_id"] = *r.QuestionCompanyID
		}
	}
	if r.QuestionIsActive != nil {
		up["question_is_active"] = *r.QuestionIsActive
	}
	if r.QuestionSortOrder != nil {
		up["question_sort_order"] = *r.QuestionSortOrder
	}
	if r.QuestionIsRequired != nil {
		up["question_is_required"] = *r.QuestionIsRequired
	}
	return up
}

func ErrInvalidType() error {
	return helper.ErrValidation("question_type must be one of: text, multiple_choice, rating")
}

type ListQuestionsQuery struct {
	Active    *bool
	Type      string
	Category  string
	CompanyID *uuid.UUID
	Q         string
	Paging    helper.Params
}

/* ===================== RESPONSE ===================== */

type QuestionResponse struct {
	QuestionID         uuid.UUID          `json:"question_id"`
	QuestionText       string             `json:"question_text"`
	QuestionType       model.QuestionType `json:"question_type"`
	QuestionCategory   *string            `json:"question_category,omitempty"`
	QuestionCompanyID  *uuid.UUID         `json:"question_company_id,omitempty"`
	QuestionCreatedBy  *uuid.UUID         `json:"question_created_by,omitempty"`
	QuestionIsActive   bool               `json:"question_is_active"`
	QuestionSortOrder  int                `json:"question_sort_order"`
	QuestionIsRequired bool               `json:"question_is_required"`
	QuestionCreatedAt  time.Time          `json:"question_created_at"`
	QuestionUpdatedAt  time.Time          `json:"question_updated_at"`
}

func FromModel(m *model.QuestionModel) QuestionResponse {
	return QuestionResponse{
		QuestionID:         m.QuestionID,
		QuestionText:       m.QuestionText,
		QuestionType:       m.QuestionType,
		QuestionCategory:   m.QuestionCategory,
		QuestionCompanyID:  m.QuestionCompanyID,
		QuestionCreatedBy:  m.QuestionCreatedBy,
		QuestionIsActive:   m.QuestionIsActive,
		QuestionSortOrder:  m.QuestionSortOrder,
		QuestionIsRequired: m.QuestionIsRequired,
		QuestionCreatedAt:  m.QuestionCreatedAt,
		QuestionUpdatedAt:  m.QuestionUpdatedAt,
	}
}

func FromModels(list []model.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
