package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	questionModel "surveyku_backend/internals/features/surveys/questions/model"
	"surveyku_backend/internals/features/surveys/surveys/model"
	helper "surveyku_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

/* ===================== REQUEST ===================== */

type CreateSurveyRequest struct {
	SurveyTitle       string     `json:"survey_title" validate:"required,max=255"`
	SurveyDescription *string    `json:"survey_description,omitempty"`
	SurveyCompanyID   *uuid.UUID `json:"survey_company_id,omitempty"`
	SurveyIsPublic    *bool      `json:"survey_is_public,omitempty"`
	SurveyIsAnonymous *bool      `json:"survey_is_anonymous,omitempty"`
	SurveyIsActive    *bool      `json:"survey_is_active,omitempty"`
	SurveyStartDate   *string    `json:"survey_start_date,omitempty"` // YYYY-MM-DD
	SurveyEndDate     *string    `json:"survey_end_date,omitempty"`

	// nil = tidak diubah; [] = kosongkan
	QuestionIDs *[]uuid.UUID `json:"question_ids,omitempty"`

	CreatedBy uuid.UUID `json:"-"`
}

func (r *CreateSurveyRequest) Normalize() {
	r.SurveyTitle = strings.TrimSpace(r.SurveyTitle)
	r.SurveyDescription = helper.NilIfBlank(r.SurveyDescription)
	r.SurveyStartDate = helper.NilIfBlank(r.SurveyStartDate)
	r.SurveyEndDate = helper.NilIfBlank(r.SurveyEndDate)
}

// ToModel parses dates and checks the window; errors are validation errors.
func (r *CreateSurveyRequest) ToModel() (*model.SurveyModel, error) {
	start, err := ParseDate("survey_start_date", r.SurveyStartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate("survey_end_date", r.SurveyEndDate)
	if err != nil {
		return nil, err
	}
	if err := CheckWindow(start, end); err != nil {
		return nil, err
	}

	m := &model.SurveyModel{
		SurveyTitle:       r.SurveyTitle,
		SurveyDescription: r.SurveyDescription,
		SurveyCompanyID:   r.SurveyCompanyID,
		SurveyCreatedBy:   r.CreatedBy,
		SurveyIsActive:    true,
		SurveyStartDate:   start,
		SurveyEndDate:     end,
	}
	if r.SurveyIsPublic != nil {
		m.SurveyIsPublic = *r.SurveyIsPublic
	}
	if r.SurveyIsAnonymous != nil {
		m.SurveyIsAnonymous = *r.SurveyIsAnonymous
	}
	if r.SurveyIsActive != nil {
		m.SurveyIsActive = *r.SurveyIsActive
	}
	return m, nil
}

type UpdateSurveyRequest struct {
	SurveyID          uuid.UUID  `json:"survey_id" validate:"required"`
	SurveyTitle       *string    `json:"survey_title,omitempty" validate:"omitempty,max=255"`
	SurveyDescription *string    `json:"survey_description,omitempty"`
	SurveyCompanyID   *uuid.UUID `json:"survey_company_id,omitempty"`
	SurveyIsPublic    *bool      `json:"survey_is_public,omitempty"`
	SurveyIsAnonymous *bool      `json:"survey_is_anonymous,omitempty"`
	SurveyIsActive    *bool      `json:"survey_is_active,omitempty"`
	SurveyStartDate   *string    `json:"survey_start_date,omitempty"`
	SurveyEndDate     *string    `json:"survey_end_date,omitempty"`

	QuestionIDs *[]uuid.UUID `json:"question_ids,omitempty"`
}

func (r *UpdateSurveyRequest) Normalize() {
	r.SurveyTitle = helper.TrimPtr(r.SurveyTitle)
	r.SurveyDescription = helper.TrimPtr(r.SurveyDescription)
	r.SurveyStartDate = helper.TrimPtr(r.SurveyStartDate)
	r.SurveyEndDate = helper.TrimPtr(r.SurveyEndDate)
}

func (r *UpdateSurveyRequest) Validate() error {
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	if r.SurveyTitle != nil && *r.SurveyTitle == "" {
		return helper.ErrValidation("survey_title cannot be empty")
	}
	return nil
}

// Updates builds the column set against the current row so the date window is checked as a whole.
func (r *UpdateSurveyRequest) Updates(cur *model.SurveyModel) (map[string]any, error) {
	up := map[string]any{}
	if r.SurveyTitle != nil {
		up["survey_title"] = *r.SurveyTitle
	}
	if r.SurveyDescription != nil {
		if *r.SurveyDescription == "" {
			up["survey_description"] = nil
		} else {
			up["survey_description"] = *r.SurveyDescription
		}
	}
	if r.SurveyCompanyID != nil {
		if *r.SurveyCompanyID == uuid.Nil {
			up["survey_company_id"] = nil
		} else {
			up["survey_company_id"] = *r.SurveyCompanyID
		}
	}
	if r.SurveyIsPublic != nil {
		up["survey_is_public"] = *r.SurveyIsPublic
	}
	if r.SurveyIsAnonymous != nil {
		up["survey_is_anonymous"] = *r.SurveyIsAnonymous
	}
	if r.SurveyIsActive != nil {
		up["survey_is_active"] = *r.SurveyIsActive
	}

	start, end := cur.SurveyStartDate, cur.SurveyEndDate
	if r.SurveyStartDate != nil {
		d, err := ParseDate("survey_start_date", helper.NilIfBlank(r.SurveyStartDate))
		if err != nil {
			return nil, err
		}
		start = d
		up["survey_start_date"] = dateValue(d)
	}
	if r.SurveyEndDate != nil {
		d, err := ParseDate("survey_end_date", helper.NilIfBlank(r.SurveyEndDate))
		if err != nil {
			return nil, err
		}
		end = d
		up["survey_end_date"] = dateValue(d)
	}
	if err := CheckWindow(start, end); err != nil {
		return nil, err
	}
	return up, nil
}

func dateValue(d *datatypes.Date) any {
	if d == nil {
		return nil
	}
	return *d
}

// ParseDate: nil/blank → nil; otherwise strict YYYY-MM-DD (UTC).
func ParseDate(field string, s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, helper.ErrValidation(field + " must be a date in YYYY-MM-DD format")
	}
	d := datatypes.Date(t)
	return &d, nil
}

func CheckWindow(start, end *datatypes.Date) error {
	if start != nil && end != nil && time.Time(*end).Before(time.Time(*start)) {
		return helper.ErrValidation("survey_end_date must not be before survey_start_date")
	}
	return nil
}

// SetSurveyQuestionsRequest — body PUT /api/admin/surveys/:id/questions
type SetSurveyQuestionsRequest struct {
	QuestionIDs []uuid.UUID `json:"question_ids"`
}

type ListSurveysQuery struct {
	Active    *bool
	Public    *bool
	CompanyID *uuid.UUID
	Q         string
	Paging    helper.Params
}

/* ===================== RESPONSE ===================== */

type SurveyResponse struct {
	SurveyID          uuid.UUID  `json:"survey_id"`
	SurveyTitle       string     `json:"survey_title"`
	SurveyDescription *string    `json:"survey_description,omitempty"`
	SurveyCompanyID   *uuid.UUID `json:"survey_company_id,omitempty"`
	SurveyCreatedBy   uuid.UUID  `json:"survey_created_by"`
	SurveyIsPublic    bool       `json:"survey_is_public"`
	SurveyIsAnonymous bool       `json:"survey_is_anonymous"`
	SurveyIsActive    bool       `json:"survey_is_active"`
	SurveyStartDate   *string    `json:"survey_start_date,omitempty"`
	SurveyEndDate     *string    `json:"survey_end_date,omitempty"`
	SurveyCreatedAt   time.Time  `json:"survey_created_at"`
	SurveyUpdatedAt   time.Time  `json:"survey_updated_at"`
}

// SurveyQuestionItem: question + posisi & override required di survey ini.
type SurveyQuestionItem struct {
	QuestionID               uuid.UUID                  `json:"question_id"`
	QuestionText             string                     `json:"question_text"`
	QuestionType             questionModel.QuestionType `json:"question_type"`
	QuestionCategory         *string                    `json:"question_category,omitempty"`
	QuestionIsActive         bool                       `json:"question_is_active"`
	QuestionIsRequired       bool                       `json:"question_is_required"`
	SurveyQuestionSortOrder  int                        `json:"survey_question_sort_order"`
	SurveyQuestionIsRequired bool                       `json:"survey_question_is_required"`
}

type SurveyDetailResponse struct {
	SurveyResponse
	Questions []SurveyQuestionItem `json:"questions"`
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

func FromModel(m *model.SurveyModel) SurveyResponse {
	return SurveyResponse{
		SurveyID:          m.SurveyID,
		SurveyTitle:       m.SurveyTitle,
		SurveyDescription: m.SurveyDescription,
		SurveyCompanyID:   m.SurveyCompanyID,
		SurveyCreatedBy:   m.SurveyCreatedBy,
		SurveyIsPublic:    m.SurveyIsPublic,
		SurveyIsAnonymous: m.SurveyIsAnonymous,
		SurveyIsActive:    m.SurveyIsActive,
		SurveyStartDate:   formatDate(m.SurveyStartDate),
		SurveyEndDate:     formatDate(m.SurveyEndDate),
		SurveyCreatedAt:   m.SurveyCreatedAt,
		SurveyUpdatedAt:   m.SurveyUpdatedAt,
	}
}

func FromModels(list []model.SurveyModel) []SurveyResponse {
	out := make([]SurveyResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

func NewDetail(m *model.SurveyModel, rows []model.SurveyQuestionRow) SurveyDetailResponse {
	items := make([]SurveyQuestionItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, SurveyQuestionItem{
			QuestionID:               r.QuestionID,
			QuestionText:             r.QuestionText,
			QuestionType:             r.QuestionType,
			QuestionCategory:         r.QuestionCategory,
			QuestionIsActive:         r.QuestionIsActive,
			QuestionIsRequired:       r.QuestionIsRequired,
			SurveyQuestionSortOrder:  r.SurveyQuestionSortOrder,
			SurveyQuestionIsRequired: r.SurveyQuestionIsRequired,
		})
	}
	return SurveyDetailResponse{SurveyResponse: FromModel(m), Questions: items}
}
