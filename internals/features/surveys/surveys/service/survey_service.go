package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	companyModel "surveyku_backend/internals/features/companies/company/model"
	"surveyku_backend/internals/features/surveys/surveys/dto"
	"surveyku_backend/internals/features/surveys/surveys/model"
	helper "surveyku_backend/internals/helpers"
)

type SurveyService struct {
	DB *gorm.DB
}

func NewSurveyService(db *gorm.DB) *SurveyService {
	return &SurveyService{DB: db}
}

var surveySortColumns = map[string]string{
	"created_at": "survey_created_at",
	"updated_at": "survey_updated_at",
	"title":      "survey_title",
	"start_date": "survey_start_date",
}

/* ==========================
   READ
========================== */

func (s *SurveyService) List(ctx context.Context, q dto.ListSurveysQuery) ([]model.SurveyModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.SurveyModel{})
	if q.Active != nil {
		tx = tx.Where("survey_is_active = ?", *q.Active)
	}
	if q.Public != nil {
		tx = tx.Where("survey_is_public = ?", *q.Public)
	}
	if q.CompanyID != nil {
		tx = tx.Where("survey_company_id = ?", *q.CompanyID)
	}
	if term := strings.ToLower(strings.TrimSpace(q.Q)); term != "" {
		tx = tx.Where("LOWER(survey_title) LIKE ?", "%"+term+"%")
	}
	return s.page(tx, q.Paging)
}

// ListOpen: active surveys whose date window (if any) contains today. Used by /api/u/surveys.
func (s *SurveyService) ListOpen(ctx context.Context, q dto.ListSurveysQuery) ([]model.SurveyModel, int64, error) {
	today := today()
	tx := s.DB.WithContext(ctx).Model(&model.SurveyModel{}).
		Where("survey_is_active = ?", true).
		Where("(survey_start_date IS NULL OR survey_start_date <= ?)", today).
		Where("(survey_end_date IS NULL OR survey_end_date >= ?)", today)
	if q.CompanyID != nil {
		tx = tx.Where("survey_company_id = ?", *q.CompanyID)
	}
	if term := strings.ToLower(strings.TrimSpace(q.Q)); term != "" {
		tx = tx.Where("LOWER(survey_title) LIKE ?", "%"+term+"%")
	}
	return s.page(tx, q.Paging)
}

func (s *SurveyService) page(tx *gorm.DB, p helper.Params) ([]model.SurveyModel, int64, error) {
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, helper.ErrInternal("Failed to count surveys", err)
	}
	var rows []model.SurveyModel
	if err := tx.
		Order(p.OrderBy(surveySortColumns, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, helper.ErrInternal("Failed to retrieve surveys", err)
	}
	return rows, total, nil
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *SurveyService) GetByID(ctx context.Context, id uuid.UUID) (*model.SurveyModel, error) {
	return getSurvey(s.DB.WithContext(ctx), id)
}

func getSurvey(db *gorm.DB, id uuid.UUID) (*model.SurveyModel, error) {
	var m model.SurveyModel
	if err := db.First(&m, "survey_id = ?", id).Error; err != nil {
		if helper.IsRecordNotFound(err) {
			return nil, helper.ErrNotFound("Survey not found")
		}
		return nil, helper.ErrInternal("Failed to retrieve survey", err)
	}
	return &m, nil
}

// Questions returns the linked questions ordered by their position in the survey.
func (s *SurveyService) Questions(ctx context.Context, surveyID uuid.UUID, activeOnly bool) ([]model.SurveyQuestionRow, error) {
	tx := s.DB.WithContext(ctx).
		Table("survey_questions AS sq").
		Select("q.*, sq.survey_question_sort_order, sq.survey_question_is_required").
		Joins("JOIN questions AS q ON q.question_id = sq.survey_question_question_id").
		Where("sq.survey_question_survey_id = ?", surveyID)
	if activeOnly {
		tx = tx.Where("q.question_is_active = ?", true)
	}
	var rows []model.SurveyQuestionRow
	if err := tx.Order("sq.survey_question_sort_order ASC").Scan(&rows).Error; err != nil {
		return nil, helper.ErrInternal("Failed to retrieve survey questions", err)
	}
	return rows, nil
}

func (s *SurveyService) GetDetail(ctx context.Context, id uuid.UUID) (*dto.SurveyDetailResponse, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.Questions(ctx, id, false)
	if err != nil {
		return nil, err
	}
	out := dto.NewDetail(m, rows)
	return &out, nil
}

// GetOpenDetail: inactive or closed surveys are reported as not found to end users.
func (s *SurveyService) GetOpenDetail(ctx context.Context, id uuid.UUID) (*dto.SurveyDetailResponse, error) {
	t := today()
	var m model.SurveyModel
	err := s.DB.WithContext(ctx).
		Where("survey_id = ? AND survey_is_active = ?", id, true).
		Where("(survey_start_date IS NULL OR survey_start_date <= ?)", t).
		Where("(survey_end_date IS NULL OR survey_end_date >= ?)", t).
		First(&m).Error
	if err != nil {
		if helper.IsRecordNotFound(err) {
			return nil, helper.ErrNotFound("Survey not found")
		}
		return nil, helper.ErrInternal("Failed to retrieve survey", err)
	}
	rows, err := s.Questions(ctx, id, true)
	if err != nil {
		return nil, err
	}
	out := dto.NewDetail(&m, rows)
	return &out, nil
}

/* ==========================
   WRITE
========================== */

// Create inserts the survey and, when QuestionIDs is set, its question links in one transaction.
func (s *SurveyService) Create(ctx context.Context, req dto.CreateSurveyRequest) (*dto.SurveyDetailResponse, error) {
	req.Normalize()
	if req.CreatedBy == uuid.Nil {
		return nil, helper.ErrUnauthorized("Unauthorized")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.ensureCompanyExists(ctx, req.SurveyCompanyID); err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return helper.ErrInternal("Failed to create survey", err)
		}
		if req.QuestionIDs != nil {
			return SetSurveyQuestionsTx(tx, m.SurveyID, *req.QuestionIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("survey_id", m.SurveyID.String()).Msg("survey created")
	return s.GetDetail(ctx, m.SurveyID)
}

// Update patches the survey; QuestionIDs (when set) replaces the composition in the same transaction.
func (s *SurveyService) Update(ctx context.Context, req dto.UpdateSurveyRequest) (*dto.SurveyDetailResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cur, err := s.GetByID(ctx, req.SurveyID)
	if err != nil {
		return nil, err
	}
	updates, err := req.Updates(cur)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 && req.QuestionIDs == nil {
		return nil, helper.ErrValidation("Nothing to update")
	}
	if req.SurveyCompanyID != nil && *req.SurveyCompanyID != uuid.Nil {
		if err := s.ensureCompanyExists(ctx, req.SurveyCompanyID); err != nil {
			return nil, err
		}
	}

	updates["survey_updated_at"] = time.Now().UTC()
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SurveyModel{}).
			Where("survey_id = ?", req.SurveyID).
			Updates(updates).Error; err != nil {
			return helper.ErrInternal("Failed to update survey", err)
		}
		if req.QuestionIDs != nil {
			return SetSurveyQuestionsTx(tx, req.SurveyID, *req.QuestionIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, req.SurveyID)
}

func (s *SurveyService) ensureCompanyExists(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&companyModel.CompanyModel{}).Where("company_id = ?", *id).Count(&n).Error; err != nil {
		return helper.ErrInternal("Failed to check company", err)
	}
	if n == 0 {
		return helper.ErrValidation("survey_company_id does not reference an existing company")
	}
	return nil
}
