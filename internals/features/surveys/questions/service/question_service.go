package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	companyModel "surveyku_backend/internals/features/companies/company/model"
	"surveyku_backend/internals/features/surveys/questions/dto"
	"surveyku_backend/internals/features/surveys/questions/model"
	helper "surveyku_backend/internals/helpers"
)

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

var questionSortColumns = map[string]string{
	"sort_order": "question_sort_order",
	"created_at": "question_created_at",
	"type":       "question_type",
	"category":   "question_category",
}

func (s *QuestionService) List(ctx context.Context, q dto.ListQuestionsQuery) ([]model.QuestionModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.QuestionModel{})
	if q.Active != nil {
		tx = tx.Where("question_is_active = ?", *q.Active)
	}
	if strings.TrimSpace(q.Type) != "" {
		t, ok := model.ParseType(q.Type)
		if !ok {
			return nil, 0, dto.ErrInvalidType()
		}
		tx = tx.Where("question_type = ?", t)
	}
	if v := strings.TrimSpace(q.Category); v != "" {
		tx = tx.Where("question_category = ?", v)
	}
	if q.CompanyID != nil {
		tx = tx.Where("question_company_id = ?", *q.CompanyID)
	}
	if term := strings.ToLower(strings.TrimSpace(q.Q)); term != "" {
		tx = tx.Where("LOWER(question_text) LIKE ?", "%"+term+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, helper.ErrInternal("Failed to count questions", err)
	}
	var rows []model.QuestionModel
	if err := tx.
		Order(q.Paging.OrderBy(questionSortColumns, "sort_order")).
		Order("question_created_at ASC").
		Limit(q.Paging.Limit()).
		Offset(q.Paging.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, helper.ErrInternal("Failed to retrieve questions", err)
	}
	return rows, total, nil
}

func (s *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*model.QuestionModel, error) {
	var m model.QuestionModel
	if err := s.DB.WithContext(ctx).First(&m, "question_id = ?", id).Error; err != nil {
		if helper.IsRecordNotFound(err) {
			return nil, helper.ErrNotFound("Question not found")
		}
		return nil, helper.ErrInternal("Failed to retrieve question", err)
	}
	return &m, nil
}

func (s *QuestionService) Create(ctx context.Context, req dto.CreateQuestionRequest) (*model.QuestionModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if !model.IsValidType(model.QuestionType(req.QuestionType)) {
		return nil, dto.ErrInvalidType()
	}
	if err := s.ensureCompanyExists(ctx, req.QuestionCompanyID); err != nil {
		return nil, err
	}

	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, helper.ErrInternal("Failed to create question", err)
	}
	log.Info().Str("question_id", m.QuestionID.String()).Str("type", string(m.QuestionType)).Msg("question created")
	return m, nil
}

func (s *QuestionService) Update(ctx context.Context, req dto.UpdateQuestionRequest) (*model.QuestionModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	updates := req.Updates()
	if len(updates) == 0 {
		return nil, helper.ErrValidation("Nothing to update")
	}
	if _, err := s.GetByID(ctx, req.QuestionID); err != nil {
		return nil, err
	}
	if req.QuestionCompanyID != nil && *req.QuestionCompanyID != uuid.Nil {
		if err := s.ensureCompanyExists(ctx, req.QuestionCompanyID); err != nil {
			return nil, err
		}
	}

	updates["question_updated_at"] = time.Now().UTC()
	if err := s.DB.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("question_id = ?", req.QuestionID).
		Updates(updates).Error; err != nil {
		return nil, helper.ErrInternal("Failed to update question", err)
	}
	return s.GetByID(ctx, req.QuestionID)
}

func (s *QuestionService) ensureCompanyExists(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&companyModel.CompanyModel{}).Where("company_id = ?", *id).Count(&n).Error; err != nil {
		return helper.ErrInternal("Failed to check company", err)
	}
	if n == 0 {
		return helper.ErrValidation("question_company_id does not reference an existing company")
	}
	return nil
}
