package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/companies/company/dto"
	"surveyku_backend/internals/features/companies/company/model"
	userModel "surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

var companySortColumns = map[string]string{
	"company_name": "company_name",
	"created_at":   "company_created_at",
	"updated_at":   "company_updated_at",
}

func (s *CompanyService) List(ctx context.Context, q dto.ListCompaniesQuery) ([]model.CompanyModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.CompanyModel{})
	if q.Active != nil {
		tx = tx.Where("company_is_active = ?", *q.Active)
	}
	if v := strings.TrimSpace(q.Industry); v != "" {
		tx = tx.Where("LOWER(company_industry) = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(q.City); v != "" {
		tx = tx.Where("LOWER(company_city) = ?", strings.ToLower(v))
	}
	if term := strings.ToLower(strings.TrimSpace(q.Q)); term != "" {
		tx = tx.Where("LOWER(company_name) LIKE ?", "%"+term+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, helper.ErrInternal("Failed to count companies", err)
	}
	var rows []model.CompanyModel
	if err := tx.
		Order(q.Paging.OrderBy(companySortColumns, "company_name")).
		Limit(q.Paging.Limit()).
		Offset(q.Paging.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, helper.ErrInternal("Failed to retrieve companies", err)
	}
	return rows, total, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*model.CompanyModel, error) {
	var m model.CompanyModel
	if err := s.DB.WithContext(ctx).First(&m, "company_id = ?", id).Error; err != nil {
		if helper.IsRecordNotFound(err) {
			return nil, helper.ErrNotFound("Company not found")
		}
		return nil, helper.ErrInternal("Failed to retrieve company", err)
	}
	return &m, nil
}

// Exists is used by other features to validate company references.
func (s *CompanyService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.CompanyModel{}).Where("company_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (s *CompanyService) Create(ctx context.Context, req dto.CreateCompanyRequest) (*model.CompanyModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, req.CompanyName, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(ctx, req.CompanyMainContactUserID); err != nil {
		return nil, err
	}

	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.ErrConflict("Company name already exists")
		}
		return nil, helper.ErrInternal("Failed to create company", err)
	}
	log.Info().Str("company_id", m.CompanyID.String()).Msg("company created")
	return m, nil
}

func (s *CompanyService) Update(ctx context.Context, req dto.UpdateCompanyRequest) (*model.CompanyModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	updates := req.Updates()
	if len(updates) == 0 {
		return nil, helper.ErrValidation("Nothing to update")
	}

	if _, err := s.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}
	if req.CompanyName != nil {
		if err := s.ensureNameFree(ctx, *req.CompanyName, req.CompanyID); err != nil {
			return nil, err
		}
	}
	if req.CompanyMainContactUserID != nil && *req.CompanyMainContactUserID != uuid.Nil {
		if err := s.ensureUserExists(ctx, req.CompanyMainContactUserID); err != nil {
			return nil, err
		}
	}

	updates["company_updated_at"] = time.Now().UTC()
	if err := s.DB.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("company_id = ?", req.CompanyID).
		Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.ErrConflict("Company name already exists")
		}
		return nil, helper.ErrInternal("Failed to update company", err)
	}
	return s.GetByID(ctx, req.CompanyID)
}

// nama unik, dibandingkan case-insensitive
func (s *CompanyService) ensureNameFree(ctx context.Context, name string, exclude uuid.UUID) error {
	var n int64
	tx := s.DB.WithContext(ctx).Model(&model.CompanyModel{}).Where("LOWER(company_name) = ?", strings.ToLower(name))
	if exclude != uuid.Nil {
		tx = tx.Where("company_id <> ?", exclude)
	}
	if err := tx.Count(&n).Error; err != nil {
		return helper.ErrInternal("Failed to check company name", err)
	}
	if n > 0 {
		return helper.ErrConflict("Company name already exists")
	}
	return nil
}

func (s *CompanyService) ensureUserExists(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).Where("id = ?", *id).Count(&n).Error; err != nil {
		return helper.ErrInternal("Failed to check main contact user", err)
	}
	if n == 0 {
		return helper.ErrValidation("company_main_contact_user_id does not reference an existing user")
	}
	return nil
}
