package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveyku_backend/internals/constants"
	authHelper "surveyku_backend/internals/features/users/auth/helper"
	"surveyku_backend/internals/features/users/user/dto"
	"surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

var userSortColumns = map[string]string{
	"created_at": "created_at",
	"user_name":  "user_name",
	"email":      "email",
	"last_login": "last_login_at",
}

/* ==========================
   READ
========================== */

func (s *UserService) List(ctx context.Context, q dto.ListUsersQuery) ([]model.UserModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.UserModel{})
	if q.Active != nil {
		tx = tx.Where("is_active = ?", *q.Active)
	}
	if q.Level != 0 {
		if !constants.IsValidLevel(q.Level) {
			return nil, 0, helper.ErrValidation("level must be 1001 or 2002")
		}
		tx = tx.Where("user_level = ?", q.Level)
	}
	if term := strings.ToLower(strings.TrimSpace(q.Q)); term != "" {
		like := "%" + term + "%"
		tx = tx.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(COALESCE(full_name, '')) LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, helper.ErrInternal("Failed to count users", err)
	}

	var users []model.UserModel
	if err := tx.
		Order(q.Paging.OrderBy(userSortColumns, "created_at")).
		Limit(q.Paging.Limit()).
		Offset(q.Paging.Offset()).
		Find(&users).Error; err != nil {
		return nil, 0, helper.ErrInternal("Failed to retrieve users", err)
	}
	return users, total, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if helper.IsRecordNotFound(err) {
			return nil, helper.ErrNotFound("User not found")
		}
		return nil, helper.ErrInternal("Failed to retrieve user", err)
	}
	return &u, nil
}

// FindByUserName is an exact, case-sensitive match on the stored user_name.
func (s *UserService) FindByUserName(ctx context.Context, userName string) (*model.UserModel, error) {
	var u model.UserModel
	err := s.DB.WithContext(ctx).Where("user_name = ?", userName).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	err := s.DB.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserNameTaken checks user_name, ignoring the row with id == exclude (uuid.Nil = none).
func (s *UserService) UserNameTaken(ctx context.Context, userName string, exclude uuid.UUID) (bool, error) {
	return s.exists(ctx, "user_name = ?", userName, exclude)
}

func (s *UserService) EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	return s.exists(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)), exclude)
}

func (s *UserService) exists(ctx context.Context, cond string, value any, exclude uuid.UUID) (bool, error) {
	var n int64
	tx := s.DB.WithContext(ctx).Model(&model.UserModel{}).Where(cond, value)
	if exclude != uuid.Nil {
		tx = tx.Where("id <> ?", exclude)
	}
	if err := tx.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

/* ==========================
   WRITE
========================== */

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if !constants.IsValidLevel(req.UserLevel) {
		return nil, helper.ErrValidation("user_level must be 1001 (administrator) or 2002 (standard)")
	}
	if err := authHelper.ValidatePasswordStrength(req.Password); err != nil {
		return nil, helper.ErrValidation(err.Error())
	}

	if err := s.ensureUnique(ctx, &req.UserName, &req.Email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, helper.ErrInternal("Password hashing failed", err)
	}

	u := req.ToModel(hash)
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.ErrConflict("Username or email already registered")
		}
		return nil, helper.ErrInternal("Failed to create user", err)
	}

	log.Info().Str("user_id", u.ID.String()).Int("level", u.UserLevel).Msg("user created")
	return u, nil
}

// Update applies only the supplied fields and stamps updated_at.
func (s *UserService) Update(ctx context.Context, req dto.UpdateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updates := req.Updates()
	if req.Password != nil {
		if err := authHelper.ValidatePasswordStrength(*req.Password); err != nil {
			return nil, helper.ErrValidation(err.Error())
		}
		hash, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return nil, helper.ErrInternal("Password hashing failed", err)
		}
		updates["password"] = hash
	}
	if len(updates) == 0 {
		return nil, helper.ErrValidation("Nothing to update")
	}

	if _, err := s.GetByID(ctx, req.ID); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, req.UserName, req.Email, req.ID); err != nil {
		return nil, err
	}

	updates["updated_at"] = time.Now().UTC()
	if err := s.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", req.ID).
		Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.ErrConflict("Username or email already registered")
		}
		return nil, helper.ErrInternal("Failed to update user", err)
	}

	return s.GetByID(ctx, req.ID)
}

func (s *UserService) ensureUnique(ctx context.Context, userName, email *string, exclude uuid.UUID) error {
	if userName != nil {
		taken, err := s.UserNameTaken(ctx, *userName, exclude)
		if err != nil {
			return helper.ErrInternal("Failed to check username", err)
		}
		if taken {
			return helper.ErrConflict("Username already taken")
		}
	}
	if email != nil {
		taken, err := s.EmailTaken(ctx, *email, exclude)
		if err != nil {
			return helper.ErrInternal("Failed to check email", err)
		}
		if taken {
			return helper.ErrConflict("Email already registered")
		}
	}
	return nil
}

// TouchLastLogin stamps last_login_at for a successful login.
func (s *UserService) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return s.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

// SetPassword replaces the stored hash; the caller validates strength.
func (s *UserService) SetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	hash, err := authHelper.HashPassword(newPassword)
	if err != nil {
		return helper.ErrInternal("Password hashing failed", err)
	}
	if err := s.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"password": hash, "updated_at": time.Now().UTC()}).Error; err != nil {
		return helper.ErrInternal("Failed to update password", err)
	}
	return nil
}

// MigrateLevels backfills user_level: anything outside the two levels becomes standard,
// then the named accounts become administrators.
func (s *UserService) MigrateLevels(ctx context.Context, req dto.MigrateLevelsRequest) (*dto.MigrateLevelsResult, error) {
	names := make([]string, 0, len(req.AdminUserNames))
	for _, n := range req.AdminUserNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	now := time.Now().UTC()
	res := s.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_level NOT IN ?", []int{constants.LevelAdmin, constants.LevelStandard}).
		Updates(map[string]any{"user_level": constants.LevelStandard, "updated_at": now})
	if res.Error != nil {
		return nil, helper.ErrInternal("Failed to normalize user levels", res.Error)
	}
	out := &dto.MigrateLevelsResult{NormalizedToStandard: res.RowsAffected}

	if len(names) > 0 {
		res = s.DB.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("user_name IN ? AND user_level <> ?", names, constants.LevelAdmin).
			Updates(map[string]any{"user_level": constants.LevelAdmin, "updated_at": now})
		if res.Error != nil {
			return nil, helper.ErrInternal("Failed to promote administrators", res.Error)
		}
		out.PromotedToAdmin = res.RowsAffected
	}

	log.Info().
		Int64("normalized", out.NormalizedToStandard).
		Int64("promoted", out.PromotedToAdmin).
		Msg("[MIGRATE] user levels backfilled")
	return out, nil
}
