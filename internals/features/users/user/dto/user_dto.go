package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"surveyku_backend/internals/constants"
	uModel "surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — untuk register / create by admin
type CreateUserRequest struct {
	UserName        string  `json:"user_name" validate:"required,min=3,max=50"`
	Email           string  `json:"email" validate:"required,email,max=255"`
	Password        string  `json:"password" validate:"required,min=8,max=72"`
	FullName        *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	City            *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State           *string `json:"state,omitempty" validate:"omitempty,max=100"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	UserLevel       int     `json:"user_level,omitempty" validate:"omitempty,oneof=1001 2002"`
	IsActive        *bool   `json:"is_active,omitempty"`
	IsEmailVerified *bool   `json:"is_email_verified,omitempty"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = helper.NilIfBlank(r.FullName)
	r.City = helper.NilIfBlank(r.City)
	r.State = helper.NilIfBlank(r.State)
	r.Phone = helper.NilIfBlank(r.Phone)
	if r.UserLevel == 0 {
		r.UserLevel = constants.LevelStandard
	}
}

// ToModel — konversi ke model (password sudah di-hash oleh service)
func (r *CreateUserRequest) ToModel(passwordHash string) *uModel.UserModel {
	m := &uModel.UserModel{
		UserName:  r.UserName,
		Email:     r.Email,
		Password:  passwordHash,
		FullName:  r.FullName,
		City:      r.City,
		State:     r.State,
		Phone:     r.Phone,
		UserLevel: r.UserLevel,
		IsActive:  true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if r.IsEmailVerified != nil {
		m.IsEmailVerified = *r.IsEmailVerified
	}
	return m
}

// UpdateUserRequest — partial update (pointer = field dikirim client)
type UpdateUserRequest struct {
	ID              uuid.UUID `json:"id" validate:"required"`
	UserName        *string   `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	Email           *string   `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password        *string   `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	FullName        *string   `json:"full_name,omitempty" validate:"omitempty,max=100"`
	City            *string   `json:"city,omitempty" validate:"omitempty,max=100"`
	State           *string   `json:"state,omitempty" validate:"omitempty,max=100"`
	Phone           *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	UserLevel       *int      `json:"user_level,omitempty"`
	IsActive        *bool     `json:"is_active,omitempty"`
	IsEmailVerified *bool     `json:"is_email_verified,omitempty"`
}

// Normalize — trims if present
func (r *UpdateUserRequest) Normalize() {
	r.UserName = helper.TrimPtr(r.UserName)
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
	r.FullName = helper.TrimPtr(r.FullName)
	r.City = helper.TrimPtr(r.City)
	r.State = helper.TrimPtr(r.State)
	r.Phone = helper.TrimPtr(r.Phone)
}

// Validate checks the fields the struct tags cannot express.
func (r *UpdateUserRequest) Validate() error {
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	if r.UserName != nil && *r.UserName == "" {
		return helper.ErrValidation("user_name cannot be empty")
	}
	if r.Email != nil && *r.Email == "" {
		return helper.ErrValidation("email cannot be empty")
	}
	if r.UserLevel != nil && !constants.IsValidLevel(*r.UserLevel) {
		return helper.ErrValidation("user_level must be 1001 (administrator) or 2002 (standard)")
	}
	return nil
}

// Updates builds the sparse column set. Password is handled by the service (hashing).
func (r *UpdateUserRequest) Updates() map[string]any {
	up := map[string]any{}
	if r.UserName != nil {
		up["user_name"] = *r.UserName
	}
	if r.Email != nil {
		up["email"] = *r.Email
	}
	if r.FullName != nil {
		up["full_name"] = nullable(*r.FullName)
	}
	if r.City != nil {
		up["city"] = nullable(*r.City)
	}
	if r.State != nil {
		up["state"] = nullable(*r.State)
	}
	if r.Phone != nil {
		up["phone"] = nullable(*r.Phone)
	}
	if r.UserLevel != nil {
		up["user_level"] = *r.UserLevel
	}
	if r.IsActive != nil {
		up["is_active"] = *r.IsActive
	}
	if r.IsEmailVerified != nil {
		up["is_email_verified"] = *r.IsEmailVerified
	}
	return up
}

// empty string clears an optional column
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ListUsersQuery — filter GET /admin/users
type ListUsersQuery struct {
	Active *bool
	Level  int
	Q      string
	Paging helper.Params
}

// MigrateLevelsRequest — body POST /admin/migrate-levels
type MigrateLevelsRequest struct {
	AdminUserNames []string `json:"admin_user_names"`
}

type MigrateLevelsResult struct {
	NormalizedToStandard int64 `json:"normalized_to_standard"`
	PromotedToAdmin      int64 `json:"promoted_to_admin"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse — proyeksi publik (tanpa password hash)
type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserName        string     `json:"user_name"`
	Email           string     `json:"email"`
	FullName        *string    `json:"full_name,omitempty"`
	City            *string    `json:"city,omitempty"`
	State           *string    `json:"state,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	IsActive        bool       `json:"is_active"`
	IsEmailVerified bool       `json:"is_email_verified"`
	UserLevel       int        `json:"user_level"`
	IsAdmin         bool       `json:"is_admin"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FromModel — map model ke UserResponse
func FromModel(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:              m.ID,
		UserName:        m.UserName,
		Email:           m.Email,
		FullName:        m.FullName,
		City:            m.City,
		State:           m.State,
		Phone:           m.Phone,
		IsActive:        m.IsActive,
		IsEmailVerified: m.IsEmailVerified,
		UserLevel:       m.UserLevel,
		IsAdmin:         m.UserLevel == constants.LevelAdmin,
		LastLoginAt:     m.LastLoginAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromModelList(list []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
