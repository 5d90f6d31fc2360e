package dto

import (
	"strings"

	userDTO "surveyku_backend/internals/features/users/user/dto"
)

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
}

type LoginResponse struct {
	User        *userDTO.UserResponse `json:"user"`
	AccessToken string                `json:"access_token"`
	TokenType   string                `json:"token_type"`
	ExpiresIn   int64                 `json:"expires_in"`
}

// RegisterRequest — self-service; level & status ditentukan server.
type RegisterRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
}

type CheckUserRequest struct {
	UserName *string `json:"user_name,omitempty"`
	Email    *string `json:"email,omitempty"`
}

type CheckUserResponse struct {
	UserNameExists bool `json:"user_name_exists"`
	EmailExists    bool `json:"email_exists"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}
