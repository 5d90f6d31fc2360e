// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveyku_backend/internals/constants"
	authDTO "surveyku_backend/internals/features/users/auth/dto"
	authHelper "surveyku_backend/internals/features/users/auth/helper"
	userDTO "surveyku_backend/internals/features/users/user/dto"
	userModel "surveyku_backend/internals/features/users/user/model"
	userService "surveyku_backend/internals/features/users/user/service"
	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/helpers/mailer"
)

// one message for every login failure cause
const msgInvalidCredentials = "Invalid username or password"

type AuthService struct {
	DB     *gorm.DB
	Users  *userService.UserService
	Tokens *TokenService
	Mailer mailer.Mailer

	ResetTTL time.Duration
	BaseURL  string
	Now      func() time.Time
}

type Options struct {
	JWTSecret string
	AccessTTL time.Duration
	ResetTTL  time.Duration
	BaseURL   string
	Mailer    mailer.Mailer
}

func NewAuthService(db *gorm.DB, opt Options) *AuthService {
	m := opt.Mailer
	if m == nil {
		m = mailer.NewLogMailer()
	}
	resetTTL := opt.ResetTTL
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	accessTTL := opt.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &AuthService{
		DB:       db,
		Users:    userService.NewUserService(db),
		Tokens:   NewTokenService(opt.JWTSecret, accessTTL),
		Mailer:   m,
		ResetTTL: resetTTL,
		BaseURL:  strings.TrimRight(opt.BaseURL, "/"),
		Now:      time.Now,
	}
}

/* ========================== LOGIN ========================== */

type LoginResult struct {
	User        *userModel.UserModel
	AccessToken string
	ExpiresAt   time.Time
}

func (s *AuthService) Login(ctx context.Context, req authDTO.LoginRequest) (*LoginResult, error) {
	req.Normalize()
	if req.UserName == "" || req.Password == "" {
		return nil, helper.ErrValidation("user_name and password are required")
	}

	u, err := s.Users.FindByUserName(ctx, req.UserName)
	if err != nil {
		if helper.IsRecordNotFound(err) {
			return nil, helper.ErrUnauthorized(msgInvalidCredentials)
		}
		return nil, helper.ErrInternal("Failed to look up user", err)
	}
	if !u.IsActive || authHelper.CheckPasswordHash(u.Password, req.Password) != nil {
		log.Warn().Str("user_name", req.UserName).Msg("[LOGIN] rejected")
		return nil, helper.ErrUnauthorized(msgInvalidCredentials)
	}

	token, exp, err := s.Tokens.Issue(u)
	if err != nil {
		return nil, helper.ErrInternal("Failed to issue token", err)
	}

	now := s.Now().UTC()
	if err := s.Users.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, helper.ErrInternal("Failed to record login", err)
	}
	u.LastLoginAt = &now

	log.Info().Str("user_id", u.ID.String()).Str("level", constants.LevelName(u.UserLevel)).Msg("[LOGIN] ok")
	return &LoginResult{User: u, AccessToken: token, ExpiresAt: exp}, nil
}

/* ========================== REGISTER ========================== */

// Register creates an active standard account; the caller cannot choose a level.
func (s *AuthService) Register(ctx context.Context, req authDTO.RegisterRequest) (*userModel.UserModel, error) {
	active := true
	return s.Users.Create(ctx, userDTO.CreateUserRequest{
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		UserLevel: constants.LevelStandard,
		IsActive:  &active,
	})
}

/* ========================== CHECK USER ========================== */

func (s *AuthService) CheckUser(ctx context.Context, req authDTO.CheckUserRequest) (*authDTO.CheckUserResponse, error) {
	name := helper.NilIfBlank(req.UserName)
	email := helper.NilIfBlank(req.Email)
	if name == nil && email == nil {
		return nil, helper.ErrValidation("user_name or email is required")
	}

	out := &authDTO.CheckUserResponse{}
	var err error
	if name != nil {
		if out.UserNameExists, err = s.Users.UserNameTaken(ctx, *name, uuid.Nil); err != nil {
			return nil, helper.ErrInternal("Failed to check username", err)
		}
	}
	if email != nil {
		if out.EmailExists, err = s.Users.EmailTaken(ctx, *email, uuid.Nil); err != nil {
			return nil, helper.ErrInternal("Failed to check email", err)
		}
	}
	return out, nil
}

/* ========================== ME ========================== */

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*userModel.UserModel, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.ErrUnauthorized("Unauthorized")
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, helper.ErrUnauthorized("Account is inactive")
	}
	return u, nil
}

/* ========================== CHANGE PASSWORD ========================== */

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req authDTO.ChangePasswordRequest) error {
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}
	u, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if authHelper.CheckPasswordHash(u.Password, req.OldPassword) != nil {
		return helper.ErrValidation("Old password is incorrect")
	}
	if err := authHelper.ValidatePasswordStrength(req.NewPassword); err != nil {
		return helper.ErrValidation(err.Error())
	}
	return s.Users.SetPassword(ctx, u.ID, req.NewPassword)
}
