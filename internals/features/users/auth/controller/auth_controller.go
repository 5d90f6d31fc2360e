package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"surveyku_backend/internals/configs"
	authDTO "surveyku_backend/internals/features/users/auth/dto"
	"surveyku_backend/internals/features/users/auth/service"
	userDTO "surveyku_backend/internals/features/users/user/dto"
	helper "surveyku_backend/internals/helpers"
)

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}

	res, err := ac.Svc.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}

	setAccessCookie(c, res.AccessToken, res.ExpiresAt)
	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		User:        userDTO.FromModel(res.User),
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(res.ExpiresAt).Seconds()),
	})
}

// POST /api/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	u, err := ac.Svc.Register(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Registration successful", userDTO.FromModel(u))
}

// POST /api/check-user
func (ac *AuthController) CheckUser(c *fiber.Ctx) error {
	var req authDTO.CheckUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ac.Svc.CheckUser(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", res)
}

// POST /api/forgot-password
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req authDTO.ForgotPasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if err := ac.Svc.ForgotPassword(c.UserContext(), req); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, service.MsgForgotPasswordOK, nil)
}

// POST /api/reset-password
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req authDTO.ResetPasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if err := ac.Svc.ResetPassword(c.UserContext(), req); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Password has been reset", nil)
}

// POST /api/logout — token stateless; cukup hapus cookie
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	u, err := ac.Svc.Me(c.UserContext(), userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", userDTO.FromModel(u))
}

// POST /api/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req authDTO.ChangePasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if err := ac.Svc.ChangePassword(c.UserContext(), userID, req); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Password changed", nil)
}

func setAccessCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
