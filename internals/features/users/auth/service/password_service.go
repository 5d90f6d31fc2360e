// internals/features/users/auth/service/password_service.go
package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	authDTO "surveyku_backend/internals/features/users/auth/dto"
	authHelper "surveyku_backend/internals/features/users/auth/helper"
	authModel "surveyku_backend/internals/features/users/auth/model"
	userModel "surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/helpers/mailer"
)

const (
	resetTokenBytes     = 32
	msgInvalidReset     = "Invalid or expired token"
	MsgForgotPasswordOK = "If the email is registered, a reset link has been sent"
)

// newResetToken returns the raw token (sent to the user) and its sha256 hex (stored).
func newResetToken() (raw, hash string, err error) {
	b := make([]byte, resetTokenBytes)
	if _, err = rand.Read(b); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(b)
	return raw, hashResetToken(raw), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

/* ========================== FORGOT PASSWORD ========================== */

// ForgotPassword never reports whether the email exists; callers always answer the same way.
func (s *AuthService) ForgotPassword(ctx context.Context, req authDTO.ForgotPasswordRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	u, err := s.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if helper.IsRecordNotFound(err) {
			log.Info().Msg("[FORGOT] email not registered")
			return nil
		}
		return helper.ErrInternal("Failed to look up user", err)
	}
	if !u.IsActive {
		log.Info().Str("user_id", u.ID.String()).Msg("[FORGOT] inactive account, skipped")
		return nil
	}

	raw, hash, err := newResetToken()
	if err != nil {
		return helper.ErrInternal("Failed to generate token", err)
	}
	row := &authModel.PasswordResetTokenModel{
		UserID:    u.ID,
		TokenHash: hash,
		ExpiresAt: s.Now().UTC().Add(s.ResetTTL),
	}
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return helper.ErrInternal("Failed to store reset token", err)
	}

	msg := mailer.Message{
		To:      u.Email,
		Subject: "Reset your password",
		Body: fmt.Sprintf(
			"Use this token to reset your password: %s\n%s/reset-password?token=%s\nThe token expires in %s.",
			raw, s.BaseURL, raw, s.ResetTTL,
		),
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		// token tetap tersimpan; user bisa minta ulang
		log.Error().Err(err).Str("user_id", u.ID.String()).Msg("[FORGOT] mail delivery failed")
	}
	return nil
}

/* ========================== RESET PASSWORD ========================== */

// ResetPassword consumes the token with a conditional update so it works at most once,
// then replaces the password hash in the same transaction.
func (s *AuthService) ResetPassword(ctx context.Context, req authDTO.ResetPasswordRequest) error {
	req.Token = strings.TrimSpace(req.Token)
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}
	if err := authHelper.ValidatePasswordStrength(req.NewPassword); err != nil {
		return helper.ErrValidation(err.Error())
	}
	newHash, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helper.ErrInternal("Password hashing failed", err)
	}

	hash := hashResetToken(req.Token)
	now := s.Now().UTC()

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tok authModel.PasswordResetTokenModel
		if err := tx.Where("password_reset_token_token_hash = ?", hash).First(&tok).Error; err != nil {
			if helper.IsRecordNotFound(err) {
				return helper.ErrValidation(msgInvalidReset)
			}
			return helper.ErrInternal("Failed to look up token", err)
		}

		res := tx.Model(&authModel.PasswordResetTokenModel{}).
			Where("password_reset_token_id = ? AND password_reset_token_used_at IS NULL AND password_reset_token_expires_at > ?", tok.ID, now).
			Update("password_reset_token_used_at", now)
		if res.Error != nil {
			return helper.ErrInternal("Failed to consume token", res.Error)
		}
		if res.RowsAffected != 1 {
			return helper.ErrValidation(msgInvalidReset)
		}

		res = tx.Model(&userModel.UserModel{}).
			Where("id = ? AND is_active = ?", tok.UserID, true).
			Updates(map[string]any{"password": newHash, "updated_at": now})
		if res.Error != nil {
			return helper.ErrInternal("Failed to update password", res.Error)
		}
		if res.RowsAffected == 0 {
			return helper.ErrValidation(msgInvalidReset)
		}

		log.Info().Str("user_id", tok.UserID.String()).Msg("[RESET] password updated")
		return nil
	})
}

/* ========================== CLEANUP ========================== */

// CleanupResetTokens deletes tokens that expired or were used before the cutoff.
func CleanupResetTokens(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("password_reset_token_expires_at < ? OR password_reset_token_used_at < ?", cutoff, cutoff).
		Delete(&authModel.PasswordResetTokenModel{})
	return res.RowsAffected, res.Error
}
