package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PasswordResetTokenModel struct {
	ID     uuid.UUID `gorm:"column:password_reset_token_id;type:uuid;primaryKey" json:"password_reset_token_id"`
	UserID uuid.UUID `gorm:"column:password_reset_token_user_id;type:uuid;not null;index" json:"password_reset_token_user_id"`

	// simpan HASH token (sha256 hex), bukan plaintext
	TokenHash string `gorm:"column:password_reset_token_token_hash;size:64;not null;uniqueIndex" json:"-"`

	ExpiresAt time.Time  `gorm:"column:password_reset_token_expires_at;not null" json:"password_reset_token_expires_at"`
	UsedAt    *time.Time `gorm:"column:password_reset_token_used_at" json:"password_reset_token_used_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName override
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

func (m *PasswordResetTokenModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
