package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserName        string     `gorm:"column:user_name;size:50;not null;uniqueIndex" json:"user_name"`
	Email           string     `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password        string     `gorm:"column:password;not null" json:"-"`
	FullName        *string    `gorm:"column:full_name;size:100" json:"full_name,omitempty"`
	City            *string    `gorm:"column:city;size:100" json:"city,omitempty"`
	State           *string    `gorm:"column:state;size:100" json:"state,omitempty"`
	Phone           *string    `gorm:"column:phone;size:30" json:"phone,omitempty"`
	IsActive        bool       `gorm:"column:is_active;not null" json:"is_active"`
	IsEmailVerified bool       `gorm:"column:is_email_verified;not null" json:"is_email_verified"`
	UserLevel       int        `gorm:"column:user_level;not null" json:"user_level"`
	LastLoginAt     *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
