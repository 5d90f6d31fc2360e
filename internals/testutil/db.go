// Package testutil provides an in-memory store with the application schema for package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	companyModel "surveyku_backend/internals/features/companies/company/model"
	questionModel "surveyku_backend/internals/features/surveys/questions/model"
	surveyModel "surveyku_backend/internals/features/surveys/surveys/model"
	authHelper "surveyku_backend/internals/features/users/auth/helper"
	authModel "surveyku_backend/internals/features/users/auth/model"
	userModel "surveyku_backend/internals/features/users/user/model"
)

// NewDB opens a private in-memory SQLite database and migrates every table.
// The pool is pinned to one connection so the in-memory database is shared by all queries.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: false,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.PasswordResetTokenModel{},
		&companyModel.CompanyModel{},
		&questionModel.QuestionModel{},
		&surveyModel.SurveyModel{},
		&surveyModel.SurveyQuestionModel{},
	))
	return db
}

// SeedUser inserts a user with a bcrypt-hashed password.
func SeedUser(t *testing.T, db *gorm.DB, userName, password string, level int, active bool) *userModel.UserModel {
	t.Helper()
	hash, err := authHelper.HashPassword(password)
	require.NoError(t, err)
	u := &userModel.UserModel{
		UserName:  userName,
		Email:     userName + "@example.com",
		Password:  hash,
		UserLevel: level,
		IsActive:  active,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// SeedQuestion inserts an active free-text question.
func SeedQuestion(t *testing.T, db *gorm.DB, text string) *questionModel.QuestionModel {
	t.Helper()
	q := &questionModel.QuestionModel{
		QuestionText:     text,
		QuestionType:     questionModel.TypeText,
		QuestionIsActive: true,
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

// SeedSurvey inserts an active survey created by createdBy.
func SeedSurvey(t *testing.T, db *gorm.DB, title string, createdBy uuid.UUID) *surveyModel.SurveyModel {
	t.Helper()
	s := &surveyModel.SurveyModel{
		SurveyTitle:     title,
		SurveyCreatedBy: createdBy,
		SurveyIsActive:  true,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}
