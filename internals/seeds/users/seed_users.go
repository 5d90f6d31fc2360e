package users

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/users/user/dto"
	userService "surveyku_backend/internals/features/users/user/service"
)

type UserSeed struct {
	UserName  string  `json:"user_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FullName  *string `json:"full_name"`
	UserLevel int     `json:"user_level"`
}

// SeedUsersFromJSON inserts users through UserService; rows whose user_name or email exists are skipped.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	log.Info().Str("file", filePath).Msg("📥 Reading users seed")

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, err
	}
	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, err
	}

	svc := userService.NewUserService(db)
	inserted := 0
	for _, data := range inputs {
		nameTaken, err := svc.UserNameTaken(ctx, data.UserName, uuid.Nil)
		if err != nil {
			return inserted, err
		}
		emailTaken, err := svc.EmailTaken(ctx, data.Email, uuid.Nil)
		if err != nil {
			return inserted, err
		}
		if nameTaken || emailTaken {
			log.Info().Str("user_name", data.UserName).Msg("ℹ️ user exists, skipped")
			continue
		}

		u, err := svc.Create(ctx, dto.CreateUserRequest{
			UserName:  data.UserName,
			Email:     data.Email,
			Password:  data.Password,
			FullName:  data.FullName,
			UserLevel: data.UserLevel,
		})
		if err != nil {
			log.Error().Err(err).Str("user_name", data.UserName).Msg("❌ failed to insert user")
			continue
		}
		inserted++
		log.Info().Str("user_name", u.UserName).Msg("✅ user inserted")
	}
	return inserted, nil
}
