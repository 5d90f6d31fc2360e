package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	AppEnv           string
	JWTSecret        string
	JWTAccessTTL     time.Duration
	ResetTokenTTL    time.Duration
	ResetTokenRetain time.Duration
	PublicBaseURL    string
	RedisURL         string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn().Msg("⚠️ .env not found, using system environment")
		} else {
			log.Info().Msg("✅ .env loaded")
		}
	} else {
		log.Info().Msg("🚀 Running in Railway, using system environment")
	}

	AppEnv = GetEnv("APP_ENV", "development")
	JWTSecret = GetEnv("JWT_SECRET")
	JWTAccessTTL = GetDuration("JWT_ACCESS_TTL", 24*time.Hour)
	ResetTokenTTL = GetDuration("RESET_TOKEN_TTL", time.Hour)
	ResetTokenRetain = GetDuration("RESET_TOKEN_RETENTION", 7*24*time.Hour)
	PublicBaseURL = strings.TrimRight(GetEnv("PUBLIC_BASE_URL", "http://localhost:5173"), "/")
	RedisURL = GetEnv("REDIS_URL")

	if JWTSecret == "" {
		log.Error().Msg("❌ JWT_SECRET is not set!")
	} else {
		log.Info().Msg("✅ JWT_SECRET loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetDuration parses a Go duration ("15m", "24h"); invalid or missing values fall back to def.
func GetDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration, using default")
		return def
	}
	return d
}

func IsProduction() bool {
	return strings.EqualFold(AppEnv, "production")
}
