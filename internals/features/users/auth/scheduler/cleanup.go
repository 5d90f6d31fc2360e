package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	authService "surveyku_backend/internals/features/users/auth/service"
)

// StartResetTokenCleanupScheduler deletes expired/used reset tokens older than retention,
// once at start and then every interval, until ctx is cancelled.
func StartResetTokenCleanupScheduler(ctx context.Context, db *gorm.DB, retention, interval time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			runCleanup(ctx, db, retention)

			select {
			case <-ctx.Done():
				log.Info().Msg("[CLEANUP] scheduler stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

func runCleanup(ctx context.Context, db *gorm.DB, retention time.Duration) {
	log.Debug().Msg("[CLEANUP] running password_reset_tokens cleanup")

	cutoff := time.Now().UTC().Add(-retention)
	n, err := authService.CleanupResetTokens(ctx, db, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("[CLEANUP ERROR] failed to delete reset tokens")
		return
	}
	if n > 0 {
		log.Info().Int64("deleted", n).Msg("[CLEANUP] reset tokens deleted")
	}
}
