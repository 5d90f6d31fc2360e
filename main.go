package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"surveyku_backend/internals/configs"
	database "surveyku_backend/internals/databases"
	scheduler "surveyku_backend/internals/features/users/auth/scheduler"
	authService "surveyku_backend/internals/features/users/auth/service"
	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/helpers/mailer"
	"surveyku_backend/internals/helpers/redisstore"
	middlewares "surveyku_backend/internals/middlewares"
	routes "surveyku_backend/internals/route"
	"surveyku_backend/internals/seeds"
)

func main() {
	root := &cobra.Command{
		Use:   "surveyku",
		Short: "Surveyku backend (HTTP API + tooling)",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.LoadEnv()
			configs.SetupLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})

	var seedDir string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed users and questions from JSON files (existing rows are skipped)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)
			return seeds.RunAllSeeds(cmd.Context(), db, seedDir)
		},
	}
	seedCmd.Flags().StringVar(&seedDir, "dir", "internals/seeds", "directory containing the seed JSON files")
	root.AddCommand(seedCmd)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("❌ command failed")
		os.Exit(1)
	}
}

// 🔌 DB connect + pool
func openDB() (*gorm.DB, error) {
	db, err := database.ConnectDB()
	if err != nil {
		return nil, err
	}
	if err := database.TunePool(db); err != nil {
		database.Close(db)
		return nil, err
	}
	return db, nil
}

func serve() error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)

	// 🧮 limiter storage: Redis kalau ada, selain itu memory per-instance
	if configs.RedisURL != "" {
		store, err := redisstore.NewFromURL(configs.RedisURL, "surveyku:limiter:")
		if err != nil {
			log.Warn().Err(err).Msg("⚠️ Redis unavailable, rate limiter falls back to memory")
		} else {
			middlewares.LimiterStorage = store
			defer store.Close()
			log.Info().Msg("✅ Rate limiter uses Redis")
		}
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app)

	authSvc := authService.NewAuthService(db, authService.Options{
		JWTSecret: configs.JWTSecret,
		AccessTTL: configs.JWTAccessTTL,
		ResetTTL:  configs.ResetTokenTTL,
		BaseURL:   configs.PublicBaseURL,
		Mailer:    mailer.NewLogMailer(),
	})

	routes.SetupRoutes(app, db, authSvc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ⏱ scheduler setelah DB siap
	scheduler.StartResetTokenCleanupScheduler(ctx, db, configs.ResetTokenRetain, 24*time.Hour)

	port := configs.GetEnv("PORT", "3000")
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", port).Msg("✅ Listening")
		errCh <- app.Listen("0.0.0.0:" + port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// graceful shutdown
	log.Info().Msg("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
