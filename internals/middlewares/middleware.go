package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"surveyku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global; urutan penting (request-id dulu supaya tercatat di log).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RequestIDMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())

	// HTTP timeout guard (selaras dengan statement_timeout di DB)
	app.Use(RequestTimeoutMiddleware(10 * time.Second))

	// ⚙️ performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
