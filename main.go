package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"app/config"
	"app/database"
	"app/handlers"
	"app/middleware"
	"app/models"
	"app/recommend"
	"app/routes"
	"app/utils"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file, using environment variables")
	}

	cfg := config.Load(logger)

	var feedbackStore recommend.FeedbackStore
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.Connect(ctx, cfg.DatabaseURL); err != nil {
			cancel()
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer database.Close()

		store := recommend.NewPostgresFeedbackStore(database.GetDB())
		if err := store.EnsureSchema(ctx); err != nil {
			cancel()
			logger.Fatal().Err(err).Msg("failed to prepare feedback schema")
		}
		cancel()
		feedbackStore = store
		logger.Info().Msg("feedback persistence enabled")
	} else {
		feedbackStore = recommend.NewMemoryFeedbackStore()
		logger.Info().Msg("no DATABASE_URL set, keeping feedback in memory")
	}

	handlers.Init(cfg, logger.With().Str("component", "handlers").Logger(), feedbackStore)

	app := fiber.New(fiber.Config{
		AppName:      "Solo Coffee AI Service",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))
	app.Use(middleware.RequestLogger(logger.With().Str("component", "http").Logger()))

	routes.SetupRoutes(app)

	logger.Info().Int("port", cfg.Port).Msg("starting server")
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// errorHandler turns unhandled errors into the standard failure envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Code:      code,
		Message:   message,
		Data:      nil,
		Timestamp: utils.NowMillis(),
		RequestID: utils.NewRequestID(),
	})
}
