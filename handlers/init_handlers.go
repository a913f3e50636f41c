package handlers

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"app/catalog"
	"app/config"
	"app/decision"
	"app/models"
	"app/nlp"
	"app/predict"
	"app/recommend"
	"app/utils"
	"app/vision"
)

var (
	cfg    *config.Config
	logger zerolog.Logger

	decisionEngine   *decision.Engine
	nlpService       *nlp.Service
	predictService   *predict.Service
	recommendService *recommend.Service
	visionService    *vision.Service
)

// Init wires the services the handlers dispatch to. It must run before any
// route is served.
func Init(c *config.Config, l zerolog.Logger, feedbackStore recommend.FeedbackStore) {
	cfg = c
	logger = l

	decisionEngine = decision.New(catalog.Default(), l)
	nlpService = nlp.New(l)
	predictService = predict.New(l)
	recommendService = recommend.New(feedbackStore, l)
	visionService = vision.New(l)
}

// newRNG returns a fresh per-request random source, keeping concurrent
// handlers independent of each other.
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// errorJSON emits the stable failure envelope shared by every endpoint.
func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Code:      status,
		Message:   message,
		Data:      nil,
		Timestamp: utils.NowMillis(),
		RequestID: utils.NewRequestID(),
	})
}

// HandleHealthCheck reports service liveness.
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Service:   "Solo Coffee AI Service",
		Timestamp: utils.NowMillis(),
	})
}
