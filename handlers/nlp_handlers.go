package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/models"
	"app/utils"
)

// HandleSegment tokenizes text. Chinese text is split per character, other
// languages on whitespace.
func HandleSegment(c *fiber.Ctx) error {
	var req models.SegmentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	return c.JSON(models.SegmentResponse{
		Tokens:    nlpService.Segment(req.Text, req.Language),
		RequestID: utils.NewRequestID(),
		Timestamp: utils.NowMillis(),
	})
}

// HandleSentiment scores a single text as positive, negative or neutral.
func HandleSentiment(c *fiber.Ctx) error {
	var req models.SentimentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := nlpService.AnalyzeSentiment(req.Text, req.Language)
	return c.JSON(models.SentimentResponse{
		Sentiment:  result.Sentiment,
		Score:      result.Score,
		Confidence: result.Confidence,
		RequestID:  utils.NewRequestID(),
		Timestamp:  utils.NowMillis(),
	})
}

// HandleIntent recognizes the user intent behind a text.
func HandleIntent(c *fiber.Ctx) error {
	var req models.IntentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := nlpService.RecognizeIntent(req.Text, req.Language)
	return c.JSON(models.IntentResponse{
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Entities:   result.Entities,
		RequestID:  utils.NewRequestID(),
		Timestamp:  utils.NowMillis(),
	})
}

// HandleEntity extracts domain entities from a text.
func HandleEntity(c *fiber.Ctx) error {
	var req models.EntityRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	return c.JSON(models.EntityResponse{
		Entities:  nlpService.RecognizeEntities(req.Text, req.Language),
		RequestID: utils.NewRequestID(),
		Timestamp: utils.NowMillis(),
	})
}

// HandleChat answers a customer message. When a Gemini API key is
// configured the reply comes from the model; otherwise (or on any model
// failure) the rule-based reply is used.
func HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := nlpService.Chat(req.UserID, req.Message, req.Context, req.Language, newRNG())

	if cfg != nil && cfg.GeminiAPIKey != "" {
		if reply, err := generateChatReply(c.Context(), req.Message, result.Intent); err != nil {
			logger.Warn().Err(err).Msg("gemini chat failed, using rule-based reply")
		} else {
			result.Response = reply
			result.Context["last_response"] = reply
		}
	}

	return c.JSON(models.ChatResponse{
		Response:   result.Response,
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Context:    result.Context,
		RequestID:  utils.NewRequestID(),
		Timestamp:  utils.NowMillis(),
	})
}

// HandleCommentAnalysis aggregates sentiment over a batch of comments.
func HandleCommentAnalysis(c *fiber.Ctx) error {
	var req models.CommentAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := nlpService.AnalyzeComments(req.Comments, req.Language)
	return c.JSON(models.CommentAnalysisResponse{
		OverallSentiment: result.OverallSentiment,
		SentimentScore:   result.SentimentScore,
		CommentAnalyses:  result.CommentAnalyses,
		RequestID:        utils.NewRequestID(),
		Timestamp:        utils.NowMillis(),
	})
}
