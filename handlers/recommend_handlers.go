package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/models"
	"app/recommend"
	"app/utils"
)

// HandleProductRecommend returns personalized product recommendations.
func HandleProductRecommend(c *fiber.Ctx) error {
	var req models.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	return c.JSON(models.ProductRecommendResponse{
		UserID:          req.UserID,
		Recommendations: recommendService.Products(req.UserID, req.StoreID, req.Count, newRNG()),
		RequestID:       utils.NewRequestID(),
		Timestamp:       utils.NowMillis(),
	})
}

// HandlePromotionRecommend returns personalized promotion recommendations.
func HandlePromotionRecommend(c *fiber.Ctx) error {
	var req models.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	return c.JSON(models.PromotionRecommendResponse{
		UserID:          req.UserID,
		Recommendations: recommendService.Promotions(req.UserID, req.StoreID, req.Count, newRNG()),
		RequestID:       utils.NewRequestID(),
		Timestamp:       utils.NowMillis(),
	})
}

// HandleCombinationRecommend returns product bundles the user is likely to
// buy together.
func HandleCombinationRecommend(c *fiber.Ctx) error {
	var req models.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	return c.JSON(models.CombinationRecommendResponse{
		UserID:          req.UserID,
		Recommendations: recommendService.Combinations(req.UserID, req.StoreID, req.Count, newRNG()),
		RequestID:       utils.NewRequestID(),
		Timestamp:       utils.NowMillis(),
	})
}

// HandleRecommendFeedback records user feedback on a recommendation.
func HandleRecommendFeedback(c *fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	fb := recommend.Feedback{
		UserID:        req.UserID,
		ProductID:     req.ProductID,
		PromotionID:   req.PromotionID,
		FeedbackType:  req.FeedbackType,
		FeedbackValue: req.FeedbackValue,
	}
	if err := recommendService.SubmitFeedback(c.Context(), fb); err != nil {
		logger.Error().Err(err).Int("user_id", req.UserID).Msg("saving feedback failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to save feedback")
	}

	return c.JSON(models.FeedbackResponse{
		Status:    "received",
		RequestID: utils.NewRequestID(),
		Timestamp: utils.NowMillis(),
	})
}

// HandleRecommendTrain accepts a (mock) training job for the recommender.
func HandleRecommendTrain(c *fiber.Ctx) error {
	var req models.TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	taskID := recommendService.TrainModel(req.ModelType, req.TrainingParams)
	return c.JSON(models.TrainResponse{
		TaskID:    taskID,
		Status:    "training_started",
		RequestID: utils.NewRequestID(),
		Timestamp: utils.NowMillis(),
	})
}
