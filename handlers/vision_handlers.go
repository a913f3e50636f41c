package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/models"
	"app/utils"
)

const defaultDetectionThreshold = 0.5

// HandleImageClassify classifies a product image into a catalog category.
func HandleImageClassify(c *fiber.Ctx) error {
	var req models.ImageClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := visionService.Classify(req.ImageURL, newRNG())
	return c.JSON(models.ImageClassifyResponse{
		DominantCategory: result.DominantCategory,
		Confidence:       result.Confidence,
		Predictions:      result.Predictions,
		RequestID:        utils.NewRequestID(),
		Timestamp:        utils.NowMillis(),
	})
}

// HandleObjectDetect detects objects above a confidence threshold.
func HandleObjectDetect(c *fiber.Ctx) error {
	var req models.ObjectDetectRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	threshold := defaultDetectionThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	result := visionService.Detect(req.ImageURL, threshold, newRNG())
	return c.JSON(models.ObjectDetectResponse{
		Detections: result.Detections,
		Count:      result.Count,
		RequestID:  utils.NewRequestID(),
		Timestamp:  utils.NowMillis(),
	})
}

// HandleStoreLayoutAnalyze evaluates a store layout photo.
func HandleStoreLayoutAnalyze(c *fiber.Ctx) error {
	var req models.StoreLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := visionService.AnalyzeLayout(req.ImageURL, newRNG())
	return c.JSON(models.StoreLayoutResponse{
		DetectedSections:  result.DetectedSections,
		EstimatedCapacity: result.EstimatedCapacity,
		LayoutQuality:     result.LayoutQuality,
		Suggestions:       result.Suggestions,
		RequestID:         utils.NewRequestID(),
		Timestamp:         utils.NowMillis(),
	})
}

// HandleProductDisplayAnalyze evaluates a product display photo.
func HandleProductDisplayAnalyze(c *fiber.Ctx) error {
	var req models.ProductDisplayRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := visionService.AnalyzeDisplay(req.ImageURL, newRNG())
	return c.JSON(models.ProductDisplayResponse{
		EstimatedProductCount: result.EstimatedProductCount,
		DisplayQuality:        result.DisplayQuality,
		VarietyScore:          result.VarietyScore,
		Suggestions:           result.Suggestions,
		RequestID:             utils.NewRequestID(),
		Timestamp:             utils.NowMillis(),
	})
}
