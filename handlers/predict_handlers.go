package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"app/models"
	"app/predict"
	"app/utils"
)

// HandleSalesPredict forecasts daily sales over a date range.
func HandleSalesPredict(c *fiber.Ctx) error {
	var req models.SalesPredictRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	predictions, err := predictService.PredictSales(req.StoreID, req.ProductID, req.StartDate, req.EndDate, req.IncludeExternalFactors, newRNG())
	if err != nil {
		if errors.Is(err, predict.ErrInvalidRange) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		logger.Error().Err(err).Int("store_id", req.StoreID).Msg("sales prediction failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to predict sales")
	}

	return c.JSON(models.SalesPredictResponse{
		StoreID:     req.StoreID,
		Predictions: predictions,
		RequestID:   utils.NewRequestID(),
		Timestamp:   utils.NowMillis(),
	})
}

// HandleInventoryPredict projects stock levels and reorder points.
func HandleInventoryPredict(c *fiber.Ctx) error {
	var req models.InventoryPredictRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	predictions, err := predictService.PredictInventory(req.StoreID, req.ProductID, req.StartDate, req.EndDate, req.CurrentInventory, newRNG())
	if err != nil {
		if errors.Is(err, predict.ErrInvalidRange) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		logger.Error().Err(err).Int("store_id", req.StoreID).Msg("inventory prediction failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to predict inventory")
	}

	return c.JSON(models.InventoryPredictResponse{
		StoreID:     req.StoreID,
		ProductID:   req.ProductID,
		Predictions: predictions,
		RequestID:   utils.NewRequestID(),
		Timestamp:   utils.NowMillis(),
	})
}

// HandleCustomerFlowPredict forecasts daily customer counts.
func HandleCustomerFlowPredict(c *fiber.Ctx) error {
	var req models.CustomerFlowPredictRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	predictions, err := predictService.PredictCustomerFlow(req.StoreID, req.StartDate, req.EndDate, req.IncludeExternalFactors, newRNG())
	if err != nil {
		if errors.Is(err, predict.ErrInvalidRange) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		logger.Error().Err(err).Int("store_id", req.StoreID).Msg("customer flow prediction failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to predict customer flow")
	}

	return c.JSON(models.CustomerFlowPredictResponse{
		StoreID:     req.StoreID,
		Predictions: predictions,
		RequestID:   utils.NewRequestID(),
		Timestamp:   utils.NowMillis(),
	})
}

// HandleDemandPredict forecasts demand for one product.
func HandleDemandPredict(c *fiber.Ctx) error {
	var req models.DemandPredictRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	predictions, err := predictService.PredictDemand(req.StoreID, req.ProductID, req.StartDate, req.EndDate, req.IncludeExternalFactors, newRNG())
	if err != nil {
		if errors.Is(err, predict.ErrInvalidRange) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		logger.Error().Err(err).Int("store_id", req.StoreID).Msg("demand prediction failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to predict demand")
	}

	return c.JSON(models.DemandPredictResponse{
		StoreID:     req.StoreID,
		ProductID:   req.ProductID,
		Predictions: predictions,
		RequestID:   utils.NewRequestID(),
		Timestamp:   utils.NowMillis(),
	})
}

// HandlePredictTrain accepts a (mock) training job for forecasting models.
func HandlePredictTrain(c *fiber.Ctx) error {
	var req models.TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	taskID := predictService.TrainModel(req.ModelType, req.TrainingParams)
	return c.JSON(models.TrainResponse{
		TaskID:    taskID,
		Status:    "training_started",
		RequestID: utils.NewRequestID(),
		Timestamp: utils.NowMillis(),
	})
}
