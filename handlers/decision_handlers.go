package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"app/decision"
	"app/models"
	"app/utils"
)

func parseInventory(raw map[string]int) (decision.Inventory, error) {
	inv := make(decision.Inventory, len(raw))
	for key, stock := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.New("inventory keys must be numeric product IDs")
		}
		inv[id] = stock
	}
	return inv, nil
}

func toSalesRecords(rows []models.SalesRecordInput) []decision.SalesRecord {
	records := make([]decision.SalesRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, decision.SalesRecord{ProductID: row.ProductID, Quantity: row.Quantity})
	}
	return records
}

// HandlePurchaseDecision recommends what to restock for a store.
func HandlePurchaseDecision(c *fiber.Ctx) error {
	var req models.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	inventory, err := parseInventory(req.CurrentInventory)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	recommendations, totalCost, err := decisionEngine.RecommendPurchases(req.StoreID, inventory, toSalesRecords(req.SalesData), req.Seasonality)
	if err != nil {
		if errors.Is(err, decision.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		logger.Error().Err(err).Int("store_id", req.StoreID).Msg("purchase decision failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to compute purchase recommendations")
	}

	return c.JSON(models.PurchaseResponse{
		StoreID:            req.StoreID,
		Recommendations:    recommendations,
		TotalEstimatedCost: totalCost,
		RequestID:          utils.NewRequestID(),
		Timestamp:          utils.NowMillis(),
	})
}

// HandleSchedulingDecision produces a staffing plan from a sales forecast
// and employee availability.
func HandleSchedulingDecision(c *fiber.Ctx) error {
	var req models.SchedulingRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	forecast := make([]decision.ForecastEntry, 0, len(req.SalesForecast))
	for _, slot := range req.SalesForecast {
		forecast = append(forecast, decision.ForecastEntry{TimeSlot: slot.TimeSlot, ExpectedSales: slot.ExpectedSales})
	}
	availability := make([]decision.EmployeeAvailability, 0, len(req.EmployeeAvailability))
	for _, emp := range req.EmployeeAvailability {
		availability = append(availability, decision.EmployeeAvailability{EmployeeID: emp.EmployeeID, AvailableShifts: emp.AvailableShifts})
	}

	shifts, summary, err := decisionEngine.RecommendSchedule(req.StoreID, forecast, availability)
	if err != nil {
		if errors.Is(err, decision.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		logger.Error().Err(err).Int("store_id", req.StoreID).Msg("scheduling decision failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to compute schedule")
	}

	return c.JSON(models.SchedulingResponse{
		StoreID:    req.StoreID,
		StoreHours: req.StoreHours,
		Shifts:     shifts,
		Summary:    summary,
		RequestID:  utils.NewRequestID(),
		Timestamp:  utils.NowMillis(),
	})
}

// HandlePromotionDecision recommends promotions for slow-moving products.
func HandlePromotionDecision(c *fiber.Ctx) error {
	var req models.PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	inventory, err := parseInventory(req.InventoryData)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	productPromos, generalPromos, err := decisionEngine.RecommendPromotions(req.StoreID, toSalesRecords(req.SalesData), inventory, req.Seasonality, newRNG())
	if err != nil {
		if errors.Is(err, decision.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		logger.Error().Err(err).Int("store_id", req.StoreID).Msg("promotion decision failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to compute promotions")
	}

	return c.JSON(models.PromotionResponse{
		StoreID:           req.StoreID,
		ProductPromotions: productPromos,
		GeneralPromotions: generalPromos,
		RequestID:         utils.NewRequestID(),
		Timestamp:         utils.NowMillis(),
	})
}
