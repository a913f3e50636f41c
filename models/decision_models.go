package models

import "app/decision"

// SalesRecordInput is one observed sale row in a decision request.
type SalesRecordInput struct {
	ProductID int     `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// PurchaseRequest asks for replenishment recommendations. The inventory map
// is keyed by decimal-string product ID, matching the upstream backend.
type PurchaseRequest struct {
	StoreID          int                `json:"store_id"`
	CurrentInventory map[string]int     `json:"current_inventory"`
	SalesData        []SalesRecordInput `json:"sales_data"`
	Seasonality      string             `json:"seasonality"`
}

type PurchaseResponse struct {
	StoreID            int                               `json:"store_id"`
	Recommendations    []decision.PurchaseRecommendation `json:"recommendations"`
	TotalEstimatedCost float64                           `json:"total_estimated_cost"`
	RequestID          string                            `json:"request_id"`
	Timestamp          int64                             `json:"timestamp"`
}

// ForecastInput is one slot of the sales forecast feeding the scheduler.
type ForecastInput struct {
	TimeSlot      string  `json:"time_slot"`
	ExpectedSales float64 `json:"expected_sales"`
}

// EmployeeAvailabilityInput lists the shifts an employee can work.
type EmployeeAvailabilityInput struct {
	EmployeeID      int      `json:"employee_id"`
	AvailableShifts []string `json:"available_shifts"`
}

// SchedulingRequest asks for a staffing plan. StoreHours is display-only:
// it is echoed back but does not constrain the generated shifts.
type SchedulingRequest struct {
	StoreID              int                         `json:"store_id"`
	SalesForecast        []ForecastInput             `json:"sales_forecast"`
	EmployeeAvailability []EmployeeAvailabilityInput `json:"employee_availability"`
	StoreHours           map[string]string           `json:"store_hours"`
}

type SchedulingResponse struct {
	StoreID    int                            `json:"store_id"`
	StoreHours map[string]string              `json:"store_hours"`
	Shifts     []decision.ShiftRecommendation `json:"shifts"`
	Summary    decision.ScheduleSummary       `json:"summary"`
	RequestID  string                         `json:"request_id"`
	Timestamp  int64                          `json:"timestamp"`
}

// PromotionRequest asks for promotion recommendations.
type PromotionRequest struct {
	StoreID       int                `json:"store_id"`
	SalesData     []SalesRecordInput `json:"sales_data"`
	InventoryData map[string]int     `json:"inventory_data"`
	Seasonality   string             `json:"seasonality"`
}

type PromotionResponse struct {
	StoreID           int                         `json:"store_id"`
	ProductPromotions []decision.ProductPromotion `json:"product_promotions"`
	GeneralPromotions []decision.GeneralPromotion `json:"general_promotions"`
	RequestID         string                      `json:"request_id"`
	Timestamp         int64                       `json:"timestamp"`
}
