package decision

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"app/utils"
)

// defaultReplenishmentDemand is assumed when a product has no sales rows.
// The promotion policy intentionally uses a different default; see
// defaultPromotionDemand.
const defaultReplenishmentDemand = 5.0

// supplyTargetDays is the stock runway a reorder should restore.
const supplyTargetDays = 14

// Restock urgency levels, ordered from most to least pressing.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

var urgencyRank = map[string]int{
	UrgencyHigh:   0,
	UrgencyMedium: 1,
	UrgencyLow:    2,
}

// PurchaseRecommendation is a per-product reorder suggestion. One is emitted
// only when the recommended quantity is positive.
type PurchaseRecommendation struct {
	ProductID            int     `json:"product_id"`
	ProductName          string  `json:"product_name"`
	CurrentStock         int     `json:"current_stock"`
	EstimatedDailyDemand float64 `json:"estimated_daily_demand"`
	RecommendedQuantity  int     `json:"recommended_quantity"`
	Urgency              string  `json:"urgency"`
	EstimatedCost        float64 `json:"estimated_cost"`
}

// RecommendPurchases produces reorder recommendations for every catalog
// product whose projected 14-day demand exceeds current stock, sorted by
// urgency and then by quantity. The seasonality hint is accepted for API
// compatibility but does not affect the result yet.
func (e *Engine) RecommendPurchases(storeID int, inventory Inventory, sales []SalesRecord, seasonality string) ([]PurchaseRecommendation, float64, error) {
	e.logger.Info().Int("store_id", storeID).Msg("evaluating purchase recommendations")

	if err := validateInventory(inventory); err != nil {
		return nil, 0, err
	}
	if err := validateSales(sales); err != nil {
		return nil, 0, err
	}

	recommendations := make([]PurchaseRecommendation, 0, len(e.catalog.Products))
	total := decimal.Zero

	for _, product := range e.catalog.Products {
		currentStock := inventory[product.ID]
		avgDailySales := averageDailySales(sales, product.ID, defaultReplenishmentDemand)

		recommendedQuantity := int(math.Round(avgDailySales*supplyTargetDays)) - currentStock
		if recommendedQuantity <= 0 {
			continue
		}

		daysOfStock := 0.0
		if avgDailySales > 0 {
			daysOfStock = float64(currentStock) / avgDailySales
		}

		urgency := UrgencyLow
		switch {
		case daysOfStock < 3:
			urgency = UrgencyHigh
		case daysOfStock < 7:
			urgency = UrgencyMedium
		}

		cost := product.UnitCost.Mul(decimal.NewFromInt(int64(recommendedQuantity))).Round(2)
		total = total.Add(cost)

		recommendations = append(recommendations, PurchaseRecommendation{
			ProductID:            product.ID,
			ProductName:          product.Name,
			CurrentStock:         currentStock,
			EstimatedDailyDemand: utils.Round2(avgDailySales),
			RecommendedQuantity:  recommendedQuantity,
			Urgency:              urgency,
			EstimatedCost:        cost.InexactFloat64(),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		ri, rj := urgencyRank[recommendations[i].Urgency], urgencyRank[recommendations[j].Urgency]
		if ri != rj {
			return ri < rj
		}
		return recommendations[i].RecommendedQuantity > recommendations[j].RecommendedQuantity
	})

	return recommendations, total.Round(2).InexactFloat64(), nil
}
