package decision

import (
	"fmt"
	"math/rand"
	"time"
)

// defaultPromotionDemand is assumed when a product has no sales rows. It
// deliberately differs from the replenishment default of 5.0.
const defaultPromotionDemand = 1.0

// slowMovingDaysThreshold is the days-of-stock runway beyond which a product
// becomes promotion-eligible.
const slowMovingDaysThreshold = 21

// ProductPromotion is a promotion suggestion for one slow-moving product.
type ProductPromotion struct {
	ProductID         int    `json:"product_id"`
	ProductName       string `json:"product_name"`
	PromotionType     string `json:"promotion_type"`
	PromotionValue    string `json:"promotion_value"`
	EstimatedIncrease int    `json:"estimated_increase"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
}

// GeneralPromotion is a store-wide promotion, unconditioned on any product.
type GeneralPromotion struct {
	PromotionType  string `json:"promotion_type"`
	PromotionValue string `json:"promotion_value"`
	TargetAudience string `json:"target_audience"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// randIntInclusive draws from [lo, hi].
func randIntInclusive(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// RecommendPromotions flags slow-moving products and attaches a randomly
// drawn promotion mechanic to each, plus up to two store-wide promotions
// each gated by an independent coin flip.
func (e *Engine) RecommendPromotions(storeID int, sales []SalesRecord, inventory Inventory, seasonality string, rng *rand.Rand) ([]ProductPromotion, []GeneralPromotion, error) {
	e.logger.Info().Int("store_id", storeID).Msg("evaluating promotion recommendations")

	if err := validateInventory(inventory); err != nil {
		return nil, nil, err
	}
	if err := validateSales(sales); err != nil {
		return nil, nil, err
	}

	now := e.now()
	promotions := make([]ProductPromotion, 0)

	for _, product := range e.catalog.Products {
		currentStock := inventory[product.ID]
		avgDailySales := averageDailySales(sales, product.ID, defaultPromotionDemand)

		daysOfStock := 0.0
		if avgDailySales > 0 {
			daysOfStock = float64(currentStock) / avgDailySales
		}
		if daysOfStock <= slowMovingDaysThreshold {
			continue
		}

		promotionType := e.catalog.PromotionTypes[rng.Intn(len(e.catalog.PromotionTypes))]

		var promotionValue string
		switch promotionType {
		case "discount":
			promotionValue = fmt.Sprintf("%d%% off", randIntInclusive(rng, 15, 30))
		case "buy_one_get_one":
			promotionValue = "Buy 1 Get 1 Free"
		case "bundle":
			promotionValue = "Bundle with another product"
		case "free_addon":
			promotionValue = "Free addon"
		default: // loyalty_points
			promotionValue = fmt.Sprintf("Extra %d loyalty points", randIntInclusive(rng, 5, 15))
		}

		promotions = append(promotions, ProductPromotion{
			ProductID:         product.ID,
			ProductName:       product.Name,
			PromotionType:     promotionType,
			PromotionValue:    promotionValue,
			EstimatedIncrease: randIntInclusive(rng, 20, 50),
			StartDate:         now.Format(time.RFC3339),
			EndDate:           now.Add(7 * 24 * time.Hour).Format(time.RFC3339),
		})
	}

	general := make([]GeneralPromotion, 0, 2)
	if rng.Float64() > 0.5 {
		general = append(general, GeneralPromotion{
			PromotionType:  "discount",
			PromotionValue: "10% off all drinks on weekends",
			TargetAudience: "all_customers",
			StartDate:      now.Format(time.RFC3339),
			EndDate:        now.Add(14 * 24 * time.Hour).Format(time.RFC3339),
		})
	}
	if rng.Float64() > 0.5 {
		general = append(general, GeneralPromotion{
			PromotionType:  "loyalty_points",
			PromotionValue: "Double loyalty points on all purchases",
			TargetAudience: "loyalty_members",
			StartDate:      now.Format(time.RFC3339),
			EndDate:        now.Add(30 * 24 * time.Hour).Format(time.RFC3339),
		})
	}

	return promotions, general, nil
}
