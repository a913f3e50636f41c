package predict

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// ErrInvalidRange marks an unparsable or inverted prediction date range.
var ErrInvalidRange = errors.New("invalid date range")

// ExternalFactors are the context attributes attached to a prediction when
// requested.
type ExternalFactors struct {
	Temperature float64 `json:"temperature"`
	IsWeekend   bool    `json:"is_weekend"`
	IsHoliday   bool    `json:"is_holiday"`
}

// SalesPrediction is the forecast for one day.
type SalesPrediction struct {
	Date               string           `json:"date"`
	PredictedSales     int              `json:"predicted_sales"`
	ConfidenceInterval []float64        `json:"confidence_interval"`
	ExternalFactors    *ExternalFactors `json:"external_factors"`
}

// InventoryPrediction is the projected stock level for one day, with the
// reorder that keeps it above the reorder point.
type InventoryPrediction struct {
	Date               string    `json:"date"`
	PredictedInventory float64   `json:"predicted_inventory"`
	RecommendedReorder int       `json:"recommended_reorder"`
	ConfidenceInterval []float64 `json:"confidence_interval"`
}

// FlowPrediction is the projected customer flow for one day.
type FlowPrediction struct {
	Date               string           `json:"date"`
	PredictedFlow      int              `json:"predicted_flow"`
	ConfidenceInterval []float64        `json:"confidence_interval"`
	ExternalFactors    *ExternalFactors `json:"external_factors"`
}

// DemandPrediction is the projected demand for one day.
type DemandPrediction struct {
	Date               string           `json:"date"`
	PredictedDemand    int              `json:"predicted_demand"`
	ConfidenceInterval []float64        `json:"confidence_interval"`
	ExternalFactors    *ExternalFactors `json:"external_factors"`
}

// Service produces heuristic day-by-day forecasts: a weekend uplift, a mild
// growth trend and uniform noise stand in for a fitted model.
type Service struct {
	logger zerolog.Logger
}

// New builds the prediction service.
func New(logger zerolog.Logger) *Service {
	return &Service{logger: logger.With().Str("component", "predict").Logger()}
}

// parseRange validates and expands a start/end date pair into day count.
func parseRange(startDate, endDate string) (time.Time, int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: bad start date %q", ErrInvalidRange, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: bad end date %q", ErrInvalidRange, endDate)
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return time.Time{}, 0, fmt.Errorf("%w: end %q before start %q", ErrInvalidRange, endDate, startDate)
	}
	return start, days, nil
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func externalFactors(include bool, weekend bool, rng *rand.Rand) *ExternalFactors {
	if !include {
		return nil
	}
	return &ExternalFactors{
		Temperature: 15 + rng.Float64()*15,
		IsWeekend:   weekend,
		IsHoliday:   false,
	}
}

// PredictSales forecasts daily sales between startDate and endDate
// inclusive. productID narrows the forecast to one product but does not
// change the heuristic yet.
func (s *Service) PredictSales(storeID int, productID *int, startDate, endDate string, includeExternal bool, rng *rand.Rand) ([]SalesPrediction, error) {
	s.logger.Info().Int("store_id", storeID).Str("start", startDate).Str("end", endDate).Msg("predicting sales")

	start, days, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	predictions := make([]SalesPrediction, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		weekend := isWeekend(day)

		base := 100.0
		if weekend {
			base += 50
		}
		predicted := int(base * 1.1 * (0.9 + rng.Float64()*0.2))

		predictions = append(predictions, SalesPrediction{
			Date:               day.Format(dateLayout),
			PredictedSales:     predicted,
			ConfidenceInterval: []float64{float64(predicted) * 0.8, float64(predicted) * 1.2},
			ExternalFactors:    externalFactors(includeExternal, weekend, rng),
		})
	}
	return predictions, nil
}

// PredictInventory walks the stock level forward day by day, issuing a
// reorder whenever the level falls below the reorder point.
func (s *Service) PredictInventory(storeID, productID int, startDate, endDate string, currentInventory float64, rng *rand.Rand) ([]InventoryPrediction, error) {
	s.logger.Info().Int("store_id", storeID).Int("product_id", productID).Msg("predicting inventory")

	start, days, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	const (
		reorderPoint    = 50
		reorderQuantity = 150
	)

	predictions := make([]InventoryPrediction, 0, days)
	level := currentInventory
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)

		dailySales := 80.0
		if isWeekend(day) {
			dailySales += 40
		}
		level -= dailySales

		reorder := 0
		if level < reorderPoint {
			reorder = reorderQuantity
			level += reorderQuantity
		}

		predictions = append(predictions, InventoryPrediction{
			Date:               day.Format(dateLayout),
			PredictedInventory: level,
			RecommendedReorder: reorder,
			ConfidenceInterval: []float64{level * 0.9, level * 1.1},
		})
	}
	return predictions, nil
}

// PredictCustomerFlow forecasts daily customer counts for a store.
func (s *Service) PredictCustomerFlow(storeID int, startDate, endDate string, includeExternal bool, rng *rand.Rand) ([]FlowPrediction, error) {
	s.logger.Info().Int("store_id", storeID).Msg("predicting customer flow")

	start, days, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	predictions := make([]FlowPrediction, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		weekend := isWeekend(day)

		base := 200.0
		if weekend {
			base += 100
		}
		predicted := int(base * 1.1 * (0.9 + rng.Float64()*0.2))

		predictions = append(predictions, FlowPrediction{
			Date:               day.Format(dateLayout),
			PredictedFlow:      predicted,
			ConfidenceInterval: []float64{float64(predicted) * 0.8, float64(predicted) * 1.2},
			ExternalFactors:    externalFactors(includeExternal, weekend, rng),
		})
	}
	return predictions, nil
}

// PredictDemand forecasts demand for a product. Demand currently follows
// the sales forecast one to one.
func (s *Service) PredictDemand(storeID, productID int, startDate, endDate string, includeExternal bool, rng *rand.Rand) ([]DemandPrediction, error) {
	sales, err := s.PredictSales(storeID, &productID, startDate, endDate, includeExternal, rng)
	if err != nil {
		return nil, err
	}

	predictions := make([]DemandPrediction, 0, len(sales))
	for _, sp := range sales {
		predictions = append(predictions, DemandPrediction{
			Date:               sp.Date,
			PredictedDemand:    sp.PredictedSales,
			ConfidenceInterval: sp.ConfidenceInterval,
			ExternalFactors:    sp.ExternalFactors,
		})
	}
	return predictions, nil
}

// TrainModel pretends to start a training job and returns its task ID.
func (s *Service) TrainModel(modelType string, params map[string]interface{}) string {
	s.logger.Info().Str("model_type", modelType).Msg("starting mock training job")
	return uuid.New().String()
}
