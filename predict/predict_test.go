package predict

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return New(zerolog.Nop())
}

func TestPredictSalesRangeAndBounds(t *testing.T) {
	s := newTestService()
	rng := rand.New(rand.NewSource(1))

	// 2025-06-02 is a Monday; the week covers five weekdays and a weekend.
	predictions, err := s.PredictSales(1, nil, "2025-06-02", "2025-06-08", true, rng)
	require.NoError(t, err)
	require.Len(t, predictions, 7)

	for i, p := range predictions {
		weekend := i >= 5
		low, high := 99, 121 // 100*1.1*0.9 .. 100*1.1*1.1
		if weekend {
			low, high = 148, 182 // 150*1.1*0.9 .. 150*1.1*1.1
		}
		assert.GreaterOrEqual(t, p.PredictedSales, low, "day %s", p.Date)
		assert.LessOrEqual(t, p.PredictedSales, high, "day %s", p.Date)

		require.Len(t, p.ConfidenceInterval, 2)
		assert.InDelta(t, float64(p.PredictedSales)*0.8, p.ConfidenceInterval[0], 1e-9)
		assert.InDelta(t, float64(p.PredictedSales)*1.2, p.ConfidenceInterval[1], 1e-9)

		require.NotNil(t, p.ExternalFactors)
		assert.Equal(t, weekend, p.ExternalFactors.IsWeekend)
		assert.False(t, p.ExternalFactors.IsHoliday)
		assert.GreaterOrEqual(t, p.ExternalFactors.Temperature, 15.0)
		assert.LessOrEqual(t, p.ExternalFactors.Temperature, 30.0)
	}

	assert.Equal(t, "2025-06-02", predictions[0].Date)
	assert.Equal(t, "2025-06-08", predictions[6].Date)
}

func TestPredictSalesWithoutExternalFactors(t *testing.T) {
	s := newTestService()
	rng := rand.New(rand.NewSource(1))

	predictions, err := s.PredictSales(1, nil, "2025-06-02", "2025-06-02", false, rng)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Nil(t, predictions[0].ExternalFactors)
}

func TestPredictSalesInvalidRange(t *testing.T) {
	s := newTestService()
	rng := rand.New(rand.NewSource(1))

	_, err := s.PredictSales(1, nil, "not-a-date", "2025-06-08", true, rng)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = s.PredictSales(1, nil, "2025-06-08", "2025-06-02", true, rng)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestPredictInventoryWalk(t *testing.T) {
	s := newTestService()
	rng := rand.New(rand.NewSource(1))

	// Weekdays drain 80/day from 200: 120, 40 -> reorder back to 190, 110, 30
	// -> reorder to 180, 100.
	predictions, err := s.PredictInventory(1, 1, "2025-06-02", "2025-06-06", 200, rng)
	require.NoError(t, err)
	require.Len(t, predictions, 5)

	assert.Equal(t, 120.0, predictions[0].PredictedInventory)
	assert.Equal(t, 0, predictions[0].RecommendedReorder)
	assert.Equal(t, 190.0, predictions[1].PredictedInventory)
	assert.Equal(t, 150, predictions[1].RecommendedReorder)
	assert.Equal(t, 110.0, predictions[2].PredictedInventory)
	assert.Equal(t, 0, predictions[2].RecommendedReorder)
	assert.Equal(t, 180.0, predictions[3].PredictedInventory)
	assert.Equal(t, 150, predictions[3].RecommendedReorder)
	assert.Equal(t, 100.0, predictions[4].PredictedInventory)

	for _, p := range predictions {
		require.Len(t, p.ConfidenceInterval, 2)
		assert.InDelta(t, p.PredictedInventory*0.9, p.ConfidenceInterval[0], 1e-9)
		assert.InDelta(t, p.PredictedInventory*1.1, p.ConfidenceInterval[1], 1e-9)
	}
}

func TestPredictCustomerFlowBounds(t *testing.T) {
	s := newTestService()
	rng := rand.New(rand.NewSource(9))

	predictions, err := s.PredictCustomerFlow(1, "2025-06-07", "2025-06-08", false, rng)
	require.NoError(t, err)
	require.Len(t, predictions, 2)

	for _, p := range predictions {
		// Both days are a weekend: 300*1.1*[0.9,1.1].
		assert.GreaterOrEqual(t, p.PredictedFlow, 297)
		assert.LessOrEqual(t, p.PredictedFlow, 363)
	}
}

func TestPredictDemandMirrorsSales(t *testing.T) {
	s := newTestService()

	demand, err := s.PredictDemand(1, 3, "2025-06-02", "2025-06-04", true, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	sales, err := s.PredictSales(1, nil, "2025-06-02", "2025-06-04", true, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	require.Len(t, demand, len(sales))
	for i := range demand {
		assert.Equal(t, sales[i].PredictedSales, demand[i].PredictedDemand)
		assert.Equal(t, sales[i].Date, demand[i].Date)
	}
}

func TestTrainModelReturnsTaskID(t *testing.T) {
	s := newTestService()

	taskID := s.TrainModel("sales_forecast", map[string]interface{}{"epochs": 10})
	_, err := uuid.Parse(taskID)
	assert.NoError(t, err)
}
