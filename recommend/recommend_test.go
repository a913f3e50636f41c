package recommend

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *MemoryFeedbackStore) {
	store := NewMemoryFeedbackStore()
	return New(store, zerolog.Nop()), store
}

func TestProductsForKnownUser(t *testing.T) {
	s, _ := newTestService()
	rng := rand.New(rand.NewSource(1))

	// User 1 strongly prefers coffee; Latte has the highest popularity among
	// coffees, so 0.9*0.7 + 0.9*0.3 = 0.9 tops the list.
	recs := s.Products(1, 1, 3, rng)
	require.Len(t, recs, 3)
	assert.Equal(t, "Latte", recs[0].ProductName)
	assert.InDelta(t, 0.9, recs[0].Score, 1e-9)
	assert.Contains(t, recs[0].Reason, "coffee")

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestProductsForUnknownUserFallsBackToPopularity(t *testing.T) {
	s, _ := newTestService()
	rng := rand.New(rand.NewSource(1))

	recs := s.Products(999, 1, 10, rng)
	require.Len(t, recs, 10)
	assert.Equal(t, "Latte", recs[0].ProductName)
	assert.Equal(t, 0.9, recs[0].Score)
	assert.Equal(t, "Popular item", recs[0].Reason)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestProductsCountClamped(t *testing.T) {
	s, _ := newTestService()
	rng := rand.New(rand.NewSource(1))

	assert.Len(t, s.Products(1, 1, 100, rng), 10)
	assert.Len(t, s.Products(1, 1, 0, rng), 10)
	assert.Len(t, s.Products(1, 1, 2, rng), 2)
}

func TestPromotionsForKnownUser(t *testing.T) {
	s, _ := newTestService()
	rng := rand.New(rand.NewSource(1))

	// User 1: coffee promo scores 0.9*0.6 + 0.33*0.4 = 0.672, ahead of the
	// category-wide happy hour at 0.9*0.6 + 0.15*0.4 = 0.6.
	recs := s.Promotions(1, 1, 5, rng)
	require.Len(t, recs, 5)
	assert.Equal(t, 1, recs[0].PromotionID)
	assert.InDelta(t, 0.672, recs[0].Score, 1e-9)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestPromotionsForUnknownUser(t *testing.T) {
	s, _ := newTestService()
	rng := rand.New(rand.NewSource(1))

	recs := s.Promotions(999, 1, 3, rng)
	require.Len(t, recs, 3)
	for _, rec := range recs {
		assert.Equal(t, "Limited time offer", rec.Reason)
		assert.GreaterOrEqual(t, rec.Score, 0.0)
		assert.Less(t, rec.Score, 1.0)
	}
}

func TestCombinationsForKnownUser(t *testing.T) {
	s, _ := newTestService()
	rng := rand.New(rand.NewSource(1))

	// For user 1 the Mocha+Croissant bundle wins: avg(0.9, 0.6)*0.7 +
	// 0.12*10*0.3 = 0.885.
	recs := s.Combinations(1, 1, 4, rng)
	require.Len(t, recs, 4)
	assert.Equal(t, 3, recs[0].CombinationID)
	assert.InDelta(t, 0.885, recs[0].Score, 1e-9)
	assert.Contains(t, recs[0].Reason, "12% discount")
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestCombinationsForUnknownUser(t *testing.T) {
	s, _ := newTestService()
	rng := rand.New(rand.NewSource(4))

	recs := s.Combinations(999, 1, 2, rng)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, "Popular combination", rec.Reason)
		assert.NotEmpty(t, rec.Products)
	}
}

func TestSubmitFeedback(t *testing.T) {
	s, store := newTestService()

	productID := 2
	value := 4.5
	err := s.SubmitFeedback(context.Background(), Feedback{
		UserID:        1,
		ProductID:     &productID,
		FeedbackType:  "positive",
		FeedbackValue: &value,
	})
	require.NoError(t, err)

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].UserID)
	assert.Equal(t, 2, *entries[0].ProductID)
	assert.Equal(t, "positive", entries[0].FeedbackType)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestTrainModelReturnsTaskID(t *testing.T) {
	s, _ := newTestService()

	taskID := s.TrainModel("collaborative_filtering", nil)
	_, err := uuid.Parse(taskID)
	assert.NoError(t, err)
}
