package decision

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/catalog"
)

func newTestEngine() *Engine {
	return New(catalog.Default(), zerolog.Nop())
}

func espressoSales(quantity float64, n int) []SalesRecord {
	sales := make([]SalesRecord, 0, n)
	for i := 0; i < n; i++ {
		sales = append(sales, SalesRecord{ProductID: 1, Quantity: quantity})
	}
	return sales
}

func findRecommendation(recs []PurchaseRecommendation, productID int) *PurchaseRecommendation {
	for i := range recs {
		if recs[i].ProductID == productID {
			return &recs[i]
		}
	}
	return nil
}

func TestRecommendPurchasesEspressoExample(t *testing.T) {
	e := newTestEngine()

	recs, _, err := e.RecommendPurchases(1, Inventory{1: 10}, espressoSales(10, 3), "")
	require.NoError(t, err)

	rec := findRecommendation(recs, 1)
	require.NotNil(t, rec)
	assert.Equal(t, "Espresso", rec.ProductName)
	assert.Equal(t, 10, rec.CurrentStock)
	assert.Equal(t, 10.0, rec.EstimatedDailyDemand)
	assert.Equal(t, 130, rec.RecommendedQuantity)
	assert.Equal(t, UrgencyHigh, rec.Urgency)
	assert.Equal(t, 325.00, rec.EstimatedCost)
}

func TestRecommendPurchasesDefaultDemand(t *testing.T) {
	e := newTestEngine()

	// No inventory and no sales: every catalog product falls back to the
	// default demand of 5/day and needs a full 14-day supply.
	recs, total, err := e.RecommendPurchases(1, Inventory{}, nil, "")
	require.NoError(t, err)
	require.Len(t, recs, len(catalog.Default().Products))

	for _, rec := range recs {
		assert.Equal(t, 5.0, rec.EstimatedDailyDemand)
		assert.Equal(t, 70, rec.RecommendedQuantity)
		assert.Equal(t, UrgencyHigh, rec.Urgency)
	}
	assert.Greater(t, total, 0.0)
}

func TestRecommendPurchasesStockMonotonicity(t *testing.T) {
	e := newTestEngine()
	sales := espressoSales(10, 3)

	prevQuantity := 1 << 30
	prevUrgency := urgencyRank[UrgencyHigh]
	for stock := 0; stock <= 140; stock += 10 {
		recs, _, err := e.RecommendPurchases(1, Inventory{1: stock}, sales, "")
		require.NoError(t, err)

		rec := findRecommendation(recs, 1)
		if rec == nil {
			// Once stock covers the 14-day target the product drops out
			// and must stay out for any higher stock level.
			assert.GreaterOrEqual(t, stock, 140)
			continue
		}
		assert.LessOrEqual(t, rec.RecommendedQuantity, prevQuantity)
		assert.GreaterOrEqual(t, urgencyRank[rec.Urgency], prevUrgency)
		prevQuantity = rec.RecommendedQuantity
		prevUrgency = urgencyRank[rec.Urgency]
	}
}

func TestRecommendPurchasesExcludesCoveredStock(t *testing.T) {
	e := newTestEngine()

	// 140 on hand covers 14 days at 10/day exactly.
	recs, _, err := e.RecommendPurchases(1, Inventory{1: 140}, espressoSales(10, 3), "")
	require.NoError(t, err)
	assert.Nil(t, findRecommendation(recs, 1))
}

func TestRecommendPurchasesOrdering(t *testing.T) {
	e := newTestEngine()

	// Product 1 has almost no runway, product 2 roughly five days, product 3
	// plenty; mixed urgencies exercise the sort.
	inv := Inventory{1: 1, 2: 50, 3: 100}
	sales := []SalesRecord{
		{ProductID: 1, Quantity: 10},
		{ProductID: 2, Quantity: 10},
		{ProductID: 3, Quantity: 10},
	}
	recs, total, err := e.RecommendPurchases(1, inv, sales, "")
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	sum := 0.0
	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		assert.LessOrEqual(t, urgencyRank[prev.Urgency], urgencyRank[cur.Urgency])
		if prev.Urgency == cur.Urgency {
			assert.GreaterOrEqual(t, prev.RecommendedQuantity, cur.RecommendedQuantity)
		}
	}
	for _, rec := range recs {
		sum += rec.EstimatedCost
	}
	assert.InDelta(t, sum, total, 0.01)
}

func TestRecommendPurchasesIdempotent(t *testing.T) {
	e := newTestEngine()
	inv := Inventory{1: 10, 2: 30}
	sales := espressoSales(10, 3)

	first, firstTotal, err := e.RecommendPurchases(1, inv, sales, "winter")
	require.NoError(t, err)
	second, secondTotal, err := e.RecommendPurchases(1, inv, sales, "winter")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
}

func TestRecommendPurchasesRejectsNegativeInputs(t *testing.T) {
	e := newTestEngine()

	_, _, err := e.RecommendPurchases(1, Inventory{1: -5}, nil, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = e.RecommendPurchases(1, Inventory{}, []SalesRecord{{ProductID: 1, Quantity: -2}}, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
