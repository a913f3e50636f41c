package decision

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"app/catalog"
)

// ErrInvalidInput marks requests carrying negative quantities or stock
// levels. Handlers translate it to a 400 instead of the generic 500.
var ErrInvalidInput = errors.New("invalid input")

// SalesRecord is one observed sale event or aggregate for a product. Records
// carry no ordering; all matching records for a product are averaged.
type SalesRecord struct {
	ProductID int
	Quantity  float64
}

// Inventory maps product IDs to on-hand quantities. Missing entries mean
// zero stock.
type Inventory map[int]int

// Engine evaluates the replenishment, staffing and promotion policies over
// an immutable catalog. All methods are pure functions of their arguments
// (plus the injected random source where one is taken) and are safe to call
// concurrently.
type Engine struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
	now     func() time.Time
}

// New builds an engine over the given catalog.
func New(c *catalog.Catalog, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: c,
		logger:  logger.With().Str("component", "decision").Logger(),
		now:     time.Now,
	}
}

func validateInventory(inv Inventory) error {
	for id, qty := range inv {
		if qty < 0 {
			return fmt.Errorf("%w: negative on-hand quantity %d for product %d", ErrInvalidInput, qty, id)
		}
	}
	return nil
}

func validateSales(sales []SalesRecord) error {
	for _, rec := range sales {
		if rec.Quantity < 0 {
			return fmt.Errorf("%w: negative sale quantity %g for product %d", ErrInvalidInput, rec.Quantity, rec.ProductID)
		}
	}
	return nil
}

// averageDailySales averages the quantities of the records matching
// productID, or returns fallback when none match.
func averageDailySales(sales []SalesRecord, productID int, fallback float64) float64 {
	var sum float64
	var n int
	for _, rec := range sales {
		if rec.ProductID == productID {
			sum += rec.Quantity
			n++
		}
	}
	if n == 0 {
		return fallback
	}
	return sum / float64(n)
}
