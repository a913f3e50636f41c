package catalog

import "github.com/shopspring/decimal"

// Product categories carried by the catalog.
const (
	CategoryCoffee = "coffee"
	CategoryTea    = "tea"
	CategoryCake   = "cake"
	CategoryBread  = "bread"
)

// Product is a single catalog entry. Costs and prices are per unit.
type Product struct {
	ID        int
	Name      string
	Category  string
	UnitCost  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Catalog holds the static product list and the promotion mechanics the
// decision engine can draw from. It is built once at startup and never
// mutated afterwards.
type Catalog struct {
	Products       []Product
	PromotionTypes []string
}

func product(id int, name, category string, cost, price string) Product {
	return Product{
		ID:        id,
		Name:      name,
		Category:  category,
		UnitCost:  decimal.RequireFromString(cost),
		UnitPrice: decimal.RequireFromString(price),
	}
}

// Default returns the built-in coffee shop catalog.
func Default() *Catalog {
	return &Catalog{
		Products: []Product{
			product(1, "Espresso", CategoryCoffee, "2.5", "4.5"),
			product(2, "Latte", CategoryCoffee, "3.0", "5.5"),
			product(3, "Cappuccino", CategoryCoffee, "3.0", "5.5"),
			product(4, "Americano", CategoryCoffee, "2.0", "4.0"),
			product(5, "Green Tea", CategoryTea, "1.5", "3.5"),
			product(6, "Black Tea", CategoryTea, "1.5", "3.5"),
			product(7, "Cheesecake", CategoryCake, "3.0", "6.5"),
			product(8, "Chocolate Cake", CategoryCake, "3.0", "6.5"),
			product(9, "Croissant", CategoryBread, "1.5", "3.0"),
			product(10, "Bagel", CategoryBread, "1.5", "3.0"),
		},
		PromotionTypes: []string{
			"discount",
			"buy_one_get_one",
			"bundle",
			"free_addon",
			"loyalty_points",
		},
	}
}
