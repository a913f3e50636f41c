package utils

import "github.com/shopspring/decimal"

// Round2 rounds a float to two decimal places using decimal arithmetic to
// avoid binary-float rounding surprises on money values.
func Round2(f float64) float64 {
	v, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return v
}

// Round4 rounds a float to four decimal places.
func Round4(f float64) float64 {
	v, _ := decimal.NewFromFloat(f).Round(4).Float64()
	return v
}
