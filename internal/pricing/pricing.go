// internal/pricing/pricing.go

// Package pricing holds the money math for carts and checkout. Every function
// is pure and total; amounts are decimals so currency display never drifts.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Line is the minimal shape pricing needs from a cart line or an order item
// snapshot.
type Line struct {
	Price    decimal.Decimal
	Quantity int
}

// LineTotal returns price multiplied by quantity.
func LineTotal(line Line) decimal.Decimal {
	return line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Subtotal sums the line totals. An empty set of lines yields zero.
func Subtotal(lines []Line) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineTotal(line))
	}
	return subtotal
}

// DiscountAmount returns the subtotal share taken off by the given fraction
// (0.10 means 10% off). Non-positive fractions yield zero.
func DiscountAmount(subtotal, fraction decimal.Decimal) decimal.Decimal {
	if fraction.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return subtotal.Mul(fraction)
}

// FinalTotal subtracts the discount from the subtotal, floored at zero so a
// policy exceeding 100% can never produce a negative total.
func FinalTotal(subtotal, discountAmount decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(discountAmount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
