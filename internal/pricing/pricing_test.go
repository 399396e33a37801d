// internal/pricing/pricing_test.go
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestLineTotal(t *testing.T) {
	line := Line{Price: dec("249.99"), Quantity: 3}
	assert.True(t, dec("749.97").Equal(LineTotal(line)))
}

func TestSubtotal(t *testing.T) {
	lines := []Line{
		{Price: dec("100"), Quantity: 2},
		{Price: dec("49.50"), Quantity: 1},
	}
	assert.True(t, dec("249.50").Equal(Subtotal(lines)))
}

func TestSubtotalEmptyCart(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(Subtotal(nil)))
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		fraction string
		want     string
	}{
		{"ten percent", "1000", "0.10", "100"},
		{"twenty percent", "1000", "0.20", "200"},
		{"zero fraction", "1000", "0", "0"},
		{"negative fraction degrades to zero", "1000", "-0.5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountAmount(dec(tt.subtotal), dec(tt.fraction))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFinalTotal(t *testing.T) {
	assert.True(t, dec("900").Equal(FinalTotal(dec("1000"), dec("100"))))
	assert.True(t, dec("800").Equal(FinalTotal(dec("1000"), dec("200"))))
	assert.True(t, dec("1000").Equal(FinalTotal(dec("1000"), decimal.Zero)))
}

func TestFinalTotalNeverNegative(t *testing.T) {
	// A discount beyond 100% floors at zero instead of going negative.
	assert.True(t, decimal.Zero.Equal(FinalTotal(dec("100"), dec("150"))))
}

func TestDecimalArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 is the classic binary float trap; decimals stay exact.
	lines := []Line{
		{Price: dec("0.1"), Quantity: 1},
		{Price: dec("0.2"), Quantity: 1},
	}
	assert.Equal(t, "0.3", Subtotal(lines).String())
}
