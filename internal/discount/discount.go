// internal/discount/discount.go

// Package discount resolves checkout discount codes against a static rule
// set. Evaluation is stateless and side-effect free; a bad code degrades to a
// zero discount instead of failing the checkout.
package discount

import (
	"github.com/shopspring/decimal"

	"github.com/neonmart/storefront-backend/internal/pricing"
)

type PolicyKind int

const (
	// PolicyNone means no code was submitted.
	PolicyNone PolicyKind = iota
	// PolicyInvalid means an unrecognized code was submitted. It differs
	// from PolicyNone only in the message shown to the shopper; both apply
	// a zero discount.
	PolicyInvalid
	// PolicyPercentage is a recognized code with a fractional discount.
	PolicyPercentage
)

type Policy struct {
	Kind     PolicyKind
	Code     string
	Fraction decimal.Decimal
	Label    string
}

// Codes are matched case-sensitively, mirroring how the storefront has always
// behaved.
var codes = map[string]struct {
	fraction string
	label    string
}{
	"SAVE10": {"0.10", "10% off applied"},
	"SAVE20": {"0.20", "20% off applied"},
}

// Evaluate resolves a submitted code to its policy. It is safe to call
// repeatedly; the table is fixed at compile time.
func Evaluate(code string) Policy {
	if code == "" {
		return Policy{Kind: PolicyNone}
	}

	entry, ok := codes[code]
	if !ok {
		return Policy{Kind: PolicyInvalid, Code: code, Label: "Invalid discount code"}
	}

	fraction, _ := decimal.NewFromString(entry.fraction)
	return Policy{
		Kind:     PolicyPercentage,
		Code:     code,
		Fraction: fraction,
		Label:    entry.label,
	}
}

// Amount computes the discount this policy takes off the given subtotal.
// None and Invalid policies always yield zero.
func (p Policy) Amount(subtotal decimal.Decimal) decimal.Decimal {
	if p.Kind != PolicyPercentage {
		return decimal.Zero
	}
	return pricing.DiscountAmount(subtotal, p.Fraction)
}
