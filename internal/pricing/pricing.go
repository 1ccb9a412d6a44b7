// Package pricing derives display prices and totals from immutable price snapshots.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places every display price is rounded to.
const Places = 2

var (
	discountFactor = decimal.RequireFromString("0.7")

	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

// PriceSnapshot is a read-only copy of a product's pricing inputs.
type PriceSnapshot struct {
	BasePrice decimal.Decimal
	Discount  bool
}

// Line pairs a quantity with the price of the product it refers to.
type Line struct {
	Quantity int
	Price    PriceSnapshot
}

// DisplayPrice returns the base price, marked down by 30% when the discount flag is set.
// The result is rounded half away from zero to two places and never negative.
func DisplayPrice(p PriceSnapshot) decimal.Decimal {
	price := p.BasePrice
	if price.IsNegative() {
		price = decimal.Zero
	}

	if p.Discount {
		price = price.Mul(discountFactor)
	}

	return price.Round(Places)
}

// LineSubtotal is quantity times the display price. Zero is allowed; negative
// quantities fail with ErrInvalidQuantity.
func LineSubtotal(quantity int, p PriceSnapshot) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	return DisplayPrice(p).Mul(decimal.NewFromInt(int64(quantity))), nil
}

// Total sums the subtotals of lines. An empty collection totals zero.
func Total(lines []Line) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, line := range lines {
		subtotal, err := LineSubtotal(line.Quantity, line.Price)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(subtotal)
	}

	return total, nil
}
