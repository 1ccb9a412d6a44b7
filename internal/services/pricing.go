package service

import (
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/shopspring/decimal"
)

// priceCartItem fills the display price and subtotal of a single cart line.
func priceCartItem(item *models.CartItem) error {
	snapshot := item.Product.PriceSnapshot()
	item.Product.Price = pricing.DisplayPrice(snapshot)

	subtotal, err := pricing.LineSubtotal(item.Quantity, snapshot)
	if err != nil {
		return fmt.Errorf("pricing cart item %s: %w", item.ID, err)
	}

	item.SubTotal = subtotal

	return nil
}

func priceCartItems(items []models.CartItem) (decimal.Decimal, error) {
	lines := make([]pricing.Line, 0, len(items))

	for i := range items {
		if err := priceCartItem(&items[i]); err != nil {
			return decimal.Zero, err
		}

		lines = append(lines, pricing.Line{Quantity: items[i].Quantity, Price: items[i].Product.PriceSnapshot()})
	}

	return pricing.Total(lines)
}

// priceOrder prices order against the current product prices.
func priceOrder(order *models.Order) error {
	lines := make([]pricing.Line, 0, len(order.Items))

	for i := range order.Items {
		item := &order.Items[i]
		snapshot := item.Product.PriceSnapshot()
		item.Product.Price = pricing.DisplayPrice(snapshot)

		lineTotal, err := pricing.LineSubtotal(item.Quantity, snapshot)
		if err != nil {
			return fmt.Errorf("pricing order item %s: %w", item.ID, err)
		}

		item.LineTotal = lineTotal
		lines = append(lines, pricing.Line{Quantity: item.Quantity, Price: snapshot})
	}

	total, err := pricing.Total(lines)
	if err != nil {
		return err
	}

	order.TotalPrice = total

	return nil
}
