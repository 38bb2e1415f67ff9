package usecase

import (
	"fmt"

	"github.com/kaiunruh/coffee-cart/internal/entity"
)

// CheckoutItem is one cart entry as submitted by the client: the catalog
// price reference, the quantity, and the display name used for the order
// summary metadata.
type CheckoutItem struct {
	PriceID  string
	Quantity int64
	Name     string
}

// Shipping fee tiers by total unit count, in cents.
const (
	shippingSmall  = 1000 // 1-4 units
	shippingMedium = 1200 // 5-8 units
	shippingLarge  = 1500 // 9+ units
)

// ShippingCents returns the flat shipping fee for an order totalling
// totalUnits items.
func ShippingCents(totalUnits int64) int64 {
	switch {
	case totalUnits <= 4:
		return shippingSmall
	case totalUnits <= 8:
		return shippingMedium
	default:
		return shippingLarge
	}
}

// BuildLineItems turns validated cart entries into the ordered line-item
// sequence submitted to the provider: one catalog reference per entry, in
// cart order, plus a trailing ad-hoc shipping item when the order ships.
// Pure and deterministic; this is the unit-test boundary for pricing.
func BuildLineItems(items []CheckoutItem, delivery entity.DeliveryMethod) ([]entity.LineItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	out := make([]entity.LineItem, 0, len(items)+1)
	var totalUnits int64
	for i, it := range items {
		if it.PriceID == "" || it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d", ErrInvalidItem, i)
		}
		out = append(out, entity.LineItem{PriceID: it.PriceID, Quantity: it.Quantity})
		totalUnits += it.Quantity
	}

	if delivery == entity.DeliveryShip {
		out = append(out, entity.ShippingLineItem(ShippingCents(totalUnits)))
	}
	return out, nil
}

// SummarizeItems renders the order summary attached as session metadata,
// e.g. "Latte x2, Espresso x1". Items without a name are skipped.
func SummarizeItems(items []CheckoutItem) string {
	cart := entity.Cart{}
	for _, it := range items {
		if it.Name == "" {
			continue
		}
		cart = append(cart, entity.CartItem{
			Product:  entity.Product{ID: it.PriceID, Name: it.Name},
			Quantity: it.Quantity,
		})
	}
	return cart.Summary()
}
