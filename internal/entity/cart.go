package entity

import (
	"fmt"
	"strings"
)

// CartItem is a product plus a positive quantity. At most one entry exists
// per product id while the item is in the cart.
type CartItem struct {
	Product
	Quantity int64 `json:"quantity"`
}

// Cart is an ordered collection of cart items. All transitions are pure:
// they return the resulting slice and never mutate persistent state. The
// canonical cart lives client-side; this reducer mirrors its rules so the
// server and tests agree on merge/update semantics.
type Cart []CartItem

// Add merges by product id: an existing entry keeps its position and gains
// qty, a new entry is appended with quantity qty.
func (c Cart) Add(p Product, qty int64) Cart {
	if qty <= 0 {
		return c
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ID == p.ID {
			out[i].Quantity += qty
			return out
		}
	}
	return append(out, CartItem{Product: p, Quantity: qty})
}

// UpdateQuantity sets the entry's quantity exactly. qty <= 0 removes the
// entry. Unknown ids are a no-op.
func (c Cart) UpdateQuantity(id string, qty int64) Cart {
	if qty <= 0 {
		return c.Remove(id)
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = qty
		}
	}
	return out
}

// Remove filters the entry by product id; no-op if absent.
func (c Cart) Remove(id string) Cart {
	out := make(Cart, 0, len(c))
	for _, it := range c {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// TotalUnits is the sum of all quantities.
func (c Cart) TotalUnits() int64 {
	var n int64
	for _, it := range c {
		n += it.Quantity
	}
	return n
}

// TotalCents is the product subtotal, excluding shipping.
func (c Cart) TotalCents() int64 {
	var n int64
	for _, it := range c {
		n += it.PriceCents * it.Quantity
	}
	return n
}

// Summary renders a short human-readable order line, e.g.
// "Latte x2, Espresso x1". It is attached to checkout sessions as metadata
// and echoed back in the payment event.
func (c Cart) Summary() string {
	var b strings.Builder
	for i, it := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s x%d", it.Name, it.Quantity)
	}
	return b.String()
}
