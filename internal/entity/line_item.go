package entity

// LineItem is one entry of a checkout submission. Either a catalog
// reference (PriceID + Quantity) or an ad-hoc priced entry (shipping),
// never both.
type LineItem struct {
	// Catalog reference.
	PriceID  string
	Quantity int64

	// Ad-hoc priced entry; set only when PriceID is empty.
	Name            string
	Currency        string
	UnitAmountCents int64
}

// AdHoc reports whether the item carries its own price instead of
// referencing a catalog price.
func (li LineItem) AdHoc() bool { return li.PriceID == "" }

// ShippingLineItem builds the single ad-hoc shipping entry appended after
// all product items.
func ShippingLineItem(cents int64) LineItem {
	return LineItem{
		Name:            "Shipping",
		Currency:        "usd",
		UnitAmountCents: cents,
		Quantity:        1,
	}
}
