package entity

// Product is one sellable catalog entry, flattened from the provider's
// price+product pair. Immutable once fetched.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	PriceID     string   `json:"priceId"`
	// PriceCents is the unit amount in minor currency units.
	PriceCents int64 `json:"price"`
}
