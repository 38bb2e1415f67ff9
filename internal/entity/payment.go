package entity

import "strings"

// ShippingAddress is the block collected by the hosted checkout page. Every
// field is individually optional; missing fields render as empty strings.
type ShippingAddress struct {
	Name       string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
}

// CompletedPayment is what the receiver extracts from a verified
// checkout-completed event: the paid total plus the metadata echoed back
// from session creation.
type CompletedPayment struct {
	AmountCents  int64
	Currency     string
	Delivery     DeliveryMethod
	OrderSummary string
	Address      *ShippingAddress
}

// DestinationLine renders the one-line destination used in notifications:
// name, line1, city, state, postal code, comma-separated, empty fields kept
// in place.
func (a ShippingAddress) DestinationLine() string {
	return strings.Join([]string{a.Name, a.Line1, a.City, a.State, a.PostalCode}, ", ")
}
