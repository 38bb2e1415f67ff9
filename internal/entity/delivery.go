package entity

import "errors"

// DeliveryMethod selects whether an order is shipped (fee + address
// collection) or picked up in store.
type DeliveryMethod string

const (
	DeliveryShip   DeliveryMethod = "ship"
	DeliveryPickup DeliveryMethod = "pickup"
)

var ErrUnknownDelivery = errors.New("unknown delivery method")

// ParseDeliveryMethod validates the wire value. An absent value defaults to
// pickup, matching what the webhook side assumes when metadata is missing.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch DeliveryMethod(s) {
	case DeliveryShip:
		return DeliveryShip, nil
	case DeliveryPickup, "":
		return DeliveryPickup, nil
	}
	return "", ErrUnknownDelivery
}
