package stripecheckout

import (
	"encoding/json"
	"fmt"

	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// EventCheckoutCompleted is the only event kind that triggers a side
// effect; every other kind is acknowledged and dropped.
const EventCheckoutCompleted = "checkout.session.completed"

// VerifyEvent reconstructs the expected signature from the exact raw body,
// the shared signing secret, and the Stripe-Signature header. It fails
// closed: no field of the body is trusted until this returns nil error.
// Events arrive with the account's pinned API version, so the SDK's
// version-mismatch check is disabled; the payload decode pins its own
// field set.
func VerifyEvent(payload []byte, sigHeader, secret string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, sigHeader, secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
}

// sessionPayload pins the handled field set of a completed checkout
// session, independent of provider API-version shifts. Depending on the
// account's API version the collected address arrives either as
// shipping_details or under collected_information.
type sessionPayload struct {
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	Metadata        map[string]string `json:"metadata"`
	ShippingDetails *shippingDetails  `json:"shipping_details"`

	CollectedInformation *struct {
		ShippingDetails *shippingDetails `json:"shipping_details"`
	} `json:"collected_information"`
}

type shippingDetails struct {
	Name    string `json:"name"`
	Address struct {
		Line1      string `json:"line1"`
		Line2      string `json:"line2"`
		City       string `json:"city"`
		State      string `json:"state"`
		PostalCode string `json:"postal_code"`
	} `json:"address"`
}

// DecodeCompletedPayment extracts the notification inputs from a verified
// checkout.session.completed event. Delivery defaults to pickup when the
// metadata is absent or unrecognized.
func DecodeCompletedPayment(ev stripe.Event) (entity.CompletedPayment, error) {
	var s sessionPayload
	if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
		return entity.CompletedPayment{}, fmt.Errorf("decode session object: %w", err)
	}

	delivery, err := entity.ParseDeliveryMethod(s.Metadata[MetaDeliveryMethod])
	if err != nil {
		delivery = entity.DeliveryPickup
	}

	p := entity.CompletedPayment{
		AmountCents:  s.AmountTotal,
		Currency:     s.Currency,
		Delivery:     delivery,
		OrderSummary: s.Metadata[MetaOrderSummary],
	}

	sd := s.ShippingDetails
	if sd == nil && s.CollectedInformation != nil {
		sd = s.CollectedInformation.ShippingDetails
	}
	if delivery == entity.DeliveryShip && sd != nil {
		p.Address = &entity.ShippingAddress{
			Name:       sd.Name,
			Line1:      sd.Address.Line1,
			Line2:      sd.Address.Line2,
			City:       sd.Address.City,
			State:      sd.Address.State,
			PostalCode: sd.Address.PostalCode,
		}
	}
	return p, nil
}
