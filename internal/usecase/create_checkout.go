package usecase

import (
	"context"
	"fmt"

	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/kaiunruh/coffee-cart/internal/logging"
)

type CreateCheckoutInput struct {
	Items         []CheckoutItem
	Delivery      entity.DeliveryMethod
	CustomerEmail string
}

type CreateCheckoutOutput struct {
	URL string
}

// CreateCheckout validates the cart, builds the line-item sequence, and
// requests a hosted session from the provider. Validation failures return
// before any network call is made.
type CreateCheckout struct {
	gateway CheckoutGateway
}

func NewCreateCheckout(gateway CheckoutGateway) *CreateCheckout {
	return &CreateCheckout{gateway: gateway}
}

func (uc *CreateCheckout) Execute(ctx context.Context, in CreateCheckoutInput) (CreateCheckoutOutput, error) {
	lineItems, err := BuildLineItems(in.Items, in.Delivery)
	if err != nil {
		return CreateCheckoutOutput{}, err
	}

	url, err := uc.gateway.CreateSession(ctx, SessionRequest{
		LineItems:      lineItems,
		Delivery:       in.Delivery,
		OrderSummary:   SummarizeItems(in.Items),
		CustomerEmail:  in.CustomerEmail,
		CollectAddress: in.Delivery == entity.DeliveryShip,
	})
	if err != nil {
		// Full provider detail stays server-side; callers get ErrGateway.
		logging.FromCtx(ctx).Error("create checkout session", "err", err)
		return CreateCheckoutOutput{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return CreateCheckoutOutput{URL: url}, nil
}

// PreviewCheckoutOutput is the no-network estimate computed from the same
// builder the real checkout uses.
type PreviewCheckoutOutput struct {
	TotalUnits    int64
	ShippingCents int64
	LineItems     int
}

// Preview computes the shipping tier and item count for the current cart
// without contacting the provider.
func (uc *CreateCheckout) Preview(in CreateCheckoutInput) (PreviewCheckoutOutput, error) {
	lineItems, err := BuildLineItems(in.Items, in.Delivery)
	if err != nil {
		return PreviewCheckoutOutput{}, err
	}

	var out PreviewCheckoutOutput
	out.LineItems = len(lineItems)
	for _, li := range lineItems {
		if li.AdHoc() {
			out.ShippingCents = li.UnitAmountCents
			continue
		}
		out.TotalUnits += li.Quantity
	}
	return out, nil
}
