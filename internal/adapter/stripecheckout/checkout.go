package stripecheckout

import (
	"context"

	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/kaiunruh/coffee-cart/internal/usecase"
	"github.com/stripe/stripe-go/v82"
)

// Session metadata keys echoed back in the completed-payment event.
const (
	MetaDeliveryMethod = "deliveryMethod"
	MetaOrderSummary   = "orderSummary"
)

// CreateSession submits the line items to Stripe Checkout and returns the
// hosted page URL the browser is redirected to.
func (c *Client) CreateSession(ctx context.Context, req usecase.SessionRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          toLineItemParams(req.LineItems),
		SuccessURL:         stripe.String(c.successURL),
		CancelURL:          stripe.String(c.cancelURL),
	}
	params.Context = ctx
	params.AddMetadata(MetaDeliveryMethod, string(req.Delivery))
	if req.OrderSummary != "" {
		params.AddMetadata(MetaOrderSummary, req.OrderSummary)
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if req.CollectAddress {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(c.allowedCountries),
		}
	}

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}

func toLineItemParams(items []entity.LineItem) []*stripe.CheckoutSessionLineItemParams {
	out := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, li := range items {
		if li.AdHoc() {
			out = append(out, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(li.Currency),
					UnitAmount: stripe.Int64(li.UnitAmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(li.Name),
					},
				},
				Quantity: stripe.Int64(li.Quantity),
			})
			continue
		}
		out = append(out, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(li.PriceID),
			Quantity: stripe.Int64(li.Quantity),
		})
	}
	return out
}
