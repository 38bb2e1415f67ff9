package usecase

import (
	"context"

	"github.com/kaiunruh/coffee-cart/internal/entity"
)

// CatalogSource lists the active, priced products from the payment
// provider's catalog.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}

// SessionRequest is everything the provider needs to host a checkout page.
type SessionRequest struct {
	LineItems      []entity.LineItem
	Delivery       entity.DeliveryMethod
	OrderSummary   string
	CustomerEmail  string
	CollectAddress bool
}

// CheckoutGateway creates a hosted checkout session and returns its
// redirect URL.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (url string, err error)
}

// Notifier delivers a push notification to the configured device.
type Notifier interface {
	Send(ctx context.Context, title, body string) error
}
