package stripecheckout

import (
	"context"

	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Client wraps the Stripe API for the two outbound calls this service
// makes: listing the priced catalog and creating checkout sessions.
type Client struct {
	api              *client.API
	pageLimit        int64
	successURL       string
	cancelURL        string
	allowedCountries []string
}

type Options struct {
	SecretKey        string
	CatalogPageLimit int64
	SuccessURL       string
	CancelURL        string
	AllowedCountries []string
}

func New(opts Options) *Client {
	api := &client.API{}
	api.Init(opts.SecretKey, nil)

	limit := opts.CatalogPageLimit
	if limit <= 0 {
		limit = 100
	}
	return &Client{
		api:              api,
		pageLimit:        limit,
		successURL:       opts.SuccessURL,
		cancelURL:        opts.CancelURL,
		allowedCountries: opts.AllowedCountries,
	}
}

// ListProducts flattens active prices (with their product expanded) into
// sellable catalog entries. Prices without an attached product are skipped.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	params := &stripe.PriceListParams{Active: stripe.Bool(true)}
	params.Context = ctx
	params.Limit = stripe.Int64(c.pageLimit)
	params.AddExpand("data.product")

	var products []entity.Product
	iter := c.api.Prices.List(params)
	for iter.Next() {
		p := iter.Price()
		if p.Product == nil {
			continue
		}
		products = append(products, entity.Product{
			ID:          p.Product.ID,
			Name:        p.Product.Name,
			Description: p.Product.Description,
			Images:      p.Product.Images,
			PriceID:     p.ID,
			PriceCents:  p.UnitAmount,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
