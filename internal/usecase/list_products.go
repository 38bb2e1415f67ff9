package usecase

import (
	"context"

	"github.com/kaiunruh/coffee-cart/internal/entity"
	"golang.org/x/sync/singleflight"
)

// ListProducts fetches the sellable catalog. The catalog is read fresh on
// every page load; singleflight only collapses fetches that are in flight
// at the same moment, it never caches across requests.
type ListProducts struct {
	catalog CatalogSource
	sfg     singleflight.Group
}

func NewListProducts(catalog CatalogSource) *ListProducts {
	return &ListProducts{catalog: catalog}
}

func (uc *ListProducts) Execute(ctx context.Context) ([]entity.Product, error) {
	v, err, _ := uc.sfg.Do("catalog", func() (any, error) {
		return uc.catalog.ListProducts(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Product), nil
}
