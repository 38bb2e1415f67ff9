package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/kaiunruh/coffee-cart/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogMock struct {
	products []entity.Product
	err      error
}

func (c *catalogMock) ListProducts(context.Context) ([]entity.Product, error) {
	return c.products, c.err
}

func productRouter(cat *catalogMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ph := NewProductHandler(usecase.NewListProducts(cat))
	r := gin.New()
	r.GET("/api/products", ph.ListProducts)
	return r
}

func TestListProducts(t *testing.T) {
	r := productRouter(&catalogMock{products: []entity.Product{
		{ID: "prod_1", Name: "Latte", PriceID: "price_1", PriceCents: 450, Images: []string{"https://img/latte.png"}},
	}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Products []entity.Product `json:"products"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Latte", resp.Products[0].Name)
	assert.Equal(t, int64(450), resp.Products[0].PriceCents)
}

func TestListProductsEmptyCatalogIsAnEmptyList(t *testing.T) {
	r := productRouter(&catalogMock{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"products": []}`, rec.Body.String())
}

func TestListProductsUpstreamFailure(t *testing.T) {
	r := productRouter(&catalogMock{err: errors.New("stripe: 503")})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "503")
}
