package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/kaiunruh/coffee-cart/internal/logging"
	"github.com/kaiunruh/coffee-cart/internal/usecase"
)

type ProductHandler struct {
	list *usecase.ListProducts
}

func NewProductHandler(list *usecase.ListProducts) *ProductHandler {
	return &ProductHandler{list: list}
}

// ListProducts handles GET /api/products. The catalog is fetched fresh per
// request.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()
	ctx = logging.WithCtx(ctx, logging.From(c))

	products, err := h.list.Execute(ctx)
	if err != nil {
		logging.From(c).Error("list products", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}
	if products == nil {
		products = []entity.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
