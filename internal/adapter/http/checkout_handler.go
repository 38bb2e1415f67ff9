package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaiunruh/coffee-cart/internal/adapter/http/middleware"
	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/kaiunruh/coffee-cart/internal/logging"
	"github.com/kaiunruh/coffee-cart/internal/usecase"
)

type CheckoutHandler struct {
	create *usecase.CreateCheckout
}

func NewCheckoutHandler(create *usecase.CreateCheckout) *CheckoutHandler {
	return &CheckoutHandler{create: create}
}

type cartItemReq struct {
	PriceID  string `json:"priceId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
	Name     string `json:"name"`
}

type createCheckoutReq struct {
	CartItems      []cartItemReq `json:"cartItems"`
	DeliveryMethod string        `json:"deliveryMethod"`
	CustomerEmail  string        `json:"customerEmail"`
}

func (r createCheckoutReq) toInput() (usecase.CreateCheckoutInput, error) {
	delivery, err := entity.ParseDeliveryMethod(r.DeliveryMethod)
	if err != nil {
		return usecase.CreateCheckoutInput{}, err
	}
	items := make([]usecase.CheckoutItem, 0, len(r.CartItems))
	for _, it := range r.CartItems {
		items = append(items, usecase.CheckoutItem{
			PriceID:  it.PriceID,
			Quantity: it.Quantity,
			Name:     it.Name,
		})
	}
	return usecase.CreateCheckoutInput{
		Items:         items,
		Delivery:      delivery,
		CustomerEmail: r.CustomerEmail,
	}, nil
}

// CreateCheckout handles POST /api/create-checkout. Validation failures
// return 400 before any provider call; provider failures map to a generic
// 500 message.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req createCheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown delivery method"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()
	ctx = logging.WithCtx(ctx, logging.From(c))

	out, err := h.create.Execute(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyCart):
			middleware.CountCheckout("empty_cart")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, usecase.ErrInvalidItem):
			middleware.CountCheckout("invalid_item")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item"})
		default:
			middleware.CountCheckout("gateway_error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create checkout session"})
		}
		return
	}

	middleware.CountCheckout("ok")
	c.JSON(http.StatusOK, gin.H{"url": out.URL})
}

// PreviewCheckout handles POST /api/checkout-preview: the same validation
// and pricing as CreateCheckout, with no provider call.
func (h *CheckoutHandler) PreviewCheckout(c *gin.Context) {
	var req createCheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown delivery method"})
		return
	}

	out, err := h.create.Preview(in)
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalUnits":    out.TotalUnits,
		"shippingCents": out.ShippingCents,
		"lineItems":     out.LineItems,
	})
}
