package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaiunruh/coffee-cart/internal/adapter/http/middleware"
	"github.com/kaiunruh/coffee-cart/internal/adapter/stripecheckout"
	"github.com/kaiunruh/coffee-cart/internal/logging"
	"github.com/kaiunruh/coffee-cart/internal/usecase"
)

type WebhookHandler struct {
	completed *usecase.HandleCompletedPayment
}

func NewWebhookHandler(completed *usecase.HandleCompletedPayment) *WebhookHandler {
	return &WebhookHandler{completed: completed}
}

// HandleEvent handles POST /api/stripe-webhook behind the signature
// middleware. Once an event is verified and classified the provider is
// always acknowledged with 200; notification dispatch is best-effort and
// never changes the response.
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	event, ok := middleware.EventFrom(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing event"})
		return
	}

	kind := string(event.Type)
	if kind != stripecheckout.EventCheckoutCompleted {
		middleware.CountWebhook(kind, "ignored")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	payment, err := stripecheckout.DecodeCompletedPayment(event)
	if err != nil {
		// Verified but undecodable: acknowledge, redelivery of the same
		// bytes cannot succeed either.
		logging.From(c).Error("decode completed payment", "err", err)
		middleware.CountWebhook(kind, "decode_error")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()
	ctx = logging.WithCtx(ctx, logging.From(c))

	h.completed.Execute(ctx, payment)
	middleware.CountWebhook(kind, "handled")
	c.JSON(http.StatusOK, gin.H{"received": true})
}
