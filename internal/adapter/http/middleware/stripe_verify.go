package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaiunruh/coffee-cart/internal/adapter/stripecheckout"
	"github.com/kaiunruh/coffee-cart/internal/logging"
	"github.com/stripe/stripe-go/v82"
)

const eventKey = "stripe_event"

// StripeVerify gates the webhook route. It consumes the raw request body
// unmodified (the signature covers the exact bytes), verifies it against
// the signing secret, and stores the verified event for the handler. Any
// mismatch aborts with 400 before body content is trusted.
type StripeVerify struct {
	secret    string
	bodyLimit int64
}

func NewStripeVerify(secret string) *StripeVerify {
	return &StripeVerify{secret: secret, bodyLimit: 1 << 20} // 1MB
}

func (sv *StripeVerify) Verify() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawBody, err := io.ReadAll(io.LimitReader(c.Request.Body, sv.bodyLimit))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}
		defer c.Request.Body.Close()

		sig := c.GetHeader("Stripe-Signature")
		event, err := stripecheckout.VerifyEvent(rawBody, sig, sv.secret)
		if err != nil {
			logging.From(c).Error("webhook signature verification failed", "err", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}

		c.Set(eventKey, event)
		c.Next()
	}
}

// EventFrom returns the verified event stored by Verify.
func EventFrom(c *gin.Context) (stripe.Event, bool) {
	v, ok := c.Get(eventKey)
	if !ok {
		return stripe.Event{}, false
	}
	ev, ok := v.(stripe.Event)
	return ev, ok
}
