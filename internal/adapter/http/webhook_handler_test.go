package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaiunruh/coffee-cart/internal/adapter/http/middleware"
	"github.com/kaiunruh/coffee-cart/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

type notifierMock struct {
	bodies []string
	err    error
}

func (n *notifierMock) Send(_ context.Context, _, body string) error {
	n.bodies = append(n.bodies, body)
	return n.err
}

func webhookRouter(n *notifierMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	wh := NewWebhookHandler(usecase.NewHandleCompletedPayment(n, "New Coffee Order"))
	sv := middleware.NewStripeVerify(testWebhookSecret)
	r := gin.New()
	r.POST("/api/stripe-webhook", sv.Verify(), wh.HandleEvent)
	return r
}

// signHeader builds a Stripe-Signature header over the exact payload bytes:
// v1 = hex(HMAC-SHA256(secret, "<t>.<payload>")).
func signHeader(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func postWebhook(r *gin.Engine, payload []byte, sigHeader string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/stripe-webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if sigHeader != "" {
		req.Header.Set("Stripe-Signature", sigHeader)
	}
	r.ServeHTTP(rec, req)
	return rec
}

func completedEventPayload(object string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_test_1","object":"event","type":"checkout.session.completed","data":{"object":%s}}`,
		object))
}

func TestWebhookInvalidSignatureRejectedWithoutDispatch(t *testing.T) {
	n := &notifierMock{}
	r := webhookRouter(n)

	payload := completedEventPayload(`{"amount_total":1999,"currency":"usd"}`)

	// well-formed completion event, wrong secret
	rec := postWebhook(r, payload, signHeader(payload, "whsec_wrong"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// missing header entirely
	rec = postWebhook(r, payload, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// garbage header
	rec = postWebhook(r, payload, "t=notanumber,v1=zz")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, n.bodies)
}

func TestWebhookTamperedBodyRejected(t *testing.T) {
	n := &notifierMock{}
	r := webhookRouter(n)

	payload := completedEventPayload(`{"amount_total":1999,"currency":"usd"}`)
	header := signHeader(payload, testWebhookSecret)
	tampered := bytes.Replace(payload, []byte("1999"), []byte("1"), 1)

	rec := postWebhook(r, tampered, header)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, n.bodies)
}

func TestWebhookPickupCompletionDispatchesNotification(t *testing.T) {
	n := &notifierMock{}
	r := webhookRouter(n)

	payload := completedEventPayload(
		`{"amount_total":1999,"currency":"usd","metadata":{"deliveryMethod":"pickup"}}`)
	rec := postWebhook(r, payload, signHeader(payload, testWebhookSecret))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	require.Len(t, n.bodies, 1)
	assert.Equal(t, "Payment received: 19.99 USD\nThis is a pickup order.", n.bodies[0])
}

func TestWebhookShipCompletionIncludesDestination(t *testing.T) {
	n := &notifierMock{}
	r := webhookRouter(n)

	payload := completedEventPayload(`{
		"amount_total": 1999,
		"currency": "usd",
		"metadata": {"deliveryMethod": "ship", "orderSummary": "Latte x2, Espresso x1"},
		"shipping_details": {
			"name": "Kai Unruh",
			"address": {"line1": "12 Bean St", "city": "Portland", "state": "OR", "postal_code": "97201"}
		}
	}`)
	rec := postWebhook(r, payload, signHeader(payload, testWebhookSecret))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, n.bodies, 1)
	assert.Contains(t, n.bodies[0], "Payment received: 19.99 USD")
	assert.Contains(t, n.bodies[0], "Order: Latte x2, Espresso x1")
	assert.Contains(t, n.bodies[0], "Shipping to: Kai Unruh, 12 Bean St, Portland, OR, 97201")
}

func TestWebhookOtherEventKindsAcknowledgedWithoutDispatch(t *testing.T) {
	n := &notifierMock{}
	r := webhookRouter(n)

	payload := []byte(`{"id":"evt_test_2","object":"event","type":"payment_intent.created","data":{"object":{}}}`)
	rec := postWebhook(r, payload, signHeader(payload, testWebhookSecret))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	assert.Empty(t, n.bodies)
}

func TestWebhookAcknowledgesEvenWhenPushFails(t *testing.T) {
	n := &notifierMock{err: errors.New("fcm unavailable")}
	r := webhookRouter(n)

	payload := completedEventPayload(`{"amount_total":500,"currency":"usd"}`)
	rec := postWebhook(r, payload, signHeader(payload, testWebhookSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
}
