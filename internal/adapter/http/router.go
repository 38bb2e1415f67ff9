package http

import (
	"github.com/gin-gonic/gin"
	"github.com/kaiunruh/coffee-cart/internal/adapter/http/middleware"
	"github.com/kaiunruh/coffee-cart/internal/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const webhookPath = "/api/stripe-webhook"

func NewRouter(ph *ProductHandler, ch *CheckoutHandler, wh *WebhookHandler, sv *middleware.StripeVerify, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())

	l := logging.New("http")
	r.Use(middleware.Logging(l, webhookPath))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/products", ph.ListProducts)
		api.POST("/create-checkout", ch.CreateCheckout)
		api.POST("/checkout-preview", ch.PreviewCheckout)
		api.POST("/stripe-webhook", sv.Verify(), wh.HandleEvent)
	}

	// Static confirmation views the provider redirects back to.
	if staticDir != "" {
		r.StaticFile("/success", staticDir+"/success.html")
		r.StaticFile("/cancel", staticDir+"/cancel.html")
	}

	return r
}
