package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaiunruh/coffee-cart/configs"
	apihttp "github.com/kaiunruh/coffee-cart/internal/adapter/http"
	"github.com/kaiunruh/coffee-cart/internal/adapter/http/middleware"
	"github.com/kaiunruh/coffee-cart/internal/adapter/push"
	"github.com/kaiunruh/coffee-cart/internal/adapter/stripecheckout"
	"github.com/kaiunruh/coffee-cart/internal/logging"
	"github.com/kaiunruh/coffee-cart/internal/usecase"
)

type App struct {
	Router *gin.Engine
	Server *http.Server
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)

	// stripe: catalog + checkout sessions
	stripeClient := stripecheckout.New(stripecheckout.Options{
		SecretKey:        cfg.Stripe.SecretKey,
		CatalogPageLimit: cfg.Checkout.CatalogPageLimit,
		SuccessURL:       cfg.SuccessURL(),
		CancelURL:        cfg.CancelURL(),
		AllowedCountries: cfg.Checkout.AllowedCountries,
	})

	// fcm: completed-payment notifications
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	notifier, err := push.NewFCMNotifier(ctx, cfg.Push.CredentialsFile, cfg.Push.ProjectID, cfg.Push.DeviceToken)
	if err != nil {
		return nil, nil, err
	}

	// use cases
	listUC := usecase.NewListProducts(stripeClient)
	createUC := usecase.NewCreateCheckout(stripeClient)
	completedUC := usecase.NewHandleCompletedPayment(notifier, cfg.Push.Title)

	// handlers + router + middleware
	ph := apihttp.NewProductHandler(listUC)
	ch := apihttp.NewCheckoutHandler(createUC)
	wh := apihttp.NewWebhookHandler(completedUC)
	sv := middleware.NewStripeVerify(cfg.Stripe.WebhookSecret)
	router := apihttp.NewRouter(ph, ch, wh, sv, "./web/static")

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	cleanup := func() {}
	return &App{Router: router, Server: srv}, cleanup, nil
}
