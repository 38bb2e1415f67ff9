package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/kaiunruh/coffee-cart/cmd/storefront-api/app"
	"github.com/kaiunruh/coffee-cart/configs"
)

func main() {
	env := os.Getenv("APP_ENV") // dev | staging | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	a, cleanup, err := app.InitWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	log.Printf("%s (%s) listening on %s", cfg.App.Name, env, cfg.App.HTTPAddr)
	if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
