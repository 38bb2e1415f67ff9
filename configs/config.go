package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Stripe struct {
		SecretKey     string `koanf:"secret_key"`
		WebhookSecret string `koanf:"webhook_secret"`
	} `koanf:"stripe"`

	Checkout struct {
		// BaseURL is the public origin the success/cancel pages live on,
		// e.g. https://shop.example.com (no trailing slash).
		BaseURL          string   `koanf:"base_url"`
		AllowedCountries []string `koanf:"allowed_countries"`
		CatalogPageLimit int64    `koanf:"catalog_page_limit"`
	} `koanf:"checkout"`

	Push struct {
		CredentialsFile string `koanf:"credentials_file"`
		ProjectID       string `koanf:"project_id"`
		DeviceToken     string `koanf:"device_token"`
		Title           string `koanf:"title"`
	} `koanf:"push"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix COFFEEAPI_, nested with __)
	// e.g. COFFEEAPI_STRIPE__SECRET_KEY, COFFEEAPI_PUSH__DEVICE_TOKEN
	if err := k.Load(env.Provider("COFFEEAPI_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "COFFEEAPI_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("stripe.secret_key required")
	}
	if c.Stripe.WebhookSecret == "" {
		return fmt.Errorf("stripe.webhook_secret required")
	}
	if c.Checkout.BaseURL == "" {
		return fmt.Errorf("checkout.base_url required")
	}
	if strings.HasSuffix(c.Checkout.BaseURL, "/") {
		return fmt.Errorf("checkout.base_url must not end with /")
	}
	if c.Push.DeviceToken == "" {
		return fmt.Errorf("push.device_token required")
	}
	return nil
}

// SuccessURL and CancelURL are the redirect targets handed to the payment
// provider when a session is created.
func (c Config) SuccessURL() string { return c.Checkout.BaseURL + "/success" }
func (c Config) CancelURL() string  { return c.Checkout.BaseURL + "/cancel" }
