package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

var ErrMissingChapaSecretKey = errors.New("missing CHAPA_SECRET_KEY")

// Chapa holds the payment-processor credentials and URLs. It is loaded once at
// startup and handed to the gateway constructor; nothing else reads these
// environment variables.
type Chapa struct {
	SecretKey     string
	WebhookSecret string
	BaseURL       string
	Currency      string
	Timeout       time.Duration

	// CallbackURL receives webhook deliveries; SuccessURL/CancelURL are the
	// buyer-facing redirects appended with the course id.
	CallbackURL string
	SuccessURL  string
	CancelURL   string

	MockMode bool
}

type Config struct {
	Chapa Chapa
}

// Load reads the process configuration from the environment.
//
// Supported env vars:
//   - CHAPA_SECRET_KEY (required unless mock mode)
//   - CHAPA_WEBHOOK_SECRET
//   - CHAPA_BASE_URL (default: https://api.chapa.co)
//   - CHAPA_TIMEOUT_SECONDS (default: 10)
//   - PAYMENT_CURRENCY (default: NGN)
//   - PAYMENT_CALLBACK_URL, FRONTEND_BASE_URL
//   - PAYMENT_GATEWAY_MOCK / CHAPA_MOCK (truthy value enables gateway mock mode)
func Load() (Config, error) {
	frontend := getenvDefault("FRONTEND_BASE_URL", "http://localhost:5173")

	cfg := Config{
		Chapa: Chapa{
			SecretKey:     os.Getenv("CHAPA_SECRET_KEY"),
			WebhookSecret: os.Getenv("CHAPA_WEBHOOK_SECRET"),
			BaseURL:       getenvDefault("CHAPA_BASE_URL", "https://api.chapa.co"),
			Currency:      getenvDefault("PAYMENT_CURRENCY", "NGN"),
			Timeout:       time.Duration(getenvInt("CHAPA_TIMEOUT_SECONDS", 10)) * time.Second,
			CallbackURL:   getenvDefault("PAYMENT_CALLBACK_URL", "http://localhost:8080/purchase/callback"),
			SuccessURL:    frontend + "/course-progress/",
			CancelURL:     frontend + "/course-detail/",
			MockMode:      isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("CHAPA_MOCK")),
		},
	}

	if cfg.Chapa.SecretKey == "" && !cfg.Chapa.MockMode {
		return Config{}, ErrMissingChapaSecretKey
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "TRUE", "yes", "on", "mock":
		return true
	}
	return false
}
