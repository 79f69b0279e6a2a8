package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Valid values for ManualConfig.ResponseURLs.
const (
	ResponseURLsInvoice = "invoice"
	ResponseURLsStatus  = "status"
	ResponseURLsBoth    = "both"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Shopify  ShopifyConfig
	Webhook  WebhookConfig
	Manual   ManualConfig
	Auth     AuthConfig
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

type ServerConfig struct {
	Port            string `env:"PORT, default=8080"`
	Host            string `env:"HOST, default=0.0.0.0"`
	ReadTimeout     int    `env:"READ_TIMEOUT, default=15"`
	WriteTimeout    int    `env:"WRITE_TIMEOUT, default=15"`
	ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT, default=30"`
}

// ShopifyConfig identifies the shop and credential used for Admin API calls.
// Shop and API version are deployment-time configuration, not runtime parameters.
type ShopifyConfig struct {
	Shop        string        `env:"SHOP"`
	AccessToken string        `env:"ACCESS_TOKEN"`
	APIVersion  string        `env:"SHOPIFY_API_VERSION, default=2025-10"`
	Timeout     time.Duration `env:"SHOPIFY_TIMEOUT, default=15s"`
}

type WebhookConfig struct {
	// Secret is the shared webhook secret. When unset, signature
	// verification is skipped entirely (explicit opt-out for local
	// development, logged at startup).
	Secret       string `env:"SHOPIFY_WEBHOOK_SECRET"`
	AutoComplete bool   `env:"AUTO_COMPLETE_DRAFT_ORDER, default=false"`
	// ForwardTimeout bounds the whole post-acknowledgment tail (create plus
	// optional complete), which runs unattended after the 200 is sent.
	ForwardTimeout time.Duration `env:"FORWARD_TIMEOUT, default=30s"`
}

// ManualConfig holds the variation points of the manual draft-order endpoint.
type ManualConfig struct {
	// ResponseURLs selects which draft-order URLs the 201 response carries:
	// "invoice", "status", or "both".
	ResponseURLs string `env:"MANUAL_RESPONSE_URLS, default=both"`
	// AllowCustomItems enables merging ad hoc title/price items into the
	// outbound line items. When disabled, requests carrying customItems
	// are rejected.
	AllowCustomItems bool `env:"MANUAL_ALLOW_CUSTOM_ITEMS, default=true"`
}

type AuthConfig struct {
	// APIKeys guards the /api routes when non-empty. Empty (the default)
	// leaves them open.
	APIKeys []string `env:"API_KEYS"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Shopify.Shop == "" {
		return fmt.Errorf("SHOP is required (e.g. example.myshopify.com)")
	}

	if c.Shopify.AccessToken == "" {
		return fmt.Errorf("ACCESS_TOKEN is required")
	}

	if c.Shopify.Timeout <= 0 {
		return fmt.Errorf("SHOPIFY_TIMEOUT must be positive")
	}

	if c.Webhook.ForwardTimeout <= 0 {
		return fmt.Errorf("FORWARD_TIMEOUT must be positive")
	}

	switch c.Manual.ResponseURLs {
	case ResponseURLsInvoice, ResponseURLsStatus, ResponseURLsBoth:
	default:
		return fmt.Errorf("invalid MANUAL_RESPONSE_URLS: %s (must be invoice, status, or both)", c.Manual.ResponseURLs)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
