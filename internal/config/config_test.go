package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Shopify: ShopifyConfig{
			Shop:        "example.myshopify.com",
			AccessToken: "shpat_token",
			APIVersion:  "2025-10",
			Timeout:     15 * time.Second,
		},
		Webhook: WebhookConfig{
			ForwardTimeout: 30 * time.Second,
		},
		Manual: ManualConfig{
			ResponseURLs:     ResponseURLsBoth,
			AllowCustomItems: true,
		},
		LogLevel: "info",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing shop",
			mutate:  func(c *Config) { c.Shopify.Shop = "" },
			wantErr: true,
		},
		{
			name:    "missing access token",
			mutate:  func(c *Config) { c.Shopify.AccessToken = "" },
			wantErr: true,
		},
		{
			name:    "bad response urls",
			mutate:  func(c *Config) { c.Manual.ResponseURLs = "everything" },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "zero forward timeout",
			mutate:  func(c *Config) { c.Webhook.ForwardTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "no webhook secret is allowed",
			mutate:  func(c *Config) { c.Webhook.Secret = "" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
