package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecomlabs/checkout-bridge/internal/config"
	"github.com/ecomlabs/checkout-bridge/internal/handlers"
	"github.com/ecomlabs/checkout-bridge/internal/middleware"
	"github.com/ecomlabs/checkout-bridge/internal/service"
	"github.com/ecomlabs/checkout-bridge/internal/shopify"
	"github.com/ecomlabs/checkout-bridge/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting checkout bridge",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"shop", cfg.Shopify.Shop,
		"api_version", cfg.Shopify.APIVersion,
		"auto_complete", cfg.Webhook.AutoComplete,
		"log_level", cfg.LogLevel,
	)

	if cfg.Webhook.Secret == "" {
		log.Warn("SHOPIFY_WEBHOOK_SECRET is not set, webhook signature verification is disabled")
	}

	// Initialize the Admin API client and the forwarding pipeline
	client := shopify.NewClient(cfg.Shopify.Shop, cfg.Shopify.AccessToken, cfg.Shopify.APIVersion, cfg.Shopify.Timeout)
	forwarder := service.NewForwarder(client, cfg.Webhook.AutoComplete, cfg.Webhook.ForwardTimeout, log, nil)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	webhookHandler := handlers.NewWebhookHandler(forwarder, cfg.Webhook.Secret, log)
	draftOrderHandler := handlers.NewDraftOrderHandler(client, cfg.Manual, log)
	shopHandler := handlers.NewShopHandler(client, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Shopify-Hmac-Sha256", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// Webhook endpoint, authenticated by HMAC signature
	r.Post("/webhooks/checkout/create", webhookHandler.CheckoutCreate)

	// Admin API routes, optionally guarded by API key
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth))

		r.Get("/shop", shopHandler.GetShop)

		r.Post("/draft-orders", draftOrderHandler.CreateDraftOrder)
		r.Post("/draft-orders/{draftOrderID}/custom-items", draftOrderHandler.AddCustomItem)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout. Forwards already detached from
	// their requests may be abandoned here.
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
