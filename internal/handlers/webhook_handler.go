package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/ecomlabs/checkout-bridge/internal/models"
	"github.com/ecomlabs/checkout-bridge/internal/service"
	"github.com/ecomlabs/checkout-bridge/internal/webhook"
)

// ShopifyHmacHeader carries the base64 HMAC-SHA256 signature Shopify
// computes over the raw request body.
const ShopifyHmacHeader = "X-Shopify-Hmac-Sha256"

// WebhookHandler receives checkout-creation webhooks: verify the signature,
// acknowledge immediately, then forward to the Admin API out of band.
type WebhookHandler struct {
	forwarder *service.Forwarder
	secret    string
	log       *slog.Logger
}

// NewWebhookHandler creates a webhook handler. An empty secret disables
// signature verification.
func NewWebhookHandler(forwarder *service.Forwarder, secret string, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		forwarder: forwarder,
		secret:    secret,
		log:       log,
	}
}

// CheckoutCreate handles POST /webhooks/checkout/create
func (h *WebhookHandler) CheckoutCreate(w http.ResponseWriter, r *http.Request) {
	// Capture the raw bytes before any JSON parsing. The signature was
	// computed over exactly these bytes; a re-serialized body is not
	// guaranteed byte-identical.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error("failed to read webhook body", "error", err)
		WriteError(w, http.StatusBadRequest, "Failed to read request body", h.log)
		return
	}

	if h.secret != "" {
		if !webhook.Verify(body, r.Header.Get(ShopifyHmacHeader), h.secret) {
			h.log.Warn("rejected webhook with invalid signature", "remote_addr", r.RemoteAddr)
			WriteError(w, http.StatusUnauthorized, "Invalid webhook signature", h.log)
			return
		}
	}

	var checkout models.Checkout
	if err := json.Unmarshal(body, &checkout); err != nil {
		h.log.Error("failed to decode checkout payload", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid checkout payload", h.log)
		return
	}

	// Acknowledge before forwarding. Shopify treats slow responses as
	// delivery failures and retries on its own schedule; it must never
	// wait on, or observe, the downstream call.
	WriteText(w, http.StatusOK, "Webhook received", h.log)

	attemptID := h.forwarder.ForwardAsync(checkout)
	h.log.Info("checkout webhook accepted",
		"checkout_token", checkout.Token,
		"line_items", len(checkout.LineItems),
		"attempt_id", attemptID,
	)
}
