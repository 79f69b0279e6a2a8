package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// ShopReader fetches the shop resource from the Admin API.
type ShopReader interface {
	GetShop(ctx context.Context) (json.RawMessage, error)
}

// ShopHandler passes shop info through from the Admin API.
type ShopHandler struct {
	client ShopReader
	log    *slog.Logger
}

// NewShopHandler creates a new shop handler
func NewShopHandler(client ShopReader, log *slog.Logger) *ShopHandler {
	return &ShopHandler{
		client: client,
		log:    log,
	}
}

// GetShop handles GET /api/shop
func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	shop, err := h.client.GetShop(r.Context())
	if err != nil {
		h.log.Error("failed to fetch shop", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch shop", h.log)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(shop); err != nil {
		h.log.Error("failed to write shop response", "error", err)
	}
}
