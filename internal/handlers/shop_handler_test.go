package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecomlabs/checkout-bridge/internal/shopify"
	"github.com/ecomlabs/checkout-bridge/pkg/logger"
)

func TestGetShopPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"shop":{"name":"Test Shop","domain":"example.myshopify.com"}}`))
	}))
	t.Cleanup(srv.Close)

	client := shopify.NewClientWithBaseURL(srv.URL, "token", "2025-10", 5*time.Second)
	handler := NewShopHandler(client, logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/shop", nil)
	w := httptest.NewRecorder()
	handler.GetShop(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Shop struct {
			Name string `json:"name"`
		} `json:"shop"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Shop.Name != "Test Shop" {
		t.Errorf("shop name = %q", resp.Shop.Name)
	}
}

func TestGetShopDownstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":"[API] Invalid API key or access token"}`))
	}))
	t.Cleanup(srv.Close)

	client := shopify.NewClientWithBaseURL(srv.URL, "bad-token", "2025-10", 5*time.Second)
	handler := NewShopHandler(client, logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/shop", nil)
	w := httptest.NewRecorder()
	handler.GetShop(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
