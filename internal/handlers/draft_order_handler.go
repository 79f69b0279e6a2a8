package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecomlabs/checkout-bridge/internal/config"
	"github.com/ecomlabs/checkout-bridge/internal/models"
	"github.com/ecomlabs/checkout-bridge/internal/shopify"
	"github.com/go-chi/chi/v5"
)

// ManualDraftOrderTags labels draft orders created through the admin
// endpoint rather than the webhook flow.
const ManualDraftOrderTags = "custom-properties"

// DraftOrderClient is the slice of the Admin API the draft-order handlers use.
type DraftOrderClient interface {
	CreateDraftOrder(ctx context.Context, input models.DraftOrderInput) (*models.DraftOrder, error)
	GetDraftOrder(ctx context.Context, id int64) (*models.DraftOrder, error)
	UpdateDraftOrder(ctx context.Context, id int64, input models.DraftOrderInput) (*models.DraftOrder, error)
}

// DraftOrderHandler serves the manual draft-order endpoints.
type DraftOrderHandler struct {
	client DraftOrderClient
	cfg    config.ManualConfig
	log    *slog.Logger
}

// NewDraftOrderHandler creates a new draft order handler
func NewDraftOrderHandler(client DraftOrderClient, cfg config.ManualConfig, log *slog.Logger) *DraftOrderHandler {
	return &DraftOrderHandler{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

// manualDraftOrderRequest is the body of POST /api/draft-orders.
type manualDraftOrderRequest struct {
	LineItems       []models.DraftOrderLineItem `json:"lineItems"`
	CustomItems     []customItem                `json:"customItems"`
	Customer        *models.Customer            `json:"customer"`
	Email           string                      `json:"email"`
	ShippingAddress json.RawMessage             `json:"shippingAddress"`
	BillingAddress  json.RawMessage             `json:"billingAddress"`
	Note            string                      `json:"note"`
}

// customItem is an ad hoc line without a catalog variant.
type customItem struct {
	Title      string            `json:"title"`
	Price      string            `json:"price"`
	Quantity   int               `json:"quantity"`
	Taxable    *bool             `json:"taxable"`
	Properties []models.Property `json:"properties"`
}

// toLineItem applies the custom-item defaults: quantity 1, taxable true,
// empty properties.
func (c customItem) toLineItem() models.DraftOrderLineItem {
	quantity := c.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	taxable := true
	if c.Taxable != nil {
		taxable = *c.Taxable
	}

	props := c.Properties
	if props == nil {
		props = []models.Property{}
	}

	return models.DraftOrderLineItem{
		Title:      c.Title,
		Price:      c.Price,
		Quantity:   quantity,
		Taxable:    &taxable,
		Properties: props,
	}
}

// CreateDraftOrder handles POST /api/draft-orders
func (h *DraftOrderHandler) CreateDraftOrder(w http.ResponseWriter, r *http.Request) {
	var req manualDraftOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode draft order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if len(req.CustomItems) > 0 && !h.cfg.AllowCustomItems {
		WriteError(w, http.StatusBadRequest, "Custom items are not enabled", h.log)
		return
	}

	lineItems := make([]models.DraftOrderLineItem, 0, len(req.LineItems)+len(req.CustomItems))
	for _, item := range req.LineItems {
		if item.Properties == nil {
			item.Properties = []models.Property{}
		}
		lineItems = append(lineItems, item)
	}
	for _, item := range req.CustomItems {
		lineItems = append(lineItems, item.toLineItem())
	}

	if len(lineItems) == 0 {
		WriteError(w, http.StatusBadRequest, "No cart items provided", h.log)
		return
	}

	note := req.Note
	if note == "" {
		note = "Manual draft order creation"
	}

	input := models.DraftOrderInput{
		LineItems:       lineItems,
		Customer:        req.Customer,
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Note:            note,
		Tags:            ManualDraftOrderTags,
	}

	draftOrder, err := h.client.CreateDraftOrder(r.Context(), input)
	if err != nil {
		h.writeClientError(w, err, "Failed to create draft order")
		return
	}

	resp := map[string]interface{}{
		"success":        true,
		"draft_order_id": draftOrder.ID,
	}
	if h.cfg.ResponseURLs == config.ResponseURLsInvoice || h.cfg.ResponseURLs == config.ResponseURLsBoth {
		resp["invoice_url"] = draftOrder.InvoiceURL
	}
	if h.cfg.ResponseURLs == config.ResponseURLsStatus || h.cfg.ResponseURLs == config.ResponseURLsBoth {
		resp["order_status_url"] = draftOrder.OrderStatusURL
	}

	WriteJSON(w, http.StatusCreated, resp, h.log)
	h.log.Info("draft order created manually",
		"draft_order_id", draftOrder.ID,
		"line_items", len(lineItems),
	)
}

// AddCustomItem handles POST /api/draft-orders/{draftOrderID}/custom-items
func (h *DraftOrderHandler) AddCustomItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "draftOrderID"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid draft order id", h.log)
		return
	}

	var item customItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.log.Error("failed to decode custom item", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if item.Title == "" {
		WriteError(w, http.StatusBadRequest, "Custom item title is required", h.log)
		return
	}

	existing, err := h.client.GetDraftOrder(r.Context(), id)
	if err != nil {
		h.writeClientError(w, err, "Failed to fetch draft order")
		return
	}

	updated, err := h.client.UpdateDraftOrder(r.Context(), id, models.DraftOrderInput{
		LineItems: append(existing.LineItems, item.toLineItem()),
	})
	if err != nil {
		h.writeClientError(w, err, "Failed to add custom item")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"draft_order": updated}, h.log)
	h.log.Info("custom item added to draft order",
		"draft_order_id", id,
		"title", item.Title,
	)
}

// writeClientError surfaces Admin API failures: non-2xx responses pass
// through their status with the upstream body under "details"; transport
// failures become a plain 500.
func (h *DraftOrderHandler) writeClientError(w http.ResponseWriter, err error, message string) {
	var apiErr *shopify.APIError
	if errors.As(err, &apiErr) {
		h.log.Error("shopify rejected request",
			"status", apiErr.Status,
			"body", string(apiErr.Body),
		)
		details := json.RawMessage(apiErr.Body)
		if !json.Valid(details) {
			details, _ = json.Marshal(string(apiErr.Body))
		}
		WriteErrorDetails(w, apiErr.Status, message, details, h.log)
		return
	}

	h.log.Error("shopify request failed", "error", err)
	WriteError(w, http.StatusInternalServerError, message, h.log)
}
