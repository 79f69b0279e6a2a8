// Package shopify is a minimal Admin API client covering the draft-order
// lifecycle this service needs. One attempt per call; retries are the
// caller's decision.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ecomlabs/checkout-bridge/internal/models"
)

// APIError is a non-2xx response from the Admin API. Status and Body are
// kept verbatim for diagnostic surfacing.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopify api error: status %d: %s", e.Status, e.Body)
}

// Client issues requests against a single shop's Admin API.
type Client struct {
	baseURL     string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
}

// NewClient creates an Admin API client for the given shop domain
// (e.g. example.myshopify.com) and access token.
func NewClient(shop, accessToken, apiVersion string, timeout time.Duration) *Client {
	return NewClientWithBaseURL("https://"+shop, accessToken, apiVersion, timeout)
}

// NewClientWithBaseURL is like NewClient but takes a full base URL instead
// of a shop domain, so tests can point the client at a local stub server.
func NewClientWithBaseURL(baseURL, accessToken, apiVersion string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		apiVersion:  apiVersion,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// The Admin API wraps draft order payloads in both directions:
// {"draft_order": {...}}.
type draftOrderRequest struct {
	DraftOrder models.DraftOrderInput `json:"draft_order"`
}

type draftOrderResponse struct {
	DraftOrder models.DraftOrder `json:"draft_order"`
}

// CreateDraftOrder creates a new draft order.
func (c *Client) CreateDraftOrder(ctx context.Context, input models.DraftOrderInput) (*models.DraftOrder, error) {
	var out draftOrderResponse
	err := c.do(ctx, http.MethodPost, "draft_orders.json", draftOrderRequest{DraftOrder: input}, &out)
	if err != nil {
		return nil, err
	}
	return &out.DraftOrder, nil
}

// GetDraftOrder fetches an existing draft order by id.
func (c *Client) GetDraftOrder(ctx context.Context, id int64) (*models.DraftOrder, error) {
	var out draftOrderResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("draft_orders/%d.json", id), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out.DraftOrder, nil
}

// UpdateDraftOrder replaces the line items of an existing draft order.
func (c *Client) UpdateDraftOrder(ctx context.Context, id int64, input models.DraftOrderInput) (*models.DraftOrder, error) {
	var out draftOrderResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("draft_orders/%d.json", id), draftOrderRequest{DraftOrder: input}, &out)
	if err != nil {
		return nil, err
	}
	return &out.DraftOrder, nil
}

// CompleteDraftOrder converts a draft order into a real order.
func (c *Client) CompleteDraftOrder(ctx context.Context, id int64) (*models.DraftOrder, error) {
	var out draftOrderResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("draft_orders/%d/complete.json", id), struct{}{}, &out)
	if err != nil {
		return nil, err
	}
	return &out.DraftOrder, nil
}

// GetShop fetches the shop resource and returns it as raw JSON for
// passthrough responses.
func (c *Client) GetShop(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodGet, "shop.json", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do executes one Admin API call. A non-2xx response becomes *APIError
// carrying the upstream status and body verbatim; transport-level failures
// are returned wrapped, with no status attached.
func (c *Client) do(ctx context.Context, method, path string, payload, result any) error {
	url := fmt.Sprintf("%s/admin/api/%s/%s", c.baseURL, c.apiVersion, path)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shopify request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: respBody}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
