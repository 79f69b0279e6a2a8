package models

import "encoding/json"

// DraftOrderLineItem is one line of an outbound draft order. Exactly one of
// two shapes is valid: variant-based (VariantID+Quantity) or custom
// (Title+Price+Quantity). The omitempty tags keep the unused shape's fields
// off the wire.
type DraftOrderLineItem struct {
	VariantID  int64      `json:"variant_id,omitempty"`
	Title      string     `json:"title,omitempty"`
	Price      string     `json:"price,omitempty"`
	Taxable    *bool      `json:"taxable,omitempty"`
	Quantity   int        `json:"quantity"`
	Properties []Property `json:"properties"`
}

// DraftOrderInput is the draft_order object sent to the Admin API.
type DraftOrderInput struct {
	LineItems                 []DraftOrderLineItem `json:"line_items"`
	Customer                  *Customer            `json:"customer,omitempty"`
	Email                     string               `json:"email,omitempty"`
	ShippingAddress           json.RawMessage      `json:"shipping_address,omitempty"`
	BillingAddress            json.RawMessage      `json:"billing_address,omitempty"`
	Note                      string               `json:"note,omitempty"`
	Tags                      string               `json:"tags,omitempty"`
	UseCustomerDefaultAddress bool                 `json:"use_customer_default_address,omitempty"`
}

// DraftOrder is the Admin API's representation of a created draft order.
// Line items are declared so the custom-item append flow can round-trip them.
type DraftOrder struct {
	ID             int64                `json:"id"`
	Status         string               `json:"status,omitempty"`
	InvoiceURL     string               `json:"invoice_url,omitempty"`
	OrderStatusURL string               `json:"order_status_url,omitempty"`
	LineItems      []DraftOrderLineItem `json:"line_items,omitempty"`
}
