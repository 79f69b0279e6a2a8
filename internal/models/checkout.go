package models

import "encoding/json"

// Checkout is the webhook payload Shopify sends on checkout creation.
// Only the fields this service forwards are declared; addresses are kept
// as raw JSON and passed through verbatim.
type Checkout struct {
	Token           string             `json:"token"`
	Email           string             `json:"email"`
	Customer        *Customer          `json:"customer,omitempty"`
	ShippingAddress json.RawMessage    `json:"shipping_address,omitempty"`
	BillingAddress  json.RawMessage    `json:"billing_address,omitempty"`
	LineItems       []CheckoutLineItem `json:"line_items"`
}

// Customer carries the customer reference from a checkout.
// Only the ID is ever forwarded downstream.
type Customer struct {
	ID int64 `json:"id"`
}

// CheckoutLineItem is one variant-based line in an inbound checkout.
type CheckoutLineItem struct {
	VariantID  int64      `json:"variant_id"`
	Quantity   int        `json:"quantity"`
	Properties []Property `json:"properties,omitempty"`
}

// Property is an arbitrary name/value attribute attached by the storefront
// (e.g. an engraving text or material choice). Order-preserving, never
// validated or transformed.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
