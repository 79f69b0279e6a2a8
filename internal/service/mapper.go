package service

import (
	"fmt"

	"github.com/ecomlabs/checkout-bridge/internal/models"
)

// CheckoutTags labels draft orders created from checkout webhooks so they
// can be told apart from manually created ones in the admin.
const CheckoutTags = "custom-properties,checkout-conversion"

// MapCheckout transforms an inbound checkout into the draft order payload
// sent to the Admin API. Pure: no I/O, no side effects.
//
// Variant-based line items carry only variant_id, quantity and properties;
// price and title are intentionally dropped so the platform resolves them
// from the catalog. Only the customer id is forwarded, never the full
// customer object. Addresses pass through verbatim.
func MapCheckout(c models.Checkout) models.DraftOrderInput {
	lineItems := make([]models.DraftOrderLineItem, 0, len(c.LineItems))
	for _, item := range c.LineItems {
		props := item.Properties
		if props == nil {
			props = []models.Property{}
		}
		lineItems = append(lineItems, models.DraftOrderLineItem{
			VariantID:  item.VariantID,
			Quantity:   item.Quantity,
			Properties: props,
		})
	}

	input := models.DraftOrderInput{
		LineItems:                 lineItems,
		Email:                     c.Email,
		ShippingAddress:           c.ShippingAddress,
		BillingAddress:            c.BillingAddress,
		Note:                      fmt.Sprintf("Created from checkout %s", c.Token),
		Tags:                      CheckoutTags,
		UseCustomerDefaultAddress: true,
	}

	if c.Customer != nil {
		input.Customer = &models.Customer{ID: c.Customer.ID}
	}

	return input
}
