package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecomlabs/checkout-bridge/internal/models"
	"github.com/google/uuid"
)

// DraftOrderAPI is the slice of the Admin API the forwarder needs.
type DraftOrderAPI interface {
	CreateDraftOrder(ctx context.Context, input models.DraftOrderInput) (*models.DraftOrder, error)
	CompleteDraftOrder(ctx context.Context, id int64) (*models.DraftOrder, error)
}

// ForwardResult is the outcome of one forwarding attempt. On the webhook
// path it is delivered to the result sink only; the original caller has
// already been acknowledged and never sees it.
type ForwardResult struct {
	AttemptID     string
	CheckoutToken string
	DraftOrder    *models.DraftOrder
	Err           error
}

// ResultSink observes completed forwarding attempts.
type ResultSink func(ForwardResult)

// Forwarder runs the post-acknowledgment tail of the webhook flow:
// map the checkout, create the draft order, optionally complete it.
type Forwarder struct {
	api          DraftOrderAPI
	autoComplete bool
	timeout      time.Duration
	log          *slog.Logger
	sink         ResultSink
}

// NewForwarder creates a forwarder. sink may be nil, in which case results
// are only logged.
func NewForwarder(api DraftOrderAPI, autoComplete bool, timeout time.Duration, log *slog.Logger, sink ResultSink) *Forwarder {
	f := &Forwarder{
		api:          api,
		autoComplete: autoComplete,
		timeout:      timeout,
		log:          log,
	}
	f.sink = sink
	if f.sink == nil {
		f.sink = f.logResult
	}
	return f
}

// Forward maps the checkout and creates the draft order, completing it when
// auto-complete is enabled. Single attempt; errors are returned, not retried.
func (f *Forwarder) Forward(ctx context.Context, checkout models.Checkout) (*models.DraftOrder, error) {
	input := MapCheckout(checkout)

	draftOrder, err := f.api.CreateDraftOrder(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft order: %w", err)
	}

	if f.autoComplete {
		completed, err := f.api.CompleteDraftOrder(ctx, draftOrder.ID)
		if err != nil {
			return draftOrder, fmt.Errorf("failed to complete draft order %d: %w", draftOrder.ID, err)
		}
		return completed, nil
	}

	return draftOrder, nil
}

// ForwardAsync runs Forward on a detached goroutine with its own timeout
// context and reports the outcome to the result sink. It returns the
// attempt id immediately; the caller is not kept waiting and cannot
// observe the outcome. There is no cancellation path once started.
func (f *Forwarder) ForwardAsync(checkout models.Checkout) string {
	attemptID := uuid.New().String()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		defer cancel()

		draftOrder, err := f.Forward(ctx, checkout)
		f.sink(ForwardResult{
			AttemptID:     attemptID,
			CheckoutToken: checkout.Token,
			DraftOrder:    draftOrder,
			Err:           err,
		})
	}()

	return attemptID
}

// logResult is the default sink: forwarding outcomes are observable only
// through logs.
func (f *Forwarder) logResult(res ForwardResult) {
	if res.Err != nil {
		f.log.Error("checkout forwarding failed",
			"attempt_id", res.AttemptID,
			"checkout_token", res.CheckoutToken,
			"error", res.Err,
		)
		return
	}

	f.log.Info("draft order created from checkout",
		"attempt_id", res.AttemptID,
		"checkout_token", res.CheckoutToken,
		"draft_order_id", res.DraftOrder.ID,
		"invoice_url", res.DraftOrder.InvoiceURL,
	)
}
