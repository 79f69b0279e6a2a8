package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecomlabs/checkout-bridge/internal/models"
	"github.com/ecomlabs/checkout-bridge/pkg/logger"
)

// fakeAPI records calls and returns canned responses.
type fakeAPI struct {
	created   []models.DraftOrderInput
	completed []int64
	createErr error
	complErr  error
}

func (f *fakeAPI) CreateDraftOrder(ctx context.Context, input models.DraftOrderInput) (*models.DraftOrder, error) {
	f.created = append(f.created, input)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.DraftOrder{ID: 55, Status: "open", InvoiceURL: "https://shop/invoices/55"}, nil
}

func (f *fakeAPI) CompleteDraftOrder(ctx context.Context, id int64) (*models.DraftOrder, error) {
	f.completed = append(f.completed, id)
	if f.complErr != nil {
		return nil, f.complErr
	}
	return &models.DraftOrder{ID: id, Status: "completed"}, nil
}

func testCheckout() models.Checkout {
	return models.Checkout{
		Token: "abc123",
		Email: "a@b.com",
		LineItems: []models.CheckoutLineItem{
			{VariantID: 111, Quantity: 2},
		},
	}
}

func TestForward(t *testing.T) {
	api := &fakeAPI{}
	f := NewForwarder(api, false, time.Second, logger.New("error"), nil)

	do, err := f.Forward(context.Background(), testCheckout())
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if do.ID != 55 {
		t.Errorf("draft order id = %d, want 55", do.ID)
	}
	if len(api.created) != 1 {
		t.Fatalf("create called %d times, want 1", len(api.created))
	}
	if len(api.completed) != 0 {
		t.Errorf("complete called without auto-complete enabled")
	}
}

func TestForwardAutoComplete(t *testing.T) {
	api := &fakeAPI{}
	f := NewForwarder(api, true, time.Second, logger.New("error"), nil)

	do, err := f.Forward(context.Background(), testCheckout())
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if do.Status != "completed" {
		t.Errorf("status = %s, want completed", do.Status)
	}
	if len(api.completed) != 1 || api.completed[0] != 55 {
		t.Errorf("complete calls = %v, want [55]", api.completed)
	}
}

func TestForwardCreateError(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("boom")}
	f := NewForwarder(api, true, time.Second, logger.New("error"), nil)

	_, err := f.Forward(context.Background(), testCheckout())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(api.completed) != 0 {
		t.Error("complete must not run when create fails")
	}
}

func TestForwardAsyncReportsToSink(t *testing.T) {
	api := &fakeAPI{}
	results := make(chan ForwardResult, 1)
	f := NewForwarder(api, false, time.Second, logger.New("error"), func(res ForwardResult) {
		results <- res
	})

	attemptID := f.ForwardAsync(testCheckout())
	if attemptID == "" {
		t.Fatal("expected a non-empty attempt id")
	}

	select {
	case res := <-results:
		if res.AttemptID != attemptID {
			t.Errorf("attempt id = %s, want %s", res.AttemptID, attemptID)
		}
		if res.CheckoutToken != "abc123" {
			t.Errorf("checkout token = %s", res.CheckoutToken)
		}
		if res.Err != nil {
			t.Errorf("unexpected error: %v", res.Err)
		}
		if res.DraftOrder == nil || res.DraftOrder.ID != 55 {
			t.Errorf("draft order = %+v", res.DraftOrder)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("forwarding result never reached the sink")
	}
}

func TestForwardAsyncFailureOnlyReachesSink(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("upstream down")}
	results := make(chan ForwardResult, 1)
	f := NewForwarder(api, false, time.Second, logger.New("error"), func(res ForwardResult) {
		results <- res
	})

	f.ForwardAsync(testCheckout())

	select {
	case res := <-results:
		if res.Err == nil {
			t.Error("expected forwarding error in result")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("forwarding result never reached the sink")
	}
}
