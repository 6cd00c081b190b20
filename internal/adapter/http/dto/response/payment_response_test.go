package response

import (
	"testing"
	"time"

	"ipay_billing/internal/domain/entities"
	"ipay_billing/internal/usecase"
)

func TestFromPaymentRecord(t *testing.T) {
	now := time.Now().UTC()
	rec := entities.PaymentRecord{
		ID:          "rec-1",
		Operation:   entities.PaymentOperationCheckout,
		ShopOrderID: "42",
		OrderID:     "ord-1",
		Intent:      entities.IntentCapture,
		AmountMinor: 1050,
		Currency:    entities.CurrencyGEL,
		Status:      entities.PaymentRecordStatusCreated,
		RedirectURL: "https://ipay/pay",
		CreatedAt:   now,
		Response:    map[string]any{"a": "b"},
	}

	res := FromPaymentRecord(rec)
	if res.ID != "rec-1" || res.Operation != "checkout" || res.Status != "created" || res.Intent != "CAPTURE" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.AmountMinor != 1050 || res.Currency != "GEL" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Gateway["a"] != "b" {
		t.Fatalf("unexpected gateway payload: %+v", res.Gateway)
	}

	if got := FromPaymentRecords(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", got)
	}
}

func TestFromPaymentResult(t *testing.T) {
	gw := &entities.GatewayResponse{
		Kind:       entities.ResponseSoftError,
		StatusCode: 422,
		Body:       map[string]any{"errors": map[string]any{}},
	}
	rec := entities.PaymentRecord{ID: "rec-1", RedirectURL: "https://ipay/pay", Response: map[string]any{"x": 1}}
	res := FromPaymentResult(usecase.PaymentResult{Record: rec, Response: gw})

	if res.RedirectURL != "https://ipay/pay" || res.GatewayStatus != 422 || !res.SoftError {
		t.Fatalf("unexpected result: %+v", res)
	}
	if _, ok := res.Gateway["errors"]; !ok || res.Record.Gateway != nil {
		t.Fatalf("gateway body should be carried once: %+v", res)
	}

	empty := FromPaymentResult(usecase.PaymentResult{})
	if empty.Gateway == nil || empty.SoftError {
		t.Fatalf("unexpected empty result: %+v", empty)
	}
}
