package request

import (
	"errors"
	"testing"

	"ipay_billing/internal/domain/entities"
)

func TestCheckoutRequest_ResolveAmount(t *testing.T) {
	r := CheckoutRequest{Amount: 1050, Items: []ItemRequest{{Amount: 1}}}
	if got, err := r.ResolveAmount(); err != nil || got != 1050 {
		t.Fatalf("explicit amount should win, got %d err=%v", got, err)
	}

	r = CheckoutRequest{Items: []ItemRequest{
		{Amount: 500, Quantity: 2},
		{Amount: 250},
		{Amount: -100, Quantity: 3},
	}}
	if got, err := r.ResolveAmount(); err != nil || got != 1250 {
		t.Fatalf("expected 1250, got %d err=%v", got, err)
	}

	if _, err := (CheckoutRequest{}).ResolveAmount(); !errors.Is(err, ErrInvalidCheckoutAmount) {
		t.Fatalf("expected ErrInvalidCheckoutAmount, got %v", err)
	}
}

func TestCheckoutRequest_ToCommand(t *testing.T) {
	r := CheckoutRequest{
		Intent:        " capture ",
		ShopOrderID:   " 42 ",
		Currency:      "usd",
		CaptureMethod: "manual",
		Items:         []ItemRequest{{ProductID: " sku-1 ", Amount: 1050, Quantity: 1, Description: "shirt"}},
	}

	cmd, err := r.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Intent != entities.IntentCapture || cmd.ShopOrderID != "42" || cmd.AmountMinor != 1050 {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.Currency != entities.CurrencyUSD || cmd.CaptureMethod != entities.CaptureMethodManual || cmd.IndustryType != "" {
		t.Fatalf("unexpected command enums: %+v", cmd)
	}
	if len(cmd.Items) != 1 || cmd.Items[0].ProductID != "sku-1" || cmd.Items[0].AmountMinor != 1050 {
		t.Fatalf("unexpected items: %+v", cmd.Items)
	}

	if _, err := (CheckoutRequest{Intent: "CAPTURE", ShopOrderID: "1"}).ToCommand(); !errors.Is(err, ErrInvalidCheckoutAmount) {
		t.Fatalf("expected ErrInvalidCheckoutAmount, got %v", err)
	}
}
