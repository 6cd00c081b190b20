package request

import (
	"errors"
	"strings"

	"ipay_billing/internal/domain/entities"
	"ipay_billing/internal/usecase"
)

var ErrInvalidCheckoutAmount = errors.New("invalid checkout amount")

// ItemRequest amounts are in minor units (tetri, cents).
type ItemRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	Amount      int64  `json:"amount"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// CheckoutRequest is the payload of POST /v1/checkout and of the repeat route.
// When amount is omitted it is derived from items (amount * quantity).
type CheckoutRequest struct {
	Intent        string        `json:"intent" binding:"required"`
	ShopOrderID   string        `json:"shop_order_id" binding:"required"`
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	IndustryType  string        `json:"industry_type"`
	CaptureMethod string        `json:"capture_method"`
	Items         []ItemRequest `json:"items"`
	Token         string        `json:"token"`
}

func (r CheckoutRequest) ResolveAmount() (int64, error) {
	if r.Amount > 0 {
		return r.Amount, nil
	}
	var total int64
	for _, it := range r.Items {
		if it.Amount <= 0 {
			continue
		}
		qty := int64(it.Quantity)
		if qty <= 0 {
			qty = 1
		}
		total += it.Amount * qty
	}
	if total > 0 {
		return total, nil
	}
	return 0, ErrInvalidCheckoutAmount
}

func (r CheckoutRequest) ToCommand() (usecase.CheckoutCommand, error) {
	amount, err := r.ResolveAmount()
	if err != nil {
		return usecase.CheckoutCommand{}, err
	}

	items := make([]usecase.ItemCommand, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.ItemCommand{
			ProductID:   strings.TrimSpace(it.ProductID),
			AmountMinor: it.Amount,
			Quantity:    it.Quantity,
			Description: it.Description,
		})
	}

	return usecase.CheckoutCommand{
		Intent:        entities.Intent(upper(r.Intent)),
		ShopOrderID:   strings.TrimSpace(r.ShopOrderID),
		AmountMinor:   amount,
		Currency:      entities.Currency(upper(r.Currency)),
		IndustryType:  entities.IndustryType(upper(r.IndustryType)),
		CaptureMethod: entities.CaptureMethod(upper(r.CaptureMethod)),
		Items:         items,
		Token:         strings.TrimSpace(r.Token),
	}, nil
}

// RefundRequest is the payload of POST /v1/refunds.
type RefundRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Amount  int64  `json:"amount" binding:"required"`
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
