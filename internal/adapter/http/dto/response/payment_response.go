package response

import (
	"time"

	"ipay_billing/internal/domain/entities"
	"ipay_billing/internal/usecase"
)

type PaymentRecordResponse struct {
	ID          string         `json:"id"`
	Operation   string         `json:"operation"`
	ShopOrderID string         `json:"shop_order_id,omitempty"`
	OrderID     string         `json:"order_id,omitempty"`
	Intent      string         `json:"intent,omitempty"`
	AmountMinor int64          `json:"amount"`
	Currency    string         `json:"currency,omitempty"`
	Status      string         `json:"status"`
	RedirectURL string         `json:"redirect_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	Gateway     map[string]any `json:"gateway,omitempty"`
}

// PaymentResultResponse is returned by checkout, repeat and refund.
// GatewayStatus is the status iPay answered with.
type PaymentResultResponse struct {
	Record        PaymentRecordResponse `json:"record"`
	RedirectURL   string                `json:"redirect_url,omitempty"`
	GatewayStatus int                   `json:"gateway_status"`
	SoftError     bool                  `json:"soft_error"`
	Gateway       map[string]any        `json:"gateway"`
}

func FromPaymentRecord(r entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:          r.ID,
		Operation:   string(r.Operation),
		ShopOrderID: r.ShopOrderID,
		OrderID:     r.OrderID,
		Intent:      string(r.Intent),
		AmountMinor: r.AmountMinor,
		Currency:    string(r.Currency),
		Status:      string(r.Status),
		RedirectURL: r.RedirectURL,
		CreatedAt:   r.CreatedAt,
		Gateway:     r.Response,
	}
}

func FromPaymentRecords(recs []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromPaymentRecord(r))
	}
	return out
}

func FromPaymentResult(res usecase.PaymentResult) PaymentResultResponse {
	out := PaymentResultResponse{
		Record:      FromPaymentRecord(res.Record),
		RedirectURL: res.Record.RedirectURL,
		Gateway:     map[string]any{},
	}
	// the body is already carried at the top level
	out.Record.Gateway = nil
	if res.Response != nil {
		out.GatewayStatus = res.Response.StatusCode
		out.SoftError = res.Response.IsSoftError()
		if res.Response.Body != nil {
			out.Gateway = res.Response.Body
		}
	}
	return out
}
