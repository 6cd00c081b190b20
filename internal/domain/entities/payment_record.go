package entities

import (
	"encoding/json"
	"time"
)

type PaymentOperation string

const (
	PaymentOperationCheckout PaymentOperation = "checkout"
	PaymentOperationRepeat   PaymentOperation = "repeat"
	PaymentOperationRefund   PaymentOperation = "refund"
)

type PaymentRecordStatus string

const (
	PaymentRecordStatusCreated  PaymentRecordStatus = "created"
	PaymentRecordStatusRefunded PaymentRecordStatus = "refunded"
	PaymentRecordStatusRejected PaymentRecordStatus = "rejected"
)

// PaymentRecord keeps one iPay round trip for traceability.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shop_order_id-index): shop_order_id
//
// ResponseRaw keeps the iPay body as received; Response is the parsed form.
type PaymentRecord struct {
	ID          string              `json:"id"`
	Operation   PaymentOperation    `json:"operation"`
	ShopOrderID string              `json:"shop_order_id"`
	OrderID     string              `json:"order_id,omitempty"`
	Intent      Intent              `json:"intent,omitempty"`
	AmountMinor int64               `json:"amount_minor"`
	Currency    Currency            `json:"currency,omitempty"`
	Status      PaymentRecordStatus `json:"status"`
	RedirectURL string              `json:"redirect_url,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`

	ResponseRaw json.RawMessage `json:"response_raw,omitempty"`
	Response    map[string]any  `json:"response,omitempty"`
}
