package entities

// CheckoutRequest is the body of POST /checkout/orders.
type CheckoutRequest struct {
	Intent                   Intent         `json:"intent"`
	RedirectURL              string         `json:"redirect_url"`
	ShopOrderID              string         `json:"shop_order_id"`
	Locale                   string         `json:"locale"`
	ShowShopOrderIDOnExtract bool           `json:"show_shop_order_id_on_extract"`
	CaptureMethod            CaptureMethod  `json:"capture_method"`
	CardTransactionID        string         `json:"card_transaction_id,omitempty"`
	PurchaseUnits            []PurchaseUnit `json:"purchase_units"`
	Items                    []PurchaseItem `json:"items"`
}

// Normalize applies the defaults iPay expects: AUTOMATIC capture and non-nil
// purchase_units/items so both always serialize as arrays.
func (r CheckoutRequest) Normalize() CheckoutRequest {
	if r.CaptureMethod == "" {
		r.CaptureMethod = CaptureMethodAutomatic
	}
	if r.PurchaseUnits == nil {
		r.PurchaseUnits = []PurchaseUnit{}
	}
	if r.Items == nil {
		r.Items = []PurchaseItem{}
	}
	r.ShowShopOrderIDOnExtract = true
	return r
}

// RefundRequest is the body of POST /checkout/refund.
type RefundRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

// CheckoutParams describes a checkout before the configured redirect url and
// locale are applied. Build produces the wire request; sending it is a
// separate step so the exact body can be inspected or stored first.
type CheckoutParams struct {
	Intent            Intent
	ShopOrderID       string
	PurchaseUnits     []PurchaseUnit
	Items             []PurchaseItem
	Token             string
	CaptureMethod     CaptureMethod
	CardTransactionID string
}

func (p CheckoutParams) Build(redirectURL, locale string) CheckoutRequest {
	return CheckoutRequest{
		Intent:            p.Intent,
		RedirectURL:       redirectURL,
		ShopOrderID:       p.ShopOrderID,
		Locale:            locale,
		CaptureMethod:     p.CaptureMethod,
		CardTransactionID: p.CardTransactionID,
		PurchaseUnits:     p.PurchaseUnits,
		Items:             p.Items,
	}.Normalize()
}
