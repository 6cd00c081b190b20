package ipay

import (
	"context"

	"ipay_billing/internal/domain/entities"
	"ipay_billing/internal/usecase/interfaces"
)

var _ interfaces.IPaymentGateway = (*Client)(nil)

// BuildCheckout applies the configured redirect url and locale.
func (c *Client) BuildCheckout(p entities.CheckoutParams) entities.CheckoutRequest {
	return p.Build(c.cfg.PaymentRedirectURL(), c.cfg.Locale)
}

// Execute sends a built checkout request to POST /checkout/orders.
func (c *Client) Execute(ctx context.Context, req entities.CheckoutRequest, token string) (*entities.GatewayResponse, error) {
	return c.post(ctx, opCheckout, c.endpoint("/checkout/orders"), req.Normalize(), token, "", EncodingJSON)
}

func (c *Client) Checkout(ctx context.Context, p entities.CheckoutParams) (*entities.GatewayResponse, error) {
	return c.Execute(ctx, c.BuildCheckout(p), p.Token)
}

// Repeat charges a previously saved card: a checkout carrying the original
// transaction id as card_transaction_id.
func (c *Client) Repeat(ctx context.Context, transactionID string, p entities.CheckoutParams) (*entities.GatewayResponse, error) {
	p.CardTransactionID = transactionID
	return c.Checkout(ctx, p)
}

func (c *Client) Refund(ctx context.Context, orderID string, amountMinor int64, token string) (*entities.GatewayResponse, error) {
	body := entities.RefundRequest{
		OrderID: orderID,
		Amount:  entities.MinorToMajor(amountMinor),
	}
	return c.post(ctx, opRefund, c.endpoint("/checkout/refund"), body, token, "", EncodingJSON)
}

func (c *Client) OrderDetails(ctx context.Context, orderID, token string) (*entities.GatewayResponse, error) {
	return c.get(ctx, opOrderDetails, c.endpoint("/checkout/orders", orderID), token)
}

func (c *Client) OrderStatus(ctx context.Context, orderID, token string) (*entities.GatewayResponse, error) {
	return c.get(ctx, opOrderStatus, c.endpoint("/checkout/orders/status", orderID), token)
}

func (c *Client) PaymentDetails(ctx context.Context, orderID, token string) (*entities.GatewayResponse, error) {
	return c.get(ctx, opPaymentDetails, c.endpoint("/checkout/payment", orderID), token)
}

func (c *Client) CompletePreAuth(ctx context.Context, orderID, token string) (*entities.GatewayResponse, error) {
	return c.get(ctx, opCompletePreAuth, c.endpoint("/checkout/payment/pre-auth/complete", orderID), token)
}

// RedirectURL resolves the payment page link (rel approve when rel is empty).
func RedirectURL(resp *entities.GatewayResponse, rel string) (string, bool) {
	return entities.ExtractLink(resp, rel)
}
