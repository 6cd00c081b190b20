package interfaces

import (
	"context"

	"ipay_billing/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// IPaymentGateway abstracts the iPay REST API.
//
// Every call returns one of three outcomes: a success response, a soft error
// response (Kind == ResponseSoftError, not a Go error) or a hard
// *entities.GatewayError. An empty token makes the gateway fetch a new one.
type IPaymentGateway interface {
	BuildCheckout(p entities.CheckoutParams) entities.CheckoutRequest
	Execute(ctx context.Context, req entities.CheckoutRequest, token string) (*entities.GatewayResponse, error)
	Repeat(ctx context.Context, transactionID string, p entities.CheckoutParams) (*entities.GatewayResponse, error)
	Refund(ctx context.Context, orderID string, amountMinor int64, token string) (*entities.GatewayResponse, error)
	OrderDetails(ctx context.Context, orderID, token string) (*entities.GatewayResponse, error)
	OrderStatus(ctx context.Context, orderID, token string) (*entities.GatewayResponse, error)
	PaymentDetails(ctx context.Context, orderID, token string) (*entities.GatewayResponse, error)
	CompletePreAuth(ctx context.Context, orderID, token string) (*entities.GatewayResponse, error)
}
