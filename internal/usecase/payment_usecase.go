package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ipay_billing/internal/domain/entities"
	"ipay_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidShopOrderID    = errors.New("invalid shop_order_id")
	ErrInvalidOrderID        = errors.New("invalid order_id")
	ErrInvalidTransactionID  = errors.New("invalid transaction_id")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidIntent         = errors.New("invalid intent")
	ErrInvalidRecordID       = errors.New("invalid payment record id")
	ErrPaymentRecordNotFound = errors.New("payment record not found")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
)

// ItemCommand is a purchase item with its amount in minor units.
type ItemCommand struct {
	ProductID   string
	AmountMinor int64
	Quantity    int
	Description string
}

// CheckoutCommand carries a checkout in minor units. Empty currency, industry
// type and capture method fall back to GEL, ECOMMERCE and AUTOMATIC.
type CheckoutCommand struct {
	Intent        entities.Intent
	ShopOrderID   string
	AmountMinor   int64
	Currency      entities.Currency
	IndustryType  entities.IndustryType
	CaptureMethod entities.CaptureMethod
	Items         []ItemCommand
	Token         string
}

// PaymentResult pairs the stored record with the iPay response it came from.
// Response.Kind tells a soft error apart from a success.
type PaymentResult struct {
	Record   entities.PaymentRecord
	Response *entities.GatewayResponse
}

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

// IPaymentUseCase exposes the iPay operations to the HTTP adapter.
//
// Hard gateway failures are returned as *entities.GatewayError untouched so
// the caller can fail its own request with the same status.
type IPaymentUseCase interface {
	StartCheckout(ctx context.Context, cmd CheckoutCommand) (PaymentResult, error)
	Repeat(ctx context.Context, transactionID string, cmd CheckoutCommand) (PaymentResult, error)
	Refund(ctx context.Context, orderID string, amountMinor int64) (PaymentResult, error)
	OrderDetails(ctx context.Context, orderID string) (*entities.GatewayResponse, error)
	OrderStatus(ctx context.Context, orderID string) (*entities.GatewayResponse, error)
	PaymentDetails(ctx context.Context, orderID string) (*entities.GatewayResponse, error)
	CompletePreAuth(ctx context.Context, orderID string) (*entities.GatewayResponse, error)
	GetRecord(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByShopOrderID(ctx context.Context, shopOrderID string) ([]entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
	repo    interfaces.IPaymentRecordRepository
	now     func() time.Time
	newID   func() string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway, repo interfaces.IPaymentRecordRepository) *PaymentUseCase {
	return &PaymentUseCase{
		gateway: gateway,
		repo:    repo,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (u *PaymentUseCase) StartCheckout(ctx context.Context, cmd CheckoutCommand) (PaymentResult, error) {
	cmd.ShopOrderID = strings.TrimSpace(cmd.ShopOrderID)
	log.Printf("[payment][usecase] checkout start shop_order_id=%s intent=%s amount_minor=%d items=%d", cmd.ShopOrderID, cmd.Intent, cmd.AmountMinor, len(cmd.Items))
	if err := u.validateCheckout(cmd); err != nil {
		log.Printf("[payment][usecase] checkout invalid shop_order_id=%s err=%v", cmd.ShopOrderID, err)
		return PaymentResult{}, err
	}

	req := u.gateway.BuildCheckout(toCheckoutParams(cmd))
	resp, err := u.gateway.Execute(ctx, req, cmd.Token)
	if err != nil {
		log.Printf("[payment][usecase] checkout gateway failed shop_order_id=%s err=%v", cmd.ShopOrderID, err)
		return PaymentResult{}, err
	}

	return u.record(ctx, entities.PaymentOperationCheckout, cmd, resp)
}

func (u *PaymentUseCase) Repeat(ctx context.Context, transactionID string, cmd CheckoutCommand) (PaymentResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	cmd.ShopOrderID = strings.TrimSpace(cmd.ShopOrderID)
	log.Printf("[payment][usecase] repeat start transaction_id=%s shop_order_id=%s", transactionID, cmd.ShopOrderID)
	if transactionID == "" {
		return PaymentResult{}, ErrInvalidTransactionID
	}
	if err := u.validateCheckout(cmd); err != nil {
		log.Printf("[payment][usecase] repeat invalid shop_order_id=%s err=%v", cmd.ShopOrderID, err)
		return PaymentResult{}, err
	}

	resp, err := u.gateway.Repeat(ctx, transactionID, toCheckoutParams(cmd))
	if err != nil {
		log.Printf("[payment][usecase] repeat gateway failed transaction_id=%s err=%v", transactionID, err)
		return PaymentResult{}, err
	}

	return u.record(ctx, entities.PaymentOperationRepeat, cmd, resp)
}

func (u *PaymentUseCase) Refund(ctx context.Context, orderID string, amountMinor int64) (PaymentResult, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[payment][usecase] refund start order_id=%s amount_minor=%d", orderID, amountMinor)
	if orderID == "" {
		return PaymentResult{}, ErrInvalidOrderID
	}
	if amountMinor <= 0 {
		return PaymentResult{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return PaymentResult{}, ErrGatewayNotConfigured
	}

	resp, err := u.gateway.Refund(ctx, orderID, amountMinor, "")
	if err != nil {
		log.Printf("[payment][usecase] refund gateway failed order_id=%s err=%v", orderID, err)
		return PaymentResult{}, err
	}

	status := entities.PaymentRecordStatusRefunded
	if resp.IsSoftError() {
		status = entities.PaymentRecordStatusRejected
	}
	rec := entities.PaymentRecord{
		ID:          u.newID(),
		Operation:   entities.PaymentOperationRefund,
		OrderID:     orderID,
		AmountMinor: amountMinor,
		Status:      status,
		CreatedAt:   u.now(),
		ResponseRaw: resp.Raw,
		Response:    resp.Body,
	}
	return u.persist(ctx, rec, resp)
}

func (u *PaymentUseCase) OrderDetails(ctx context.Context, orderID string) (*entities.GatewayResponse, error) {
	return u.lookup(ctx, "order-details", orderID, interfaces.IPaymentGateway.OrderDetails)
}

func (u *PaymentUseCase) OrderStatus(ctx context.Context, orderID string) (*entities.GatewayResponse, error) {
	return u.lookup(ctx, "order-status", orderID, interfaces.IPaymentGateway.OrderStatus)
}

func (u *PaymentUseCase) PaymentDetails(ctx context.Context, orderID string) (*entities.GatewayResponse, error) {
	return u.lookup(ctx, "payment-details", orderID, interfaces.IPaymentGateway.PaymentDetails)
}

func (u *PaymentUseCase) CompletePreAuth(ctx context.Context, orderID string) (*entities.GatewayResponse, error) {
	return u.lookup(ctx, "complete-pre-auth", orderID, interfaces.IPaymentGateway.CompletePreAuth)
}

func (u *PaymentUseCase) GetRecord(ctx context.Context, id string) (entities.PaymentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRecord{}, ErrInvalidRecordID
	}
	if u.repo == nil {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if rec.ID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return rec, nil
}

func (u *PaymentUseCase) ListByShopOrderID(ctx context.Context, shopOrderID string) ([]entities.PaymentRecord, error) {
	shopOrderID = strings.TrimSpace(shopOrderID)
	if shopOrderID == "" {
		return nil, ErrInvalidShopOrderID
	}
	if u.repo == nil {
		return []entities.PaymentRecord{}, nil
	}
	return u.repo.ListByShopOrderID(ctx, shopOrderID)
}

type lookupFunc func(g interfaces.IPaymentGateway, ctx context.Context, orderID, token string) (*entities.GatewayResponse, error)

func (u *PaymentUseCase) lookup(ctx context.Context, op, orderID string, call lookupFunc) (*entities.GatewayResponse, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}

	resp, err := call(u.gateway, ctx, orderID, "")
	if err != nil {
		log.Printf("[payment][usecase] %s failed order_id=%s err=%v", op, orderID, err)
		return nil, err
	}
	log.Printf("[payment][usecase] %s done order_id=%s kind=%s status=%d", op, orderID, resp.Kind, resp.StatusCode)
	return resp, nil
}

func (u *PaymentUseCase) validateCheckout(cmd CheckoutCommand) error {
	if !cmd.Intent.Valid() {
		return ErrInvalidIntent
	}
	if cmd.ShopOrderID == "" {
		return ErrInvalidShopOrderID
	}
	if cmd.AmountMinor <= 0 {
		return ErrInvalidAmount
	}
	for _, it := range cmd.Items {
		if it.AmountMinor < 0 {
			return ErrInvalidAmount
		}
	}
	if u.gateway == nil {
		return ErrGatewayNotConfigured
	}
	return nil
}

func (u *PaymentUseCase) record(ctx context.Context, op entities.PaymentOperation, cmd CheckoutCommand, resp *entities.GatewayResponse) (PaymentResult, error) {
	status := entities.PaymentRecordStatusCreated
	if resp.IsSoftError() {
		status = entities.PaymentRecordStatusRejected
	}
	redirectURL, _ := entities.ExtractLink(resp, entities.RelApprove)

	currency := cmd.Currency
	if currency == "" {
		currency = entities.CurrencyGEL
	}
	rec := entities.PaymentRecord{
		ID:          u.newID(),
		Operation:   op,
		ShopOrderID: cmd.ShopOrderID,
		OrderID:     resp.String("order_id"),
		Intent:      cmd.Intent,
		AmountMinor: cmd.AmountMinor,
		Currency:    currency,
		Status:      status,
		RedirectURL: redirectURL,
		CreatedAt:   u.now(),
		ResponseRaw: resp.Raw,
		Response:    resp.Body,
	}
	return u.persist(ctx, rec, resp)
}

func (u *PaymentUseCase) persist(ctx context.Context, rec entities.PaymentRecord, resp *entities.GatewayResponse) (PaymentResult, error) {
	if u.repo == nil {
		log.Printf("[payment][usecase] record repository not configured; skipping persistence operation=%s", rec.Operation)
		return PaymentResult{Record: rec, Response: resp}, nil
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		log.Printf("[payment][usecase] record create failed operation=%s order_id=%s err=%v", rec.Operation, rec.OrderID, err)
		return PaymentResult{}, err
	}
	log.Printf("[payment][usecase] %s done record_id=%s order_id=%s status=%s", rec.Operation, created.ID, created.OrderID, created.Status)
	return PaymentResult{Record: created, Response: resp}, nil
}

func toCheckoutParams(cmd CheckoutCommand) entities.CheckoutParams {
	items := make([]entities.PurchaseItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		items = append(items, entities.BuildPurchaseItem(it.ProductID, it.AmountMinor, it.Quantity, it.Description))
	}
	return entities.CheckoutParams{
		Intent:        cmd.Intent,
		ShopOrderID:   cmd.ShopOrderID,
		PurchaseUnits: []entities.PurchaseUnit{entities.BuildPurchaseUnit(cmd.AmountMinor, cmd.Currency, cmd.IndustryType)},
		Items:         items,
		Token:         cmd.Token,
		CaptureMethod: cmd.CaptureMethod,
	}
}
