package interfaces

import (
	"context"

	"ipay_billing/internal/domain/entities"
)

//go:generate mockgen -source=payment_record_repository_interface.go -destination=mocks/payment_record_repository_interface_mock.go -package=mock_interfaces

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByShopOrderID(ctx context.Context, shopOrderID string) ([]entities.PaymentRecord, error)
}
