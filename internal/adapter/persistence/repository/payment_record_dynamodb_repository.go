package repository

import (
	"context"
	"encoding/json"

	"ipay_billing/internal/domain/entities"
	"ipay_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentRecordsTableName = "payment_records"
	PaymentRecordsShopOrderIDIndex = "shop_order_id-index"
	PaymentRecordsShopOrderIDKey   = "shop_order_id"
)

// DynamoAPI is the part of *dynamodb.Client the repository needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// shop_order_id is omitted for refunds so they stay out of the sparse GSI
// (DynamoDB rejects empty strings as index keys).
type paymentRecordItem struct {
	ID          string         `dynamodbav:"id"`
	Operation   string         `dynamodbav:"operation"`
	ShopOrderID string         `dynamodbav:"shop_order_id,omitempty"`
	OrderID     string         `dynamodbav:"order_id,omitempty"`
	Intent      string         `dynamodbav:"intent,omitempty"`
	AmountMinor int64          `dynamodbav:"amount_minor"`
	Currency    string         `dynamodbav:"currency,omitempty"`
	Status      string         `dynamodbav:"status"`
	RedirectURL string         `dynamodbav:"redirect_url,omitempty"`
	CreatedAt   string         `dynamodbav:"created_at"`
	Response    map[string]any `dynamodbav:"response,omitempty"`
	ResponseRaw string         `dynamodbav:"response_raw,omitempty"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shop_order_id-index (PK: shop_order_id)
type PaymentRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoAPI) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: PaymentRecordsTableName(),
	}
}

// PaymentRecordsTableName reads PAYMENT_RECORDS_TABLE.
func PaymentRecordsTableName() string {
	return tableNameFromEnv("PAYMENT_RECORDS_TABLE", DefaultPaymentRecordsTableName)
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(rec))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return rec, nil
}

// GetByID returns a zero record when the id is unknown.
func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByShopOrderID(ctx context.Context, shopOrderID string) ([]entities.PaymentRecord, error) {
	var (
		records []entities.PaymentRecord
		startAt map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(PaymentRecordsShopOrderIDIndex),
			KeyConditionExpression: aws.String("shop_order_id = :sid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sid": &types.AttributeValueMemberS{Value: shopOrderID},
			},
			ExclusiveStartKey: startAt,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it paymentRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromPaymentRecordItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startAt = out.LastEvaluatedKey
	}
	if records == nil {
		records = []entities.PaymentRecord{}
	}
	return records, nil
}

func toPaymentRecordItem(rec entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:          rec.ID,
		Operation:   string(rec.Operation),
		ShopOrderID: rec.ShopOrderID,
		OrderID:     rec.OrderID,
		Intent:      string(rec.Intent),
		AmountMinor: rec.AmountMinor,
		Currency:    string(rec.Currency),
		Status:      string(rec.Status),
		RedirectURL: rec.RedirectURL,
		CreatedAt:   formatTimestamp(rec.CreatedAt),
		Response:    rec.Response,
		ResponseRaw: string(rec.ResponseRaw),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	var raw json.RawMessage
	if it.ResponseRaw != "" {
		raw = json.RawMessage(it.ResponseRaw)
	}
	return entities.PaymentRecord{
		ID:          it.ID,
		Operation:   entities.PaymentOperation(it.Operation),
		ShopOrderID: it.ShopOrderID,
		OrderID:     it.OrderID,
		Intent:      entities.Intent(it.Intent),
		AmountMinor: it.AmountMinor,
		Currency:    entities.Currency(it.Currency),
		Status:      entities.PaymentRecordStatus(it.Status),
		RedirectURL: it.RedirectURL,
		CreatedAt:   parseTimestamp(it.CreatedAt),
		Response:    it.Response,
		ResponseRaw: raw,
	}
}
