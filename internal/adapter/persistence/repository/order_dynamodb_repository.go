package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersIDIndex          = "id-index"
)

type orderItem struct {
	TransactionRef string `dynamodbav:"transaction_ref"`
	ID             string `dynamodbav:"id"`
	Country        string `dynamodbav:"country"`
	Provider       string `dynamodbav:"provider"`
	ProviderRef    string `dynamodbav:"provider_ref,omitempty"`
	PaymentStatus  string `dynamodbav:"payment_status"`
	AmountCharged  int64  `dynamodbav:"amount_charged"`
	Currency       string `dynamodbav:"currency"`
	Payload        string `dynamodbav:"payload"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: transaction_ref (string) -> one order per payment attempt
//   - GSI: id-index (PK: id)
//
// Payload keeps the full order document (JSON); the flat attributes exist
// for querying and reconciliation.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

// CreateIfAbsent inserts the order unless one already exists for the same
// transaction reference. The conditional put is what makes finalize
// idempotent: on a condition failure the existing order is returned with
// created=false.
func (r *OrderDynamoRepository) CreateIfAbsent(ctx context.Context, o entities.Order) (entities.Order, bool, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, false, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "transaction_ref",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByTransactionRef(ctx, o.TransactionRef)
			if getErr != nil {
				return entities.Order{}, false, getErr
			}
			return existing, false, nil
		}
		return entities.Order{}, false, err
	}
	return o, true, nil
}

func (r *OrderDynamoRepository) GetByTransactionRef(ctx context.Context, transactionRef string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_ref": &types.AttributeValueMemberS{Value: transactionRef},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) (orderItem, error) {
	payload, err := json.Marshal(o)
	if err != nil {
		return orderItem{}, err
	}
	return orderItem{
		TransactionRef: o.TransactionRef,
		ID:             o.ID,
		Country:        string(o.Country),
		Provider:       o.Payment.Provider,
		ProviderRef:    o.Payment.ProviderRef,
		PaymentStatus:  string(o.Payment.Status),
		AmountCharged:  o.Payment.AmountCharged.Amount,
		Currency:       string(o.Payment.AmountCharged.Currency),
		Payload:        string(payload),
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	var o entities.Order
	if err := json.Unmarshal([]byte(it.Payload), &o); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}
