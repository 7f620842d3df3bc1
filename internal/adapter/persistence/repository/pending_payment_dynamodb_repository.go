package repository

import (
	"context"
	"encoding/json"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPendingPaymentsTableName = "pending_payments"

// Entries are only relevant until the redirect round-trip completes.
const pendingPaymentTTL = 24 * time.Hour

type pendingPaymentItem struct {
	ClientTransactionID string `dynamodbav:"client_transaction_id"`
	SessionID           string `dynamodbav:"session_id"`
	Rail                string `dynamodbav:"rail"`
	Payload             string `dynamodbav:"payload"`
	CreatedAt           string `dynamodbav:"created_at"`
	ExpiresAt           int64  `dynamodbav:"expires_at"`
}

// PendingPaymentDynamoRepository is the durable pending-session store that
// survives the provider redirect: written once at initiation, read and
// cleared once at verification.
//
// Table requirements:
//   - PK: client_transaction_id (string)
//   - TTL attribute: expires_at
type PendingPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingPaymentStore = (*PendingPaymentDynamoRepository)(nil)

func NewPendingPaymentDynamoRepository(ddb *dynamodb.Client) *PendingPaymentDynamoRepository {
	return &PendingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PENDING_PAYMENTS_TABLE", defaultPendingPaymentsTableName),
	}
}

func (r *PendingPaymentDynamoRepository) Put(ctx context.Context, p entities.PendingPayment) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	it := pendingPaymentItem{
		ClientTransactionID: p.ClientTransactionID,
		SessionID:           p.SessionID,
		Rail:                string(p.Rail),
		Payload:             string(payload),
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:           p.CreatedAt.Add(pendingPaymentTTL).Unix(),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PendingPaymentDynamoRepository) Get(ctx context.Context, clientTransactionID string) (entities.PendingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"client_transaction_id": &types.AttributeValueMemberS{Value: clientTransactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingPayment{}, nil
	}

	var it pendingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingPayment{}, err
	}

	var p entities.PendingPayment
	if err := json.Unmarshal([]byte(it.Payload), &p); err != nil {
		return entities.PendingPayment{}, err
	}
	return p, nil
}

// Clear deletes the entry. Deleting an absent key is a no-op, so clearing
// twice is harmless.
func (r *PendingPaymentDynamoRepository) Clear(ctx context.Context, clientTransactionID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"client_transaction_id": &types.AttributeValueMemberS{Value: clientTransactionID},
		},
	})
	return err
}
