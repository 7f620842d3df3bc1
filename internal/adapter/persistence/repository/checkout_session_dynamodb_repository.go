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

const defaultSessionsTableName = "checkout_sessions"

// Abandoned sessions age out through the table's TTL attribute.
const sessionTTL = 7 * 24 * time.Hour

type checkoutSessionItem struct {
	ID        string `dynamodbav:"id"`
	State     string `dynamodbav:"state"`
	Country   string `dynamodbav:"country"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// CheckoutSessionDynamoRepository persists CheckoutSession entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at
type CheckoutSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutSessionRepository = (*CheckoutSessionDynamoRepository)(nil)

func NewCheckoutSessionDynamoRepository(ddb *dynamodb.Client) *CheckoutSessionDynamoRepository {
	return &CheckoutSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *CheckoutSessionDynamoRepository) Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	av, err := marshalSessionItem(s)
	if err != nil {
		return entities.CheckoutSession{}, err
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
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

func (r *CheckoutSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutSession{}, nil
	}

	var it checkoutSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutSession{}, err
	}

	var s entities.CheckoutSession
	if err := json.Unmarshal([]byte(it.Payload), &s); err != nil {
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

// Update replaces the session document. The session must already exist;
// sessions are only created through Create.
func (r *CheckoutSessionDynamoRepository) Update(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	av, err := marshalSessionItem(s)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CheckoutSession{}, nil
		}
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

func marshalSessionItem(s entities.CheckoutSession) (map[string]types.AttributeValue, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	it := checkoutSessionItem{
		ID:        s.ID,
		State:     string(s.State),
		Country:   string(s.Country),
		Payload:   string(payload),
		UpdatedAt: s.LastTransitionAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: s.LastTransitionAt.Add(sessionTTL).Unix(),
	}
	return attributevalue.MarshalMap(it)
}
