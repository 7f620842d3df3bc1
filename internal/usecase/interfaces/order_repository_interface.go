package interfaces

import (
	"context"

	"pawart_studio/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// CreateIfAbsent is a conditional insert keyed by the provider transaction
// reference: the second call for the same reference returns the existing
// order with created=false. This is what makes finalize idempotent.
type IOrderRepository interface {
	CreateIfAbsent(ctx context.Context, o entities.Order) (order entities.Order, created bool, err error)
	GetByTransactionRef(ctx context.Context, transactionRef string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
