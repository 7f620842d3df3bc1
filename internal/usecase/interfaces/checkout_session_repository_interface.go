package interfaces

import (
	"context"

	"pawart_studio/internal/domain/entities"
)

// ICheckoutSessionRepository abstracts DynamoDB persistence for
// CheckoutSession. Sessions are mutated only by the checkout use case,
// one transition at a time.
type ICheckoutSessionRepository interface {
	Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutSession, error)
	Update(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
}
