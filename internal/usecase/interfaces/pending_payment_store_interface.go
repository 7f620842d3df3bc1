package interfaces

import (
	"context"

	"pawart_studio/internal/domain/entities"
)

// IPendingPaymentStore is the durable store that survives the redirect
// round-trip: written once at payment initiation, read and cleared once at
// verification. Get returns a zero-value PendingPayment when the key is
// absent; Clear on a missing key is a no-op.
type IPendingPaymentStore interface {
	Put(ctx context.Context, p entities.PendingPayment) error
	Get(ctx context.Context, clientTransactionID string) (entities.PendingPayment, error)
	Clear(ctx context.Context, clientTransactionID string) error
}
