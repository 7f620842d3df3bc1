package interfaces

import (
	"context"

	"pawart_studio/internal/domain/entities"
)

// IPaymentProvider abstracts one payment rail's external provider behind a
// single shape, whether the provider is redirect-based (hosted page plus a
// confirm call on return) or widget-based (in-page modal plus a signed
// reference).
//
// Initiate binds the breakdown's exact total to the client transaction id;
// the same reference is what Confirm verifies against. The total is never
// recomputed between the two calls.
type IPaymentProvider interface {
	Initiate(ctx context.Context, breakdown entities.PriceBreakdown, customer entities.Customer, clientTransactionID string) (entities.PendingPayment, error)
	Confirm(ctx context.Context, providerTransactionID, clientTransactionID string) (entities.PaymentResult, error)
}
