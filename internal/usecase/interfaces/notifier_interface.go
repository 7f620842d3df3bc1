package interfaces

import (
	"context"

	"pawart_studio/internal/domain/entities"
)

// INotifier delivers order summaries to a human channel (Telegram).
// Fire-and-forget from the state machine's perspective: a delivery failure
// never fails the order.
type INotifier interface {
	NotifyOrder(ctx context.Context, o entities.Order, imageBase64 string) error
	NotifyTransferRequest(ctx context.Context, s entities.CheckoutSession, breakdown entities.PriceBreakdown, imageBase64 string) error
}
