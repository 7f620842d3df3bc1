package entities

import "time"

// OrderPaymentStatus is the persisted payment state of an order.
type OrderPaymentStatus string

const (
	OrderPaymentPaid    OrderPaymentStatus = "paid"
	OrderPaymentPending OrderPaymentStatus = "pending_payment"
)

// OrderPayment records how the order was paid.
type OrderPayment struct {
	Provider      string             `json:"provider"`
	ProviderRef   string             `json:"provider_ref,omitempty"`
	Status        OrderPaymentStatus `json:"status"`
	AmountCharged Money              `json:"amount_charged"`
}

// Order is the immutable persisted result of a completed checkout session.
// Corrections are new compensating records, never in-place edits.
//
// Storage model (DynamoDB):
//   - PK: transaction_ref (client transaction id) -> conditional insert
//     guarantees at most one order per payment attempt
type Order struct {
	ID             string         `json:"id"`
	TransactionRef string         `json:"transaction_ref"`
	Country        Country        `json:"country"`
	Customer       Customer       `json:"customer"`
	ArtworkRef     string         `json:"artwork_ref"`
	Garment        GarmentChoice  `json:"garment"`
	ShippingQuote  *ShippingQuote `json:"shipping_quote,omitempty"`
	Breakdown      PriceBreakdown `json:"breakdown"`
	Payment        OrderPayment   `json:"payment"`
	CreatedAt      time.Time      `json:"created_at"`
}
