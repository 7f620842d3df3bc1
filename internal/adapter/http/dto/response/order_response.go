package response

import (
	"time"

	"pawart_studio/internal/domain/entities"
)

type OrderPaymentResponse struct {
	Provider      string        `json:"provider"`
	ProviderRef   string        `json:"provider_ref,omitempty"`
	Status        string        `json:"status"`
	AmountCharged MoneyResponse `json:"amount_charged"`
}

type OrderResponse struct {
	OrderID        string                 `json:"order_id"`
	TransactionRef string                 `json:"transaction_ref"`
	Country        string                 `json:"country"`
	Customer       entities.Customer      `json:"customer"`
	ArtworkRef     string                 `json:"artwork_ref,omitempty"`
	Garment        entities.GarmentChoice `json:"garment"`
	ShippingQuote  *ShippingQuoteResponse `json:"shipping_quote,omitempty"`
	Breakdown      BreakdownResponse      `json:"breakdown"`
	Payment        OrderPaymentResponse   `json:"payment"`
	CreatedAt      time.Time              `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:        o.ID,
		TransactionRef: o.TransactionRef,
		Country:        string(o.Country),
		Customer:       o.Customer,
		ArtworkRef:     o.ArtworkRef,
		Garment:        o.Garment,
		ShippingQuote:  fromShippingQuote(o.ShippingQuote),
		Breakdown:      fromBreakdown(o.Breakdown),
		Payment: OrderPaymentResponse{
			Provider:      o.Payment.Provider,
			ProviderRef:   o.Payment.ProviderRef,
			Status:        string(o.Payment.Status),
			AmountCharged: fromMoney(o.Payment.AmountCharged),
		},
		CreatedAt: o.CreatedAt,
	}
}
