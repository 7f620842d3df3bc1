package response

import (
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase"
)

type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func fromMoney(m entities.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount, Currency: string(m.Currency)}
}

type ShippingQuoteResponse struct {
	DistanceKm float64       `json:"distance_km"`
	Cost       MoneyResponse `json:"cost"`
	ComputedAt time.Time     `json:"computed_at"`
	Source     string        `json:"source"`
}

func fromShippingQuote(q *entities.ShippingQuote) *ShippingQuoteResponse {
	if q == nil {
		return nil
	}
	return &ShippingQuoteResponse{
		DistanceKm: q.DistanceKm,
		Cost:       fromMoney(q.Cost),
		ComputedAt: q.ComputedAt,
		Source:     string(q.Source),
	}
}

type BreakdownResponse struct {
	Subtotal   MoneyResponse `json:"subtotal"`
	Commission MoneyResponse `json:"commission"`
	Tax        MoneyResponse `json:"tax"`
	Total      MoneyResponse `json:"total"`
	Rail       string        `json:"rail"`
}

func fromBreakdown(b entities.PriceBreakdown) BreakdownResponse {
	return BreakdownResponse{
		Subtotal:   fromMoney(b.Subtotal),
		Commission: fromMoney(b.Commission),
		Tax:        fromMoney(b.Tax),
		Total:      fromMoney(b.Total),
		Rail:       string(b.Rail),
	}
}

type SessionResponse struct {
	SessionID        string                 `json:"session_id"`
	Country          string                 `json:"country"`
	Customer         entities.Customer      `json:"customer"`
	ArtworkRef       string                 `json:"artwork_ref,omitempty"`
	Garment          entities.GarmentChoice `json:"garment"`
	ShippingQuote    *ShippingQuoteResponse `json:"shipping_quote,omitempty"`
	Rail             string                 `json:"rail,omitempty"`
	State            string                 `json:"state"`
	FailureReason    string                 `json:"failure_reason,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	LastTransitionAt time.Time              `json:"last_transition_at"`
}

func FromSession(s entities.CheckoutSession) SessionResponse {
	return SessionResponse{
		SessionID:        s.ID,
		Country:          string(s.Country),
		Customer:         s.Customer,
		ArtworkRef:       s.SelectedArtworkRef,
		Garment:          s.Garment,
		ShippingQuote:    fromShippingQuote(s.ShippingQuote),
		Rail:             string(s.Rail),
		State:            string(s.State),
		FailureReason:    s.FailureReason,
		CreatedAt:        s.CreatedAt,
		LastTransitionAt: s.LastTransitionAt,
	}
}

type WidgetSessionResponse struct {
	Reference     string `json:"reference"`
	PublicKey     string `json:"public_key"`
	Signature     string `json:"signature"`
	AmountInCents int64  `json:"amount_in_cents"`
	Currency      string `json:"currency"`
}

// PaymentInitiationResponse is the outcome of a pay request. Exactly one of
// PaymentURL (redirect rails), Widget (widget rails) or Order (manual rails,
// finalized immediately) is populated.
type PaymentInitiationResponse struct {
	Session       SessionResponse        `json:"session"`
	TransactionID string                 `json:"transaction_id"`
	Mode          string                 `json:"mode"`
	Breakdown     BreakdownResponse      `json:"breakdown"`
	PaymentURL    string                 `json:"payment_url,omitempty"`
	Widget        *WidgetSessionResponse `json:"widget,omitempty"`
	Order         *OrderResponse         `json:"order,omitempty"`
}

func FromPaymentInitiation(pi usecase.PaymentInitiation) PaymentInitiationResponse {
	resp := PaymentInitiationResponse{
		Session:       FromSession(pi.Session),
		TransactionID: pi.Pending.ClientTransactionID,
		Mode:          string(pi.Pending.Mode),
		Breakdown:     fromBreakdown(pi.Pending.Breakdown),
		PaymentURL:    pi.Pending.PaymentURL,
	}
	if w := pi.Pending.Widget; w != nil {
		resp.Widget = &WidgetSessionResponse{
			Reference:     w.Reference,
			PublicKey:     w.PublicKey,
			Signature:     w.Signature,
			AmountInCents: w.AmountInCents,
			Currency:      string(w.Currency),
		}
	}
	if pi.Order != nil {
		order := FromOrder(*pi.Order)
		resp.Order = &order
	}
	return resp
}
