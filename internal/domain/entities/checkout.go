package entities

import (
	"strings"
	"time"
)

// Country is a supported storefront country.
type Country string

const (
	CountryCO Country = "CO"
	CountryEC Country = "EC"
)

func (c Country) Valid() bool { return c == CountryCO || c == CountryEC }

func (c Country) Currency() Currency {
	if c == CountryEC {
		return CurrencyUSD
	}
	return CurrencyCOP
}

// CheckoutState is the customer-visible lifecycle of a checkout session.
//
// Draft -> ShippingPending -> ReadyToPay -> AwaitingProviderRedirect |
// AwaitingProviderCallback -> Verifying -> Completed. Failed is reachable
// from every state except Completed and always returns to ReadyToPay once
// the customer acknowledges the error.
type CheckoutState string

const (
	CheckoutStateDraft                    CheckoutState = "DRAFT"
	CheckoutStateShippingPending          CheckoutState = "SHIPPING_PENDING"
	CheckoutStateReadyToPay               CheckoutState = "READY_TO_PAY"
	CheckoutStateAwaitingProviderRedirect CheckoutState = "AWAITING_PROVIDER_REDIRECT"
	CheckoutStateAwaitingProviderCallback CheckoutState = "AWAITING_PROVIDER_CALLBACK"
	CheckoutStateVerifying                CheckoutState = "VERIFYING"
	CheckoutStateCompleted                CheckoutState = "COMPLETED"
	CheckoutStateFailed                   CheckoutState = "FAILED"
)

func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutStateCompleted
}

// PaymentInFlight reports whether a payment attempt is active and a new
// initiation must not be processed.
func (s CheckoutState) PaymentInFlight() bool {
	switch s {
	case CheckoutStateAwaitingProviderRedirect, CheckoutStateAwaitingProviderCallback, CheckoutStateVerifying:
		return true
	}
	return false
}

func (s CheckoutState) String() string { return string(s) }

// Customer holds the order contact and delivery fields.
type Customer struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address"`
}

func (c Customer) Complete() bool {
	return strings.TrimSpace(c.FullName) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Whatsapp) != "" &&
		strings.TrimSpace(c.Address) != ""
}

// UnknownCustomer is the degraded customer record used when a redirect
// return cannot recover the pending session (different device, cleared
// storage). The payment already happened and must not be lost, so the
// order is persisted with explicit placeholders instead of failing.
func UnknownCustomer() Customer {
	return Customer{FullName: "unknown", Email: "unknown", Whatsapp: "unknown", Address: "unknown"}
}

// GarmentChoice is the customized garment selection.
type GarmentChoice struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// CheckoutSession is the single mutable record driven by the checkout state
// machine. Mutated only through defined transitions; one session yields at
// most one Order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - TTL attribute: expires_at (abandoned sessions age out)
type CheckoutSession struct {
	ID                     string         `json:"id"`
	Country                Country        `json:"country"`
	Customer               Customer       `json:"customer"`
	SelectedArtworkRef     string         `json:"selected_artwork_ref"`
	Garment                GarmentChoice  `json:"garment"`
	ShippingQuote          *ShippingQuote `json:"shipping_quote,omitempty"`
	Rail                   Rail           `json:"rail,omitempty"`
	ProviderTransactionRef string         `json:"provider_transaction_ref,omitempty"`
	State                  CheckoutState  `json:"state"`
	FailureReason          string         `json:"failure_reason,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	LastTransitionAt       time.Time      `json:"last_transition_at"`
}

// PendingPayment is the durable snapshot written when a payment attempt
// leaves the page (redirect rails) or opens a widget. Keyed by the locally
// generated client transaction id so the session can be rebuilt after a
// full page reload.
//
// Storage model (DynamoDB):
//   - PK: client_transaction_id
//   - written once at initiation, read and cleared once at verification
type PendingPayment struct {
	ClientTransactionID string         `json:"client_transaction_id"`
	SessionID           string         `json:"session_id"`
	Rail                Rail           `json:"rail"`
	Mode                PaymentMode    `json:"mode"`
	PaymentURL          string         `json:"payment_url,omitempty"`
	Widget              *WidgetSession `json:"widget,omitempty"`
	Breakdown           PriceBreakdown `json:"breakdown"`
	Customer            Customer       `json:"customer"`
	ArtworkRef          string         `json:"artwork_ref"`
	Garment             GarmentChoice  `json:"garment"`
	CreatedAt           time.Time      `json:"created_at"`
}

// WidgetSession carries the parameters the in-page payment widget needs:
// the signed reference binds the exact total computed at initiation.
type WidgetSession struct {
	Reference     string   `json:"reference"`
	PublicKey     string   `json:"public_key"`
	Signature     string   `json:"signature"`
	AmountInCents int64    `json:"amount_in_cents"`
	Currency      Currency `json:"currency"`
}

// PaymentResultStatus is the normalized provider outcome.
type PaymentResultStatus string

const (
	PaymentResultApproved PaymentResultStatus = "approved"
	PaymentResultDeclined PaymentResultStatus = "declined"
	PaymentResultError    PaymentResultStatus = "error"
	PaymentResultVoided   PaymentResultStatus = "voided"
	PaymentResultPending  PaymentResultStatus = "pending"
	// PaymentResultUnknown means the confirm call itself failed: the payment
	// may have gone through, which is distinct from a decline.
	PaymentResultUnknown PaymentResultStatus = "unknown"
)

// Chargeable reports whether the status allows order persistence.
// Pending is chargeable on manual rails (transfer confirmed out of band).
func (s PaymentResultStatus) Chargeable() bool {
	return s == PaymentResultApproved || s == PaymentResultPending
}

// PaymentResult is the provider's answer for one transaction reference.
type PaymentResult struct {
	Status                PaymentResultStatus `json:"status"`
	ProviderTransactionID string              `json:"provider_transaction_id,omitempty"`
	RawStatus             string              `json:"raw_status,omitempty"`
	Amount                Money               `json:"amount"`
}
