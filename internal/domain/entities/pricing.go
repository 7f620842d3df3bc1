package entities

// Rail is a payment method/provider pairing offered at checkout.
//
// Each rail carries its own fee structure; the two card rails belong to two
// distinct real providers and are configured independently, never reconciled
// into shared logic.
type Rail string

const (
	RailCardCO       Rail = "card_co"       // Wompi widget, Colombia
	RailCardEC       Rail = "card_ec"       // Payphone redirect, Ecuador
	RailBankTransfer Rail = "bank_transfer" // manual bank transfer
	RailNequi        Rail = "nequi"         // Nequi mobile wallet, manual
)

// PaymentMode describes how a rail collects the payment.
type PaymentMode string

const (
	PaymentModeRedirect PaymentMode = "redirect" // provider-hosted page, customer returns via URL
	PaymentModeWidget   PaymentMode = "widget"   // in-page modal invoking a callback once
	PaymentModeManual   PaymentMode = "manual"   // out-of-band transfer, confirmed by a human
)

func (r Rail) Mode() PaymentMode {
	switch r {
	case RailCardEC:
		return PaymentModeRedirect
	case RailCardCO:
		return PaymentModeWidget
	default:
		return PaymentModeManual
	}
}

// ValidFor reports whether the rail may be used for the given country.
func (r Rail) ValidFor(country Country) bool {
	switch r {
	case RailCardCO, RailNequi:
		return country == CountryCO
	case RailCardEC:
		return country == CountryEC
	case RailBankTransfer:
		return true
	default:
		return false
	}
}

// PriceBreakdown is the decomposed chargeable total for one rail.
//
// Derived, never stored on its own: recomputed deterministically from
// (country, productPrice, shippingCost, rail). Invariant:
// Total == Subtotal + Commission + Tax exactly, in integer minor units.
type PriceBreakdown struct {
	Subtotal   Money `json:"subtotal"`
	Commission Money `json:"commission"`
	Tax        Money `json:"tax"`
	Total      Money `json:"total"`
	Rail       Rail  `json:"rail"`
}
