package usecase

import (
	"errors"
	"fmt"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/infrastructure/config"
)

var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrInvalidRail    = errors.New("rail not valid for country")
	ErrInvalidAmount  = errors.New("invalid amount")
)

// IPricingUseCase exposes the pure pricing engine.
//
// Quote is referentially transparent: identical inputs always produce an
// identical PriceBreakdown, which is what reconciliation audits rely on.
type IPricingUseCase interface {
	Quote(country entities.Country, productPrice, shippingCost entities.Money, rail entities.Rail) (entities.PriceBreakdown, error)
	CatalogPrice(country entities.Country) (entities.Money, error)
}

type PricingUseCase struct {
	cfg config.PricingConfig
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(cfg config.PricingConfig) *PricingUseCase {
	return &PricingUseCase{cfg: cfg}
}

// CatalogPrice returns the configured garment price for the country.
func (u *PricingUseCase) CatalogPrice(country entities.Country) (entities.Money, error) {
	cp, ok := u.cfg.Country(country)
	if !ok {
		return entities.Money{}, fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}
	return entities.NewMoney(cp.ProductPrice, cp.Currency), nil
}

// Quote maps (country, productPrice, shippingCost, rail) to a PriceBreakdown.
//
// The caller guarantees shippingCost already satisfies the country minimum;
// the engine does not clamp it. Each component is rounded once, half-up, and
// the total is the exact integer sum of the components.
//
// The two card rails deliberately keep separate formulas: they mirror two
// distinct providers with different fee structures, not one formula with
// different parameters.
func (u *PricingUseCase) Quote(country entities.Country, productPrice, shippingCost entities.Money, rail entities.Rail) (entities.PriceBreakdown, error) {
	cp, ok := u.cfg.Country(country)
	if !ok {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}
	if productPrice.IsNegative() || shippingCost.IsNegative() {
		return entities.PriceBreakdown{}, ErrInvalidAmount
	}
	if productPrice.Currency != cp.Currency || shippingCost.Currency != cp.Currency {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: expected %s", ErrInvalidAmount, cp.Currency)
	}
	if !rail.ValidFor(country) {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: %s in %s", ErrInvalidRail, rail, country)
	}
	fee, ok := cp.Fees[rail]
	if !ok {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: %s in %s", ErrInvalidRail, rail, country)
	}

	subtotal, err := productPrice.Add(shippingCost)
	if err != nil {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	var commission, tax entities.Money
	switch rail {
	case entities.RailBankTransfer, entities.RailNequi:
		// No-commission rails: total == subtotal exactly.
		commission = entities.NewMoney(0, cp.Currency)
		tax = entities.NewMoney(0, cp.Currency)
	case entities.RailCardCO:
		// Percentage commission plus flat fee, VAT on the commission.
		commission = entities.NewMoney(
			entities.RoundHalfUp(float64(subtotal.Amount)*fee.CommissionRate+float64(fee.FlatFee)),
			cp.Currency,
		)
		tax = commission.MulRound(fee.TaxRate)
	case entities.RailCardEC:
		// Flat percentage on top, tax absorbed by the provider.
		commission = subtotal.MulRound(fee.CommissionRate)
		tax = entities.NewMoney(0, cp.Currency)
	default:
		return entities.PriceBreakdown{}, fmt.Errorf("%w: %s", ErrInvalidRail, rail)
	}

	total := entities.NewMoney(subtotal.Amount+commission.Amount+tax.Amount, cp.Currency)
	return entities.PriceBreakdown{
		Subtotal:   subtotal,
		Commission: commission,
		Tax:        tax,
		Total:      total,
		Rail:       rail,
	}, nil
}
