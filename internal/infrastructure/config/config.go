package config

import (
	"os"
	"strconv"

	"pawart_studio/internal/domain/entities"
)

// Rate tables are explicit injected configuration, not process-wide
// singletons: tests supply alternate tables without touching the
// environment. FromEnv builds the production tables, layering env
// overrides on top of the defaults below.

// RailFee is the fee structure of a single rail in a single country.
// The two card rails belong to different providers and are configured
// independently on purpose.
type RailFee struct {
	CommissionRate float64
	FlatFee        int64
	TaxRate        float64
}

// CountryPricing holds the currency, catalog price and rail fees of one
// storefront country. ProductPrice is in minor units.
type CountryPricing struct {
	Currency     entities.Currency
	ProductPrice int64
	Fees         map[entities.Rail]RailFee
}

type PricingConfig struct {
	Countries map[entities.Country]CountryPricing
}

func (c PricingConfig) Country(country entities.Country) (CountryPricing, bool) {
	cp, ok := c.Countries[country]
	return cp, ok
}

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lon float64
}

// CountryShipping is the linear shipping cost model of one country.
// Monetary fields are in minor units. Granularity is the display rounding
// step (nearest 500 pesos for CO, nearest cent for EC).
type CountryShipping struct {
	Warehouse        Coordinate
	BaseRate         float64
	PerKmRate        float64
	MarginMultiplier float64
	MinRate          int64
	Granularity      int64
	FallbackCost     int64
}

type ShippingConfig struct {
	Countries map[entities.Country]CountryShipping
}

func (c ShippingConfig) Country(country entities.Country) (CountryShipping, bool) {
	cs, ok := c.Countries[country]
	return cs, ok
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Countries: map[entities.Country]CountryPricing{
			entities.CountryCO: {
				Currency:     entities.CurrencyCOP,
				ProductPrice: 89900,
				Fees: map[entities.Rail]RailFee{
					entities.RailCardCO:       {CommissionRate: 0.0265, FlatFee: 700, TaxRate: 0.19},
					entities.RailBankTransfer: {},
					entities.RailNequi:        {},
				},
			},
			entities.CountryEC: {
				Currency:     entities.CurrencyUSD,
				ProductPrice: 2499,
				Fees: map[entities.Rail]RailFee{
					entities.RailCardEC:       {CommissionRate: 0.05},
					entities.RailBankTransfer: {},
				},
			},
		},
	}
}

func DefaultShippingConfig() ShippingConfig {
	return ShippingConfig{
		Countries: map[entities.Country]CountryShipping{
			entities.CountryCO: {
				Warehouse:        Coordinate{Lat: 4.711, Lon: -74.0721}, // Bogotá
				BaseRate:         3500,
				PerKmRate:        60,
				MarginMultiplier: 1.15,
				MinRate:          5000,
				Granularity:      500,
				FallbackCost:     5000,
			},
			entities.CountryEC: {
				Warehouse:        Coordinate{Lat: -0.1807, Lon: -78.4678}, // Quito
				BaseRate:         150,
				PerKmRate:        5,
				MarginMultiplier: 1.10,
				MinRate:          200,
				Granularity:      1,
				FallbackCost:     250,
			},
		},
	}
}

// PricingFromEnv returns the default tables with env overrides applied.
func PricingFromEnv() PricingConfig {
	cfg := DefaultPricingConfig()

	co := cfg.Countries[entities.CountryCO]
	co.ProductPrice = envInt64("PRICING_CO_PRODUCT_PRICE", co.ProductPrice)
	card := co.Fees[entities.RailCardCO]
	card.CommissionRate = envFloat("PRICING_CO_CARD_RATE", card.CommissionRate)
	card.FlatFee = envInt64("PRICING_CO_CARD_FLAT_FEE", card.FlatFee)
	card.TaxRate = envFloat("PRICING_CO_CARD_TAX_RATE", card.TaxRate)
	co.Fees[entities.RailCardCO] = card
	cfg.Countries[entities.CountryCO] = co

	ec := cfg.Countries[entities.CountryEC]
	ec.ProductPrice = envInt64("PRICING_EC_PRODUCT_PRICE", ec.ProductPrice)
	ecCard := ec.Fees[entities.RailCardEC]
	ecCard.CommissionRate = envFloat("PRICING_EC_CARD_RATE", ecCard.CommissionRate)
	ec.Fees[entities.RailCardEC] = ecCard
	cfg.Countries[entities.CountryEC] = ec

	return cfg
}

// ShippingFromEnv returns the default tables with env overrides applied.
func ShippingFromEnv() ShippingConfig {
	cfg := DefaultShippingConfig()

	co := cfg.Countries[entities.CountryCO]
	co.MinRate = envInt64("SHIPPING_CO_MIN_RATE", co.MinRate)
	co.FallbackCost = envInt64("SHIPPING_CO_FALLBACK_COST", co.FallbackCost)
	cfg.Countries[entities.CountryCO] = co

	ec := cfg.Countries[entities.CountryEC]
	ec.MinRate = envInt64("SHIPPING_EC_MIN_RATE", ec.MinRate)
	ec.FallbackCost = envInt64("SHIPPING_EC_FALLBACK_COST", ec.FallbackCost)
	cfg.Countries[entities.CountryEC] = ec

	return cfg
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
