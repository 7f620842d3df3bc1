package usecase

import (
	"errors"
	"fmt"
	"math"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/infrastructure/config"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

const earthRadiusKm = 6371.0088

// IShippingUseCase computes distance-based shipping quotes.
//
// Geolocation itself is the client's problem (bounded there by a timeout);
// this use case receives either a coordinate or an explicit fallback
// request. The fallback is a deliberate alternate input path, never an
// implicit guess.
type IShippingUseCase interface {
	QuoteByCoordinates(country entities.Country, lat, lon float64) (entities.ShippingQuote, error)
	QuoteFallback(country entities.Country) (entities.ShippingQuote, error)
}

type ShippingUseCase struct {
	cfg config.ShippingConfig
	now func() time.Time
}

var _ IShippingUseCase = (*ShippingUseCase)(nil)

func NewShippingUseCase(cfg config.ShippingConfig) *ShippingUseCase {
	return &ShippingUseCase{cfg: cfg, now: time.Now}
}

// QuoteByCoordinates applies the linear cost model
// max(minRate, (baseRate + km*perKmRate) * margin) to the great-circle
// distance between the country warehouse and the customer, then rounds to
// the country's display granularity. The result never drops below the
// configured minimum.
func (u *ShippingUseCase) QuoteByCoordinates(country entities.Country, lat, lon float64) (entities.ShippingQuote, error) {
	cs, ok := u.cfg.Country(country)
	if !ok {
		return entities.ShippingQuote{}, fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return entities.ShippingQuote{}, ErrInvalidCoordinates
	}

	km := haversineKm(cs.Warehouse.Lat, cs.Warehouse.Lon, lat, lon)
	raw := (cs.BaseRate + km*cs.PerKmRate) * cs.MarginMultiplier
	cost := roundToGranularity(raw, cs.Granularity)
	if cost < cs.MinRate {
		cost = cs.MinRate
	}

	return entities.ShippingQuote{
		DistanceKm: km,
		Cost:       entities.NewMoney(cost, country.Currency()),
		ComputedAt: u.now().UTC(),
		Source:     entities.ShippingSourceGeolocated,
	}, nil
}

// QuoteFallback returns the configured flat cost, used when geolocation is
// unavailable or denied.
func (u *ShippingUseCase) QuoteFallback(country entities.Country) (entities.ShippingQuote, error) {
	cs, ok := u.cfg.Country(country)
	if !ok {
		return entities.ShippingQuote{}, fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}
	cost := cs.FallbackCost
	if cost < cs.MinRate {
		cost = cs.MinRate
	}
	return entities.ShippingQuote{
		DistanceKm: 0,
		Cost:       entities.NewMoney(cost, country.Currency()),
		ComputedAt: u.now().UTC(),
		Source:     entities.ShippingSourceFallback,
	}, nil
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func roundToGranularity(v float64, granularity int64) int64 {
	if granularity <= 1 {
		return entities.RoundHalfUp(v)
	}
	g := float64(granularity)
	return entities.RoundHalfUp(v/g) * granularity
}
