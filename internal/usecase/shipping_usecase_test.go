package usecase

import (
	"errors"
	"math"
	"testing"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/infrastructure/config"
)

func newShippingForTest() *ShippingUseCase {
	uc := NewShippingUseCase(config.DefaultShippingConfig())
	uc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestShippingUseCase_QuoteByCoordinates_MinimumFloor(t *testing.T) {
	uc := newShippingForTest()

	// Customer at the warehouse itself: zero distance, cost clamps to the
	// configured minimum.
	q, err := uc.QuoteByCoordinates(entities.CountryCO, 4.7110, -74.0721)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DistanceKm > 0.001 {
		t.Fatalf("expected ~0 km, got %f", q.DistanceKm)
	}
	if q.Cost.Amount != 5000 || q.Cost.Currency != entities.CurrencyCOP {
		t.Fatalf("expected minimum 5000 COP, got %+v", q.Cost)
	}
	if q.Source != entities.ShippingSourceGeolocated {
		t.Fatalf("expected geolocated source, got %s", q.Source)
	}

	q, err = uc.QuoteByCoordinates(entities.CountryEC, -0.1807, -78.4678)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Cost.Amount != 200 || q.Cost.Currency != entities.CurrencyUSD {
		t.Fatalf("expected minimum 200 cents, got %+v", q.Cost)
	}
}

func TestShippingUseCase_QuoteByCoordinates_DistanceAndGranularity(t *testing.T) {
	uc := newShippingForTest()

	// Bogota warehouse to Medellin, roughly 245 km great-circle.
	q, err := uc.QuoteByCoordinates(entities.CountryCO, 6.2442, -75.5812)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DistanceKm < 200 || q.DistanceKm > 300 {
		t.Fatalf("unexpected distance: %f km", q.DistanceKm)
	}
	if q.Cost.Amount%500 != 0 {
		t.Fatalf("CO cost should land on 500-peso steps, got %d", q.Cost.Amount)
	}
	if q.Cost.Amount < 5000 {
		t.Fatalf("cost below the minimum: %d", q.Cost.Amount)
	}

	// The cost follows the linear model within one granularity step.
	raw := (3500 + q.DistanceKm*60) * 1.15
	if diff := math.Abs(float64(q.Cost.Amount) - raw); diff > 250 {
		t.Fatalf("cost %d too far from model value %f", q.Cost.Amount, raw)
	}
}

func TestShippingUseCase_QuoteByCoordinates_InvalidCoordinates(t *testing.T) {
	uc := newShippingForTest()

	cases := []struct{ lat, lon float64 }{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
		{math.NaN(), 0},
		{0, math.NaN()},
	}
	for _, tc := range cases {
		if _, err := uc.QuoteByCoordinates(entities.CountryCO, tc.lat, tc.lon); !errors.Is(err, ErrInvalidCoordinates) {
			t.Fatalf("lat=%f lon=%f: expected ErrInvalidCoordinates, got %v", tc.lat, tc.lon, err)
		}
	}

	if _, err := uc.QuoteByCoordinates(entities.Country("BR"), 1, 1); !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("expected ErrUnknownCountry, got %v", err)
	}
}

func TestShippingUseCase_QuoteFallback(t *testing.T) {
	uc := newShippingForTest()

	q, err := uc.QuoteFallback(entities.CountryCO)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Source != entities.ShippingSourceFallback {
		t.Fatalf("expected fallback source, got %s", q.Source)
	}
	if q.DistanceKm != 0 {
		t.Fatalf("fallback quote should not claim a distance")
	}
	if q.Cost.Amount != 5000 {
		t.Fatalf("expected CO fallback 5000, got %d", q.Cost.Amount)
	}

	q, err = uc.QuoteFallback(entities.CountryEC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Cost.Amount != 250 || q.Cost.Currency != entities.CurrencyUSD {
		t.Fatalf("expected EC fallback 250 cents, got %+v", q.Cost)
	}

	if _, err := uc.QuoteFallback(entities.Country("AR")); !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("expected ErrUnknownCountry, got %v", err)
	}
}

func TestRoundToGranularity(t *testing.T) {
	cases := []struct {
		v           float64
		granularity int64
		want        int64
	}{
		{4025, 500, 4000},
		{4250, 500, 4500},
		{4249.99, 500, 4000},
		{165.4, 1, 165},
		{165.5, 1, 166},
		{7, 0, 7},
	}
	for _, tc := range cases {
		if got := roundToGranularity(tc.v, tc.granularity); got != tc.want {
			t.Fatalf("roundToGranularity(%v, %d) = %d, want %d", tc.v, tc.granularity, got, tc.want)
		}
	}
}
