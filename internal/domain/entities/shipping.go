package entities

import "time"

// ShippingSource records how a quote was produced.
type ShippingSource string

const (
	ShippingSourceGeolocated ShippingSource = "geolocated"
	ShippingSourceFallback   ShippingSource = "fallback"
)

// ShippingQuote is the distance-based shipping cost for one checkout attempt.
//
// Created once per attempt and immutable afterward; discarded when the
// customer restarts checkout. Cost is never below the country's configured
// minimum rate.
type ShippingQuote struct {
	DistanceKm float64        `json:"distance_km"`
	Cost       Money          `json:"cost"`
	ComputedAt time.Time      `json:"computed_at"`
	Source     ShippingSource `json:"source"`
}
