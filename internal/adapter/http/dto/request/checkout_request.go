package request

import (
	"strings"

	"pawart_studio/internal/domain/entities"
)

type CustomerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.TrimSpace(r.Email),
		Whatsapp: strings.TrimSpace(r.Whatsapp),
		Address:  strings.TrimSpace(r.Address),
	}
}

type GarmentRequest struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

func (r GarmentRequest) ToEntity() entities.GarmentChoice {
	return entities.GarmentChoice{
		Color: strings.TrimSpace(r.Color),
		Size:  strings.TrimSpace(r.Size),
	}
}

// StartSessionRequest opens a checkout session. Customer fields may arrive
// partially filled; the session starts in draft until they are complete.
type StartSessionRequest struct {
	Country    string          `json:"country" binding:"required"`
	Customer   CustomerRequest `json:"customer"`
	ArtworkRef string          `json:"artwork_ref"`
	Garment    GarmentRequest  `json:"garment"`
}

func (r StartSessionRequest) ResolveCountry() entities.Country {
	return entities.Country(strings.ToUpper(strings.TrimSpace(r.Country)))
}

type SubmitDetailsRequest struct {
	Customer   CustomerRequest `json:"customer" binding:"required"`
	ArtworkRef string          `json:"artwork_ref"`
	Garment    GarmentRequest  `json:"garment"`
}

// ShippingRequest carries the customer coordinate when geolocation
// succeeded. Both fields absent selects the explicit fallback quote.
type ShippingRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

func (r ShippingRequest) Geolocated() bool {
	return r.Lat != nil && r.Lon != nil
}

func (r ShippingRequest) Coordinates() (lat, lon float64) {
	if !r.Geolocated() {
		return 0, 0
	}
	return *r.Lat, *r.Lon
}

type PayRequest struct {
	Rail string `json:"rail" binding:"required"`
}

func (r PayRequest) ResolveRail() entities.Rail {
	return entities.Rail(strings.ToLower(strings.TrimSpace(r.Rail)))
}

// ConfirmRequest carries the provider return parameters from a redirect
// rail. The provider appends them to the storefront return URL.
type ConfirmRequest struct {
	ID                  string `json:"id" binding:"required"`
	ClientTransactionID string `json:"client_transaction_id" binding:"required"`
}

type WidgetTransactionRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// WidgetCallbackRequest is the one-shot widget result. Transaction is nil
// when the widget closed without producing a transaction.
type WidgetCallbackRequest struct {
	Transaction *WidgetTransactionRequest `json:"transaction"`
}
