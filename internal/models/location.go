package models

// LocationDetails is the structured part of a delivery address.
type LocationDetails struct {
	State            string `json:"state,omitempty"`
	LocalGovernment  string `json:"localGovernment,omitempty"`
	Locality         string `json:"locality,omitempty"`
	FormattedAddress string `json:"formattedAddress,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type DeliveryVerdict struct {
	IsDeliverable bool   `json:"isDeliverable"`
	Message       string `json:"message"`
}

// for the delivery zone check endpoint
type VerifyDeliveryRequest struct {
	State           string `json:"state" validate:"required"`
	LocalGovernment string `json:"localGovernment" validate:"required"`
	Locality        string `json:"locality"`
}

type DeliveryErrorResponse struct {
	Error string `json:"error"`
}

type SetAddressRequest struct {
	Address         string `json:"address" validate:"required,max=300"`
	State           string `json:"state" validate:"required"`
	LocalGovernment string `json:"localGovernment" validate:"required"`
	Locality        string `json:"locality"`
}

// ResolveLocationRequest carries what the device reported: either a fix or the
// failure code of the geolocation API (1 denied, 2 unavailable, 3 timeout).
type ResolveLocationRequest struct {
	Coordinates *Coordinates `json:"coordinates,omitempty" validate:"omitempty"`
	ErrorCode   int          `json:"errorCode,omitempty" validate:"omitempty,oneof=1 2 3"`
}
