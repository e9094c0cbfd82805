// Package geocoding reverse geocodes device coordinates through a Google
// Geocoding compatible API.
package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL    string
	APIKey     string
	Language   string
	HTTPClient *http.Client
}

type Client struct {
	http     *resty.Client
	baseURL  string
	apiKey   string
	language string
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		http:     resty.NewWithClient(httpClient).SetHeader("Accept", "application/json"),
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
	}
}

type addressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type result struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []addressComponent `json:"address_components"`
}

type response struct {
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message"`
	Results      []result `json:"results"`
}

// Reverse returns the most specific address the API knows for coords.
func (c *Client) Reverse(ctx context.Context, coords models.Coordinates) (models.LocationDetails, error) {
	var body response

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latlng":   fmt.Sprintf("%f,%f", coords.Latitude, coords.Longitude),
			"key":      c.apiKey,
			"language": c.language,
		}).
		SetResult(&body).
		Get(c.baseURL)
	if err != nil {
		return models.LocationDetails{}, appErrors.ThirdPartyError("Could not look up your address").WithError(err)
	}

	if resp.IsError() {
		return models.LocationDetails{}, appErrors.ThirdPartyError("Could not look up your address").
			WithDetail(fmt.Sprintf("geocoding returned %d", resp.StatusCode()))
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return models.LocationDetails{}, appErrors.NotFoundError("We couldn't find an address for your location. Please enter it manually.")
	default:
		return models.LocationDetails{}, appErrors.ThirdPartyError("Could not look up your address").
			WithDetail(fmt.Sprintf("geocoding status %s: %s", body.Status, body.ErrorMessage))
	}

	if len(body.Results) == 0 {
		return models.LocationDetails{}, appErrors.NotFoundError("We couldn't find an address for your location. Please enter it manually.")
	}

	return detailsFrom(body.Results[0]), nil
}

func detailsFrom(r result) models.LocationDetails {
	details := models.LocationDetails{FormattedAddress: r.FormattedAddress}

	var locality string
	for _, comp := range r.AddressComponents {
		switch {
		case hasType(comp, "administrative_area_level_1"):
			details.State = trimStateSuffix(comp.LongName)
		case hasType(comp, "administrative_area_level_2"):
			details.LocalGovernment = comp.LongName
		case hasType(comp, "sublocality"), hasType(comp, "sublocality_level_1"):
			details.Locality = comp.LongName
		case hasType(comp, "locality"):
			locality = comp.LongName
		}
	}

	// sublocality is more precise and wins when both are present
	if details.Locality == "" {
		details.Locality = locality
	}

	return details
}

func hasType(comp addressComponent, t string) bool {
	for _, ct := range comp.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// "Lagos State" and "Lagos" name the same zone.
func trimStateSuffix(name string) string {
	if len(name) > len(" state") && strings.EqualFold(name[len(name)-len(" state"):], " state") {
		return name[:len(name)-len(" state")]
	}
	return name
}
