// Package location keeps the delivery address of a session and resolves the
// device position into one.
package location

import (
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils"
)

// State is the address slot of a session.
type State struct {
	Address     string                  `json:"address,omitempty"`
	Coordinates *models.Coordinates     `json:"coordinates,omitempty"`
	Details     models.LocationDetails  `json:"details"`
	Verdict     *models.DeliveryVerdict `json:"verdict,omitempty"`
	Error       string                  `json:"error,omitempty"`
}

// Sanitize strips markup from free text typed by the user.
func Sanitize(s string) string {
	return utils.StripTags(s)
}

// SetManual records an address typed by the user. Coordinates from an earlier
// device fix no longer apply and are dropped.
func (s *State) SetManual(address string, details models.LocationDetails) {
	s.Address = Sanitize(address)
	s.Coordinates = nil
	s.Details = models.LocationDetails{
		State:            Sanitize(details.State),
		LocalGovernment:  Sanitize(details.LocalGovernment),
		Locality:         Sanitize(details.Locality),
		FormattedAddress: s.Address,
	}
	s.Verdict = nil
	s.Error = ""
}

// Apply writes the outcome of a device resolution. A failed resolution keeps
// the previous address and only records the message.
func (s *State) Apply(res Resolution) {
	if res.Error != "" {
		s.Error = res.Error
		return
	}

	coords := res.Coordinates
	s.Address = res.Details.FormattedAddress
	s.Coordinates = &coords
	s.Details = res.Details
	s.Verdict = nil
	s.Error = ""
}

func (s *State) SetVerdict(v models.DeliveryVerdict) {
	s.Verdict = &v
}

// Resolved reports whether enough is known to run the delivery check.
func (s *State) Resolved() bool {
	return s.Details.FormattedAddress != "" && s.Details.State != "" && s.Details.LocalGovernment != ""
}
