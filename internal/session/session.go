// Package session is the per-visitor state the storefront keeps server-side:
// the cart, the open modal, the delivery address and the upstream credentials.
package session

import (
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/location"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/google/uuid"
)

type Session struct {
	ID            uuid.UUID      `json:"id"`
	UserID        string         `json:"userId,omitempty"`
	UpstreamToken string         `json:"upstreamToken,omitempty"`
	Cart          *cart.Cart     `json:"cart"`
	Modal         modal.State    `json:"modal"`
	Location      location.State `json:"location"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func New(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:        id,
		Cart:      cart.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) SignedIn() bool {
	return s.UserID != "" && s.UpstreamToken != ""
}

// SignIn attaches the upstream identity to the session.
func (s *Session) SignIn(userID, upstreamToken string) {
	s.UserID = userID
	s.UpstreamToken = upstreamToken
}

// SignOut forgets the upstream identity. Cart and address survive.
func (s *Session) SignOut() {
	s.UserID = ""
	s.UpstreamToken = ""
	s.Modal.Close()
}

// Normalize repairs fields a decoded session may lack.
func (s *Session) Normalize() {
	if s.Cart == nil {
		s.Cart = cart.New()
	}
	if s.Cart.Packs == nil {
		s.Cart.Packs = []cart.Pack{}
	}
}
