// Package modal tracks which overlay a storefront session is showing.
// Only one modal can be open at a time; opening another replaces it.
package modal

import (
	"fmt"
)

type Type string

const (
	Closed          Type = ""
	Login           Type = "login"
	OTP             Type = "otp"
	Signup          Type = "signup"
	ItemDetail      Type = "item-detail"
	VendorMismatch  Type = "vendor-mismatch"
	RestoreMismatch Type = "restore-mismatch"
	PaymentOptions  Type = "payment-options"
	Wallet          Type = "wallet"
	Orders          Type = "orders"
	RateOrder       Type = "rate-order"
)

var known = map[Type]struct{}{
	Login:           {},
	OTP:             {},
	Signup:          {},
	ItemDetail:      {},
	VendorMismatch:  {},
	RestoreMismatch: {},
	PaymentOptions:  {},
	Wallet:          {},
	Orders:          {},
	RateOrder:       {},
}

func (t Type) Valid() bool {
	_, ok := known[t]
	return ok
}

type Props map[string]any

// State is the modal slot of a session.
type State struct {
	Type  Type  `json:"type,omitempty"`
	Props Props `json:"props,omitempty"`
}

// Open shows the named modal with props, discarding whatever was open.
func (s *State) Open(t Type, props Props) error {
	if !t.Valid() {
		return fmt.Errorf("unknown modal type %q", t)
	}

	s.Type = t
	s.Props = props

	return nil
}

func (s *State) Close() {
	s.Type = Closed
	s.Props = nil
}

func (s *State) IsOpen() bool {
	return s.Type != Closed
}

func (s *State) Current() (Type, Props) {
	return s.Type, s.Props
}
