package models

// Reasons a session cannot proceed to payment yet.
const (
	CheckoutReasonCartEmpty      = "cart_empty"
	CheckoutReasonNotSignedIn    = "not_signed_in"
	CheckoutReasonAddressMissing = "address_missing"
	CheckoutReasonNotDeliverable = "not_deliverable"
)

type CheckoutTotals struct {
	Packs int     `json:"packs"`
	Items int     `json:"items"`
	Price float64 `json:"price"`
}

type CheckoutValidation struct {
	Ready   bool             `json:"ready"`
	Reasons []string         `json:"reasons"`
	Verdict *DeliveryVerdict `json:"verdict,omitempty"`
	Totals  CheckoutTotals   `json:"totals"`
}
