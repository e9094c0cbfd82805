package models

// AddCartItemRequest adds an item to PackID, or to the active pack when
// PackID is empty.
type AddCartItemRequest struct {
	PackID      string  `json:"packId,omitempty"`
	ID          string  `json:"id" validate:"required,max=100"`
	Name        string  `json:"name" validate:"required,max=200"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=1,lte=99"`
	Image       string  `json:"image,omitempty" validate:"omitempty,url"`
	VendorID    string  `json:"vendorId,omitempty"`
	ReplaceCart bool    `json:"replaceCart,omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=99"`
}
