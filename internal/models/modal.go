package models

type OpenModalRequest struct {
	Type  string         `json:"type" validate:"required"`
	Props map[string]any `json:"props,omitempty"`
}

type ModalResponse struct {
	Type   string         `json:"type,omitempty"`
	Props  map[string]any `json:"props,omitempty"`
	IsOpen bool           `json:"isOpen"`
}
