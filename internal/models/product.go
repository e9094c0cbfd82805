package models

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category,omitempty"`
	BusinessID  string   `json:"businessId,omitempty"`
	Business    string   `json:"businessName,omitempty"`
	Available   bool     `json:"available"`
	Tags        []string `json:"tags,omitempty"`
}

type ProductListParams struct {
	Page       int    `json:"page" validate:"gte=1"`
	Limit      int    `json:"limit" validate:"gte=1,lte=100"`
	State      string `json:"state,omitempty"`
	City       string `json:"city,omitempty"`
	Categories string `json:"categories,omitempty"`
	Search     string `json:"search,omitempty" validate:"max=100"`
}

type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Message  string    `json:"message,omitempty"`
}

type Business struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BusinessType string  `json:"businessType,omitempty"`
	Category     string  `json:"category,omitempty"`
	Subcategory  string  `json:"subcategory,omitempty"`
	City         string  `json:"city,omitempty"`
	State        string  `json:"state,omitempty"`
	Logo         string  `json:"logo,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	IsOpen       bool    `json:"isOpen"`
}

type BusinessListParams struct {
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	Category     string `json:"category,omitempty"`
	Subcategory  string `json:"subcategory,omitempty"`
}

type BusinessList struct {
	Businesses []Business `json:"businesses"`
	Message    string     `json:"message,omitempty"`
}
