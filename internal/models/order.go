package models

import "time"

const OrderStatusDelivered = "delivered"

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	Status       string      `json:"status"`
	TotalAmount  float64     `json:"totalAmount"`
	BusinessName string      `json:"businessName,omitempty"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderHistory splits orders the way the orders view shows them.
type OrderHistory struct {
	Ongoing   []Order `json:"ongoing"`
	Delivered []Order `json:"delivered"`
	Total     int     `json:"total"`
	Message   string  `json:"message,omitempty"`
}

type MealPlanEntry struct {
	Day      string `json:"day"`
	MealTime string `json:"mealTime"`
	Meal     string `json:"meal"`
}

type MealPlan struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Schedule  []MealPlanEntry `json:"schedule"`
}

type MealPlanList struct {
	MealPlans []MealPlan `json:"mealPlans"`
	Message   string     `json:"message,omitempty"`
}
