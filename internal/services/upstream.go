package service

import (
	"context"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/google/uuid"
)

// CatalogAPI is the product and business half of the upstream API.
type CatalogAPI interface {
	ListProducts(ctx context.Context, params models.ProductListParams) (*models.ProductList, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBusinesses(ctx context.Context, params models.BusinessListParams) (*models.BusinessList, error)
}

type OrderAPI interface {
	ListOrders(ctx context.Context, token string, userID uuid.UUID) ([]models.Order, error)
	ListMealPlans(ctx context.Context, token string, userID uuid.UUID) ([]models.MealPlan, error)
}

type AuthAPI interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResult, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}
