package storefrontapi

import (
	"context"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type orderList struct {
	Orders []models.Order `json:"orders"`
}

type mealPlanList struct {
	MealPlans []models.MealPlan `json:"mealPlans"`
}

func (c *Client) ListOrders(ctx context.Context, token string, userID uuid.UUID) ([]models.Order, error) {
	resp, err := c.do(ctx, "orders.list", func(r *resty.Request) (*resty.Response, error) {
		return r.SetAuthToken(token).
			SetPathParam("userId", userID.String()).
			Get("/orders/user/{userId}")
	})
	if err != nil {
		return nil, err
	}

	var body orderList
	if err := decode(resp, &body); err != nil {
		return nil, err
	}

	if body.Orders == nil {
		return []models.Order{}, nil
	}
	return body.Orders, nil
}

func (c *Client) ListMealPlans(ctx context.Context, token string, userID uuid.UUID) ([]models.MealPlan, error) {
	resp, err := c.do(ctx, "mealplans.list", func(r *resty.Request) (*resty.Response, error) {
		return r.SetAuthToken(token).
			SetPathParam("userId", userID.String()).
			Get("/meal-plans/user/{userId}")
	})
	if err != nil {
		return nil, err
	}

	var body mealPlanList
	if err := decode(resp, &body); err != nil {
		return nil, err
	}

	if body.MealPlans == nil {
		return []models.MealPlan{}, nil
	}
	return body.MealPlans, nil
}
