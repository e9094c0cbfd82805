package handlers

import (
	"log/slog"
	"net/http"

	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders godoc
//	@Summary		List the signed-in user's orders
//	@Description	Orders are split into ongoing and delivered. No orders is a 200 with a message.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	models.OrderHistory		"Order history"
//	@Failure		400	{object}	response.ErrorResponse	"Malformed user id"
//	@Failure		401	{object}	response.ErrorResponse	"Not signed in"
//	@Failure		502	{object}	response.ErrorResponse	"Upstream error"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		history, err := h.orderService.ListOrders(r.Context(), sessionID)
		if err != nil {
			logger.Warn("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Orders listed successfully", slog.Int("total", history.Total))
		response.Success(w, http.StatusOK, history)
	}
}

// ListMealPlans godoc
//	@Summary		List the signed-in user's meal plans
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	models.MealPlanList		"Meal plans sorted by start date"
//	@Failure		401	{object}	response.ErrorResponse	"Not signed in"
//	@Failure		502	{object}	response.ErrorResponse	"Upstream error"
//	@Security		BearerAuth
//	@Router			/meal-plans [get]
func (h *OrderHandler) ListMealPlans() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := sessionFromRequest(w, r)
		if !ok {
			return
		}

		plans, err := h.orderService.ListMealPlans(r.Context(), sessionID)
		if err != nil {
			logger.Warn("Failed to list meal plans", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, plans)
	}
}
