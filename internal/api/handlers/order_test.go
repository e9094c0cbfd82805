package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListOrders(t *testing.T) {
	t.Run("Success - Partitioned History", func(t *testing.T) {
		// Arrange
		mockOrders := mocks.NewMockOrderService(t)
		h := handlers.NewOrderHandler(mockOrders)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		history := &models.OrderHistory{
			Ongoing:   []models.Order{{ID: "o-1", Status: "preparing", CreatedAt: time.Now()}},
			Delivered: []models.Order{{ID: "o-2", Status: "delivered", CreatedAt: time.Now()}},
			Total:     2,
		}
		mockOrders.On("ListOrders", mock.Anything, sessionID).Return(history, nil).Once()

		// Act
		h.ListOrders()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.OrderHistory
		testutils.DecodeData(t, rr, &got)
		assert.Len(t, got.Ongoing, 1)
		assert.Len(t, got.Delivered, 1)
		assert.Equal(t, 2, got.Total)
	})

	t.Run("Success - Empty History", func(t *testing.T) {
		// Arrange
		mockOrders := mocks.NewMockOrderService(t)
		h := handlers.NewOrderHandler(mockOrders)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		mockOrders.On("ListOrders", mock.Anything, sessionID).
			Return(&models.OrderHistory{Ongoing: []models.Order{}, Delivered: []models.Order{}, Message: "No orders found"}, nil).Once()

		// Act
		h.ListOrders()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.OrderHistory
		testutils.DecodeData(t, rr, &got)
		assert.Equal(t, "No orders found", got.Message)
	})

	t.Run("Failure - Not Signed In", func(t *testing.T) {
		// Arrange
		mockOrders := mocks.NewMockOrderService(t)
		h := handlers.NewOrderHandler(mockOrders)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		mockOrders.On("ListOrders", mock.Anything, sessionID).
			Return(nil, appErrors.UnauthorizedError("Please sign in to see your orders")).Once()

		// Act
		h.ListOrders()(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListMealPlans(t *testing.T) {
	t.Run("Success - Listed", func(t *testing.T) {
		// Arrange
		mockOrders := mocks.NewMockOrderService(t)
		h := handlers.NewOrderHandler(mockOrders)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/meal-plans", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		mockOrders.On("ListMealPlans", mock.Anything, sessionID).
			Return(&models.MealPlanList{MealPlans: []models.MealPlan{{ID: "mp-1", Name: "Weekday Lunch"}}}, nil).Once()

		// Act
		h.ListMealPlans()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Upstream Error", func(t *testing.T) {
		// Arrange
		mockOrders := mocks.NewMockOrderService(t)
		h := handlers.NewOrderHandler(mockOrders)
		sessionID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/meal-plans", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		mockOrders.On("ListMealPlans", mock.Anything, sessionID).
			Return(nil, appErrors.ThirdPartyError("Failed to load meal plans")).Once()

		// Act
		h.ListMealPlans()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
