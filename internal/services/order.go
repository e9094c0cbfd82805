package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils"
	"github.com/google/uuid"
)

type OrderService interface {
	ListOrders(ctx context.Context, sessionID uuid.UUID) (*models.OrderHistory, error)
	ListMealPlans(ctx context.Context, sessionID uuid.UUID) (*models.MealPlanList, error)
}

const (
	noOrdersMessage    = "No orders found"
	noMealPlansMessage = "No meal plans found"
)

type orderService struct {
	sessions SessionService
	api      OrderAPI
}

func NewOrderService(sessions SessionService, api OrderAPI) OrderService {
	return &orderService{sessions: sessions, api: api}
}

// signedInUser returns the upstream identity of a session. The user id is
// validated here so a malformed id never reaches the upstream API.
func (s *orderService) signedInUser(ctx context.Context, sessionID uuid.UUID) (*session.Session, uuid.UUID, error) {

	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, uuid.Nil, err
	}

	if !sess.SignedIn() {
		return nil, uuid.Nil, errors.UnauthorizedError("Please sign in to see your orders")
	}

	userID, err := utils.ParseUUID("userId", sess.UserID)
	if err != nil {
		return nil, uuid.Nil, err
	}

	return sess, userID, nil
}

func (s *orderService) ListOrders(ctx context.Context, sessionID uuid.UUID) (*models.OrderHistory, error) {

	sess, userID, err := s.signedInUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orders, err := s.api.ListOrders(ctx, sess.UpstreamToken, userID)
	if err != nil {
		return nil, err
	}

	history := PartitionOrders(orders)

	middleware.LoggerFromContext(ctx).Debug("Orders listed",
		slog.Int("ongoing", len(history.Ongoing)),
		slog.Int("delivered", len(history.Delivered)),
	)

	return history, nil
}

// PartitionOrders splits orders into ongoing and delivered, keeping the
// upstream order within each group.
func PartitionOrders(orders []models.Order) *models.OrderHistory {

	history := &models.OrderHistory{
		Ongoing:   []models.Order{},
		Delivered: []models.Order{},
		Total:     len(orders),
	}

	for _, o := range orders {
		if strings.EqualFold(o.Status, models.OrderStatusDelivered) {
			history.Delivered = append(history.Delivered, o)
		} else {
			history.Ongoing = append(history.Ongoing, o)
		}
	}

	if len(orders) == 0 {
		history.Message = noOrdersMessage
	}

	return history
}

func (s *orderService) ListMealPlans(ctx context.Context, sessionID uuid.UUID) (*models.MealPlanList, error) {

	sess, userID, err := s.signedInUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	plans, err := s.api.ListMealPlans(ctx, sess.UpstreamToken, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].StartDate.Before(plans[j].StartDate)
	})

	list := &models.MealPlanList{MealPlans: plans}
	if len(plans) == 0 {
		list.MealPlans = []models.MealPlan{}
		list.Message = noMealPlansMessage
	}

	return list, nil
}
