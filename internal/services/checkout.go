package service

import (
	"context"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/google/uuid"
)

type CheckoutService interface {
	ValidateCheckout(ctx context.Context, sessionID uuid.UUID) (*models.CheckoutValidation, error)
}

type checkoutService struct {
	sessions SessionService
	delivery DeliveryService
}

func NewCheckoutService(sessions SessionService, delivery DeliveryService) CheckoutService {
	return &checkoutService{sessions: sessions, delivery: delivery}
}

// ValidateCheckout reports whether the session may go on to payment. It never
// places an order. A signed-out session gets the login modal opened.
func (s *checkoutService) ValidateCheckout(ctx context.Context, sessionID uuid.UUID) (*models.CheckoutValidation, error) {

	result := &models.CheckoutValidation{Reasons: []string{}}

	_, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *session.Session) error {
		result.Totals = models.CheckoutTotals{
			Packs: len(sess.Cart.Packs),
			Items: sess.Cart.TotalItems(),
			Price: sess.Cart.TotalPrice(),
		}

		if sess.Cart.IsEmpty() {
			result.Reasons = append(result.Reasons, models.CheckoutReasonCartEmpty)
		}

		if !sess.SignedIn() {
			result.Reasons = append(result.Reasons, models.CheckoutReasonNotSignedIn)
			if err := sess.Modal.Open(modal.Login, modal.Props{"reason": "checkout"}); err != nil {
				return err
			}
		}

		if !sess.Location.Resolved() {
			result.Reasons = append(result.Reasons, models.CheckoutReasonAddressMissing)
			return nil
		}

		if sess.Location.Verdict == nil {
			verdict, err := s.delivery.VerifyDelivery(ctx, sess.Location.Details)
			if err != nil {
				return err
			}
			sess.Location.SetVerdict(verdict)
		}

		v := *sess.Location.Verdict
		result.Verdict = &v
		if !v.IsDeliverable {
			result.Reasons = append(result.Reasons, models.CheckoutReasonNotDeliverable)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Ready = len(result.Reasons) == 0

	return result, nil
}
