package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/location"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/google/uuid"
)

type LocationService interface {
	GetLocation(ctx context.Context, sessionID uuid.UUID) (*location.State, error)
	SetAddress(ctx context.Context, sessionID uuid.UUID, req *models.SetAddressRequest) (*location.State, error)
	ResolveLocation(ctx context.Context, sessionID uuid.UUID, req *models.ResolveLocationRequest) (*location.State, error)
}

type locationService struct {
	sessions SessionService
	delivery DeliveryService
	resolver *location.Resolver
}

func NewLocationService(sessions SessionService, delivery DeliveryService, resolver *location.Resolver) LocationService {
	return &locationService{sessions: sessions, delivery: delivery, resolver: resolver}
}

func (s *locationService) GetLocation(ctx context.Context, sessionID uuid.UUID) (*location.State, error) {

	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &sess.Location, nil
}

// SetAddress stores a typed address and cancels any device lookup still running.
func (s *locationService) SetAddress(ctx context.Context, sessionID uuid.UUID, req *models.SetAddressRequest) (*location.State, error) {

	s.resolver.Supersede(sessionID.String())

	sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *session.Session) error {
		sess.Location.SetManual(req.Address, models.LocationDetails{
			State:           req.State,
			LocalGovernment: req.LocalGovernment,
			Locality:        req.Locality,
		})
		return s.refreshVerdict(ctx, sess)
	})
	if err != nil {
		return nil, err
	}

	return &sess.Location, nil
}

func (s *locationService) ResolveLocation(ctx context.Context, sessionID uuid.UUID, req *models.ResolveLocationRequest) (*location.State, error) {

	logger := middleware.LoggerFromContext(ctx)

	fix := location.Fix{Coordinates: req.Coordinates, Failure: location.FailureCode(req.ErrorCode)}

	var updated *session.Session

	_, err := s.resolver.ResolveCurrentLocation(ctx, sessionID.String(), fix, func(res location.Resolution) error {
		sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *session.Session) error {
			sess.Location.Apply(res)
			if res.Error != "" {
				return nil
			}
			return s.refreshVerdict(ctx, sess)
		})
		updated = sess
		return err
	})

	switch {
	case stdErrors.Is(err, location.ErrSuperseded):
		logger.Info("Location resolution superseded by a newer request")
		return nil, errors.ConflictError("A newer location request replaced this one").WithError(err)
	case err != nil:
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}
		logger.Error("Location resolution failed", slog.Any("error", err))
		return nil, errors.ThirdPartyError("We couldn't find your address. Please enter it manually.").WithError(err)
	}

	return &updated.Location, nil
}

// refreshVerdict recomputes whether the session's address is deliverable.
func (s *locationService) refreshVerdict(ctx context.Context, sess *session.Session) error {
	if !sess.Location.Resolved() {
		sess.Location.Verdict = nil
		return nil
	}

	verdict, err := s.delivery.VerifyDelivery(ctx, sess.Location.Details)
	if err != nil {
		return err
	}

	sess.Location.SetVerdict(verdict)
	return nil
}
