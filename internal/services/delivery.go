package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/food-delivery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/zones"
)

type DeliveryService interface {
	VerifyDelivery(ctx context.Context, details models.LocationDetails) (models.DeliveryVerdict, error)
	// ReloadZones swaps in the zone table from the database. It is a no-op
	// when zones come from the built-in table.
	ReloadZones(ctx context.Context) error
}

type deliveryService struct {
	verifier *zones.TableVerifier
	repo     repository.ZoneRepository
	observe  func(deliverable bool)
}

// NewDeliveryService checks addresses against verifier. repo may be nil.
func NewDeliveryService(verifier *zones.TableVerifier, repo repository.ZoneRepository, observe func(deliverable bool)) DeliveryService {
	if observe == nil {
		observe = func(bool) {}
	}
	return &deliveryService{verifier: verifier, repo: repo, observe: observe}
}

func (s *deliveryService) VerifyDelivery(ctx context.Context, details models.LocationDetails) (models.DeliveryVerdict, error) {

	verdict, err := s.verifier.Verify(ctx, details)
	if err != nil {
		return models.DeliveryVerdict{}, err
	}

	s.observe(verdict.IsDeliverable)

	middleware.LoggerFromContext(ctx).Debug("Delivery verdict",
		slog.String("state", details.State),
		slog.String("localGovernment", details.LocalGovernment),
		slog.Bool("deliverable", verdict.IsDeliverable),
	)

	return verdict, nil
}

func (s *deliveryService) ReloadZones(ctx context.Context) error {

	if s.repo == nil {
		return nil
	}

	rows, err := s.repo.ListZones(ctx)
	if err != nil {
		return errors.DatabaseError("Failed to load delivery zones").WithError(err)
	}

	table := zones.NewTable(rows)
	if table.Len() == 0 {
		return errors.DatabaseError("Delivery zone table is empty").WithError(fmt.Errorf("%d rows, none usable", len(rows)))
	}

	s.verifier.Replace(table)

	middleware.LoggerFromContext(ctx).Info("Delivery zones loaded", slog.Int("states", len(table.States())), slog.Int("areas", table.Len()))

	return nil
}
