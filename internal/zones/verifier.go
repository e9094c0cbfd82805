// Package zones decides whether an address falls inside the delivery area.
package zones

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
)

type Verifier interface {
	Verify(ctx context.Context, details models.LocationDetails) (models.DeliveryVerdict, error)
}

type TableVerifier struct {
	mu    sync.RWMutex
	table *Table
}

func NewVerifier(table *Table) *TableVerifier {
	return &TableVerifier{table: table}
}

// Replace swaps the lookup table, e.g. after a reload from the database.
func (v *TableVerifier) Replace(table *Table) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.table = table
}

// Verify walks state, local government and locality in that order. The first
// level that does not match decides the verdict. An empty locality is treated
// as deliverable once the area matches.
func (v *TableVerifier) Verify(ctx context.Context, details models.LocationDetails) (models.DeliveryVerdict, error) {
	stateName := strings.TrimSpace(details.State)
	areaName := strings.TrimSpace(details.LocalGovernment)
	localityName := strings.TrimSpace(details.Locality)

	if stateName == "" {
		return models.DeliveryVerdict{}, errors.AddValidationError("state", "is required")
	}
	if areaName == "" {
		return models.DeliveryVerdict{}, errors.AddValidationError("localGovernment", "is required")
	}

	v.mu.RLock()
	table := v.table
	v.mu.RUnlock()

	st, ok := table.states[normalize(stateName)]
	if !ok {
		return models.DeliveryVerdict{
			IsDeliverable: false,
			Message:       fmt.Sprintf("Sorry, we don't deliver to %s yet.", stateName),
		}, nil
	}

	ar, ok := st.areas[normalize(areaName)]
	if !ok {
		return models.DeliveryVerdict{
			IsDeliverable: false,
			Message:       fmt.Sprintf("Sorry, we don't deliver to %s in %s yet.", areaName, stateName),
		}, nil
	}

	if localityName == "" || ar.wholeArea {
		return models.DeliveryVerdict{
			IsDeliverable: true,
			Message:       fmt.Sprintf("Great news! We deliver to %s, %s.", ar.name, st.name),
		}, nil
	}

	locality, ok := ar.localities[normalize(localityName)]
	if !ok {
		return models.DeliveryVerdict{
			IsDeliverable: false,
			Message:       fmt.Sprintf("Sorry, we don't deliver to %s in %s yet.", localityName, areaName),
		}, nil
	}

	return models.DeliveryVerdict{
		IsDeliverable: true,
		Message:       fmt.Sprintf("Great news! We deliver to %s, %s, %s.", locality, ar.name, st.name),
	}, nil
}
