package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/zones"
)

type ZoneRepository interface {
	ListZones(ctx context.Context) ([]zones.Zone, error)
}

type zoneRepository struct {
	DB *sql.DB
}

func NewZoneRepo(db *sql.DB) ZoneRepository {
	return &zoneRepository{DB: db}
}

// ListZones reads every active zone row. A NULL locality covers the whole
// local government area.
func (r *zoneRepository) ListZones(ctx context.Context) ([]zones.Zone, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT state, local_government, COALESCE(locality, '')
		FROM delivery_zones
		WHERE active = TRUE
		ORDER BY state, local_government, locality`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying delivery zones: %w", err)
	}
	defer rows.Close()

	var result []zones.Zone
	for rows.Next() {
		var z zones.Zone
		if err := rows.Scan(&z.State, &z.LocalGovernment, &z.Locality); err != nil {
			return nil, fmt.Errorf("scanning delivery zone: %w", err)
		}
		result = append(result, z)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating delivery zones: %w", err)
	}

	return result, nil
}
