package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// Pinger is anything that can tell whether a remote dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	Upstream Pinger
}

func checks(cfg *config.Config, endpoints *Endpoints) []health.Config {

	list := []health.Config{
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		},
		{
			Name:      "storefront-api",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				if endpoints == nil || endpoints.Upstream == nil {
					return fmt.Errorf("storefront api client is not initialized")
				}
				if err := endpoints.Upstream.Ping(ctx); err != nil {
					return fmt.Errorf("failed to reach storefront api: %w", err)
				}
				return nil
			},
		},
	}

	if cfg.Zones.Source == "postgres" {
		list = append(list, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	return list
}

// NewHealthHandler reports Redis and the storefront API, plus Postgres when
// delivery zones are read from it. The API check is soft: the storefront
// still serves sessions and carts while it is down.
func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks(cfg, endpoints)...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
