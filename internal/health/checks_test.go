package health

import (
	"context"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func checkNames(cfg *config.Config) []string {
	var names []string
	for _, c := range checks(cfg, &Endpoints{}) {
		names = append(names, c.Name)
	}
	return names
}

func TestChecks(t *testing.T) {
	t.Run("Static Zones Skip Database", func(t *testing.T) {
		cfg := &config.Config{Zones: config.Zones{Source: "static"}}

		assert.Equal(t, []string{"redis", "storefront-api"}, checkNames(cfg))
	})

	t.Run("Postgres Zones Add Database", func(t *testing.T) {
		cfg := &config.Config{Zones: config.Zones{Source: "postgres"}}

		assert.Contains(t, checkNames(cfg), "database")
	})

	t.Run("Upstream Ping Error Is Reported", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{Zones: config.Zones{Source: "static"}}
		down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

		var upstream func(context.Context) error
		for _, c := range checks(cfg, &Endpoints{Upstream: down}) {
			if c.Name == "storefront-api" {
				upstream = c.Check
				assert.True(t, c.SkipOnErr)
			}
		}
		require.NotNil(t, upstream)

		// Act
		err := upstream(context.Background())

		// Assert
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("Missing Client Fails", func(t *testing.T) {
		cfg := &config.Config{Zones: config.Zones{Source: "static"}}

		for _, c := range checks(cfg, nil) {
			if c.Name == "storefront-api" {
				assert.Error(t, c.Check(context.Background()))
			}
		}
	})
}
