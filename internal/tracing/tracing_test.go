package tracing_test

import (
	"context"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/config"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup(t *testing.T) {
	t.Run("Disabled - No-op Shutdown", func(t *testing.T) {
		// Act
		shutdown, err := tracing.Setup(context.Background(), &config.Otel{Enabled: false}, "test")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
		assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	})

	t.Run("Enabled - Provider Installed", func(t *testing.T) {
		// Arrange
		cfg := &config.Otel{Enabled: true, ServiceName: "storefront-test", ExporterEndpoint: "127.0.0.1:4318", SamplerRatio: 0.5}

		// Act
		shutdown, err := tracing.Setup(context.Background(), cfg, "test")

		// Assert
		require.NoError(t, err)
		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_ = shutdown(ctx)
		})

		_, span := otel.Tracer("test").Start(context.Background(), "probe")
		defer span.End()
		assert.True(t, span.SpanContext().TraceID().IsValid())
	})
}
