package service_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Ready - Fresh Session", func(t *testing.T) {
		// Arrange
		sess := newTestSession()
		sessions, _ := storedSession(t, sess)
		checkoutService := service.NewCheckoutService(sessions, newDelivery())

		// Act
		result, err := checkoutService.ValidateCheckout(ctx, sess.ID)

		// Assert
		require.NoError(t, err)
		assert.False(t, result.Ready)
		assert.Equal(t, []string{
			models.CheckoutReasonCartEmpty,
			models.CheckoutReasonNotSignedIn,
			models.CheckoutReasonAddressMissing,
		}, result.Reasons)
		assert.Nil(t, result.Verdict)

		current, _ := sess.Modal.Current()
		assert.Equal(t, modal.Login, current)
	})

	t.Run("Not Ready - Address Outside Zones", func(t *testing.T) {
		// Arrange
		sess := newTestSession()
		sess.SignIn("user-1", "upstream")
		sess.Cart.AddToActivePack(cart.Item{ID: "jollof", Name: "Jollof", Price: 1500, Quantity: 1})
		sess.Location.SetManual("9 Garki Road", models.LocationDetails{State: "Abuja", LocalGovernment: "Garki"})
		sessions, _ := storedSession(t, sess)
		checkoutService := service.NewCheckoutService(sessions, newDelivery())

		// Act
		result, err := checkoutService.ValidateCheckout(ctx, sess.ID)

		// Assert
		require.NoError(t, err)
		assert.False(t, result.Ready)
		assert.Equal(t, []string{models.CheckoutReasonNotDeliverable}, result.Reasons)
		require.NotNil(t, result.Verdict)
		assert.False(t, result.Verdict.IsDeliverable)
		assert.False(t, sess.Modal.IsOpen())
	})

	t.Run("Ready - Uses Stored Verdict", func(t *testing.T) {
		// Arrange
		sess := newTestSession()
		sess.SignIn("user-1", "upstream")
		sess.Cart.AddToActivePack(cart.Item{ID: "jollof", Name: "Jollof", Price: 1500, Quantity: 2})
		sess.Cart.CreatePack()
		sess.Cart.AddToActivePack(cart.Item{ID: "suya", Name: "Suya", Price: 1000, Quantity: 1})
		sess.Location.SetManual("Lekki Phase 1", models.LocationDetails{State: "Lagos", LocalGovernment: "Eti-Osa", Locality: "Lekki"})
		sess.Location.SetVerdict(models.DeliveryVerdict{IsDeliverable: true, Message: "ok"})

		sessions, _ := storedSession(t, sess)
		delivery := mocks.NewMockDeliveryService(t)
		checkoutService := service.NewCheckoutService(sessions, delivery)

		// Act
		result, err := checkoutService.ValidateCheckout(ctx, sess.ID)

		// Assert
		require.NoError(t, err)
		assert.True(t, result.Ready)
		assert.Empty(t, result.Reasons)
		assert.Equal(t, models.CheckoutTotals{Packs: 2, Items: 3, Price: 4000}, result.Totals)
		delivery.AssertNotCalled(t, "VerifyDelivery", mock.Anything, mock.Anything)
	})
}
