package modal_test

import (
	"testing"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("Success - Opening Replaces The Current Modal", func(t *testing.T) {
		// Arrange
		var state modal.State
		require.NoError(t, state.Open(modal.Login, modal.Props{"redirect": "/checkout"}))

		// Act
		err := state.Open(modal.OTP, modal.Props{"phone": "+2348012345678"})

		// Assert
		require.NoError(t, err)
		current, props := state.Current()
		assert.Equal(t, modal.OTP, current)
		assert.Equal(t, modal.Props{"phone": "+2348012345678"}, props)
		assert.NotContains(t, props, "redirect")
	})

	t.Run("Failure - Unknown Type Leaves State Untouched", func(t *testing.T) {
		var state modal.State
		require.NoError(t, state.Open(modal.Wallet, nil))

		err := state.Open("checkout-drawer", modal.Props{"x": 1})

		require.Error(t, err)
		assert.Equal(t, modal.Wallet, state.Type)
	})

	t.Run("Failure - Closed Is Not Openable", func(t *testing.T) {
		var state modal.State

		err := state.Open(modal.Closed, nil)

		assert.Error(t, err)
		assert.False(t, state.IsOpen())
	})
}

func TestClose(t *testing.T) {
	var state modal.State
	require.NoError(t, state.Open(modal.ItemDetail, modal.Props{"productId": "p-1"}))
	assert.True(t, state.IsOpen())

	state.Close()

	current, props := state.Current()
	assert.Equal(t, modal.Closed, current)
	assert.Nil(t, props)
	assert.False(t, state.IsOpen())

	state.Close()
	assert.False(t, state.IsOpen())
}

func TestValid(t *testing.T) {
	for _, tt := range []modal.Type{
		modal.Login, modal.OTP, modal.Signup, modal.ItemDetail, modal.VendorMismatch,
		modal.RestoreMismatch, modal.PaymentOptions, modal.Wallet, modal.Orders, modal.RateOrder,
	} {
		assert.True(t, tt.Valid(), string(tt))
	}
	assert.False(t, modal.Type("cart").Valid())
}
