package session_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInOut(t *testing.T) {
	s := session.New(uuid.New(), time.Now())
	assert.False(t, s.SignedIn())

	s.SignIn("u1", "up-token")
	assert.True(t, s.SignedIn())

	s.Cart.AddToActivePack(cart.Item{ID: "i1", Name: "Amala", Price: 1500, Quantity: 1})
	require.NoError(t, s.Modal.Open(modal.Wallet, nil))

	s.SignOut()

	assert.False(t, s.SignedIn())
	assert.False(t, s.Modal.IsOpen())
	assert.Equal(t, 1, s.Cart.TotalItems())
}

func TestDecodedSessionIsUsable(t *testing.T) {
	var s session.Session
	require.NoError(t, json.Unmarshal([]byte(`{"id":"`+uuid.NewString()+`"}`), &s))

	s.Normalize()

	require.NotNil(t, s.Cart)
	assert.True(t, s.Cart.IsEmpty())
	assert.NotEmpty(t, s.Cart.AddToActivePack(cart.Item{ID: "i1", Price: 100, Quantity: 1}))
}
