package cart_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("pack-%d", n)
	}
}

func newCart() *cart.Cart {
	return cart.New(cart.WithIDGenerator(sequentialIDs()))
}

func jollof(qty int) cart.Item {
	return cart.Item{ID: "jollof", Name: "Jollof Rice", Price: 2500, Quantity: qty, VendorID: "mama-put"}
}

func chicken(qty int) cart.Item {
	return cart.Item{ID: "chicken", Name: "Grilled Chicken", Price: 1800.5, Quantity: qty, VendorID: "mama-put"}
}

func TestCreatePack(t *testing.T) {
	t.Run("Success - New Pack Becomes Active", func(t *testing.T) {
		// Arrange
		c := newCart()

		// Act
		first := c.CreatePack()
		second := c.CreatePack()

		// Assert
		assert.Equal(t, "pack-1", first)
		assert.Equal(t, "pack-2", second)
		assert.Equal(t, second, c.ActivePackID)
		require.Len(t, c.Packs, 2)
		assert.Empty(t, c.Packs[1].Items)
	})

	t.Run("Success - Generator Collision Is Skipped", func(t *testing.T) {
		ids := []string{"a", "a", "b"}
		i := 0
		c := cart.New(cart.WithIDGenerator(func() string {
			id := ids[i]
			i++
			return id
		}))

		c.CreatePack()
		second := c.CreatePack()

		assert.Equal(t, "b", second)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("Success - Appends In Insertion Order", func(t *testing.T) {
		c := newCart()
		packID := c.CreatePack()

		c.AddItem(packID, jollof(1))
		c.AddItem(packID, chicken(2))

		pack, ok := c.Pack(packID)
		require.True(t, ok)
		require.Len(t, pack.Items, 2)
		assert.Equal(t, "jollof", pack.Items[0].ID)
		assert.Equal(t, "chicken", pack.Items[1].ID)
	})

	t.Run("Success - Re-adding Merges Quantities", func(t *testing.T) {
		c := newCart()
		packID := c.CreatePack()

		c.AddItem(packID, jollof(1))
		c.AddItem(packID, jollof(2))

		pack, _ := c.Pack(packID)
		require.Len(t, pack.Items, 1)
		assert.Equal(t, 3, pack.Items[0].Quantity)
	})

	t.Run("Success - Same Item Id In Different Packs Stays Separate", func(t *testing.T) {
		c := newCart()
		first := c.CreatePack()
		second := c.CreatePack()

		c.AddItem(first, jollof(1))
		c.AddItem(second, jollof(4))

		p1, _ := c.Pack(first)
		p2, _ := c.Pack(second)
		assert.Equal(t, 1, p1.Items[0].Quantity)
		assert.Equal(t, 4, p2.Items[0].Quantity)
		assert.Equal(t, 5, c.TotalItems())
	})

	t.Run("No-op - Unknown Pack", func(t *testing.T) {
		c := newCart()
		c.CreatePack()

		c.AddItem("missing", jollof(1))

		assert.Equal(t, 0, c.TotalItems())
	})

	t.Run("No-op - Invalid Item", func(t *testing.T) {
		c := newCart()
		packID := c.CreatePack()

		c.AddItem(packID, jollof(0))
		c.AddItem(packID, cart.Item{ID: "free", Price: -1, Quantity: 1})
		c.AddItem(packID, cart.Item{Name: "no id", Quantity: 1})

		assert.True(t, c.IsEmpty())
	})
}

func TestAddToActivePack(t *testing.T) {
	t.Run("Success - Creates Pack When Cart Is Empty", func(t *testing.T) {
		c := newCart()

		packID := c.AddToActivePack(jollof(2))

		assert.Equal(t, "pack-1", packID)
		assert.Equal(t, packID, c.ActivePackID)
		assert.Equal(t, 2, c.TotalItems())
	})

	t.Run("Success - Uses Existing Active Pack", func(t *testing.T) {
		c := newCart()
		c.CreatePack()
		active := c.CreatePack()

		packID := c.AddToActivePack(chicken(1))

		assert.Equal(t, active, packID)
		assert.Len(t, c.Packs, 2)
		p, _ := c.Pack(active)
		assert.Len(t, p.Items, 1)
	})

	t.Run("Success - Recovers From Dangling Active Reference", func(t *testing.T) {
		c := newCart()
		c.ActivePackID = "ghost"

		packID := c.AddToActivePack(jollof(1))

		assert.NotEqual(t, "ghost", packID)
		_, ok := c.Pack(packID)
		assert.True(t, ok)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Success - Positive Quantity Keeps Item", func(t *testing.T) {
		c := newCart()
		packID := c.AddToActivePack(jollof(3))

		c.UpdateQuantity(packID, "jollof", 1)

		p, _ := c.Pack(packID)
		require.Len(t, p.Items, 1)
		assert.Equal(t, 1, p.Items[0].Quantity)
	})

	t.Run("Success - Zero Removes Item", func(t *testing.T) {
		c := newCart()
		packID := c.AddToActivePack(jollof(3))
		c.AddItem(packID, chicken(1))

		c.UpdateQuantity(packID, "jollof", 0)

		p, _ := c.Pack(packID)
		require.Len(t, p.Items, 1)
		assert.Equal(t, "chicken", p.Items[0].ID)
	})

	t.Run("Success - Negative Removes Item", func(t *testing.T) {
		c := newCart()
		packID := c.AddToActivePack(jollof(3))

		c.UpdateQuantity(packID, "jollof", -4)

		assert.True(t, c.IsEmpty())
	})

	t.Run("No-op - Unknown Pack Or Item", func(t *testing.T) {
		c := newCart()
		packID := c.AddToActivePack(jollof(3))

		c.UpdateQuantity("missing", "jollof", 0)
		c.UpdateQuantity(packID, "missing", 0)

		assert.Equal(t, 3, c.TotalItems())
	})
}

func TestRemovePack(t *testing.T) {
	t.Run("Success - Removing Active Pack Reassigns To Latest Remaining", func(t *testing.T) {
		c := newCart()
		first := c.CreatePack()
		second := c.CreatePack()
		third := c.CreatePack()

		c.RemovePack(third)

		assert.Equal(t, second, c.ActivePackID)
		assert.Len(t, c.Packs, 2)
		assert.Equal(t, first, c.Packs[0].ID)
	})

	t.Run("Success - Removing Last Pack Clears Active", func(t *testing.T) {
		c := newCart()
		only := c.AddToActivePack(jollof(1))

		c.RemovePack(only)

		assert.Empty(t, c.ActivePackID)
		assert.Empty(t, c.Packs)
		assert.Equal(t, 0, c.TotalItems())
	})

	t.Run("Success - Removing Inactive Pack Keeps Active", func(t *testing.T) {
		c := newCart()
		first := c.CreatePack()
		second := c.CreatePack()

		c.RemovePack(first)

		assert.Equal(t, second, c.ActivePackID)
	})

	t.Run("No-op - Unknown Pack", func(t *testing.T) {
		c := newCart()
		active := c.CreatePack()

		c.RemovePack("missing")

		assert.Equal(t, active, c.ActivePackID)
		assert.Len(t, c.Packs, 1)
	})
}

func TestSetActivePackAndClear(t *testing.T) {
	c := newCart()
	first := c.CreatePack()
	c.CreatePack()

	c.SetActivePack(first)
	assert.Equal(t, first, c.ActivePackID)

	c.SetActivePack("missing")
	assert.Equal(t, first, c.ActivePackID)

	c.Clear()
	assert.Empty(t, c.Packs)
	assert.Empty(t, c.ActivePackID)
}

func TestTotals(t *testing.T) {
	c := newCart()
	first := c.AddToActivePack(jollof(2))
	c.AddItem(first, chicken(1))
	second := c.CreatePack()
	c.AddItem(second, jollof(1))

	assert.Equal(t, 4, c.TotalItems())
	assert.InDelta(t, 2*2500+1800.5+2500, c.TotalPrice(), 0.0001)

	summary := c.Summary()
	assert.Equal(t, 4, summary.TotalItems)
	require.Len(t, summary.Packs, 2)
	assert.InDelta(t, 6800.5, summary.Packs[0].Total, 0.0001)
	assert.Equal(t, 3, summary.Packs[0].ItemCount)
	assert.Equal(t, second, summary.ActivePackID)

	c.UpdateQuantity(first, "chicken", 0)
	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 7500, c.TotalPrice(), 0.0001)
}

func TestVendors(t *testing.T) {
	c := newCart()
	packID := c.AddToActivePack(jollof(1))
	c.AddItem(packID, cart.Item{ID: "suya", Name: "Suya", Price: 1000, Quantity: 1, VendorID: "mallam"})
	c.AddItem(packID, chicken(1))
	c.AddItem(packID, cart.Item{ID: "water", Name: "Water", Price: 200, Quantity: 1})

	assert.Equal(t, []string{"mama-put", "mallam"}, c.Vendors())
}

// Random operation sequences must keep totals equal to a recount over the
// items that are present, and the active reference must stay valid.
func TestInvariantsUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := newCart()
	itemIDs := []string{"a", "b", "c", "d"}

	for step := 0; step < 2000; step++ {
		packIDs := make([]string, 0, len(c.Packs)+1)
		for _, p := range c.Packs {
			packIDs = append(packIDs, p.ID)
		}
		packIDs = append(packIDs, "missing")
		packID := packIDs[rng.Intn(len(packIDs))]
		itemID := itemIDs[rng.Intn(len(itemIDs))]

		switch rng.Intn(5) {
		case 0:
			c.CreatePack()
		case 1:
			c.AddItem(packID, cart.Item{ID: itemID, Name: itemID, Price: float64(rng.Intn(50)), Quantity: rng.Intn(3) + 1})
		case 2:
			c.AddToActivePack(cart.Item{ID: itemID, Name: itemID, Price: 10, Quantity: 1})
		case 3:
			c.UpdateQuantity(packID, itemID, rng.Intn(5)-1)
		case 4:
			c.RemovePack(packID)
		}

		wantItems := 0
		wantPrice := 0.0
		for _, p := range c.Packs {
			for _, it := range p.Items {
				require.GreaterOrEqual(t, it.Quantity, 1, "zero-quantity item retained at step %d", step)
				wantItems += it.Quantity
				wantPrice += it.Price * float64(it.Quantity)
			}
		}
		require.Equal(t, wantItems, c.TotalItems())
		require.InDelta(t, wantPrice, c.TotalPrice(), 0.0001)

		if c.ActivePackID != "" {
			_, ok := c.Pack(c.ActivePackID)
			require.True(t, ok, "active pack %q missing at step %d", c.ActivePackID, step)
		} else {
			require.Empty(t, c.Packs)
		}
	}
}
