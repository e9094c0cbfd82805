// Package cart holds the pack/item state machine behind the storefront basket.
//
// All transitions are synchronous and never fail: operations that name an
// unknown pack or item leave the cart untouched.
package cart

import (
	"github.com/google/uuid"
)

type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
	VendorID string  `json:"vendorId,omitempty"`
}

// Pack is one sub-order. Items keep insertion order.
type Pack struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
}

type Cart struct {
	Packs        []Pack `json:"packs"`
	ActivePackID string `json:"activePackId,omitempty"`

	newID func() string
}

type Option func(*Cart)

// WithIDGenerator overrides how pack identifiers are minted.
func WithIDGenerator(gen func() string) Option {
	return func(c *Cart) {
		c.newID = gen
	}
}

func New(opts ...Option) *Cart {
	c := &Cart{Packs: []Pack{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetIDGenerator replaces the generator on a cart that was decoded from storage.
func (c *Cart) SetIDGenerator(gen func() string) {
	c.newID = gen
}

func (c *Cart) generateID() string {
	if c.newID != nil {
		return c.newID()
	}
	return uuid.NewString()
}

func (c *Cart) packIndex(packID string) int {
	for i := range c.Packs {
		if c.Packs[i].ID == packID {
			return i
		}
	}
	return -1
}

func (p *Pack) itemIndex(itemID string) int {
	for i := range p.Items {
		if p.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// CreatePack appends an empty pack, makes it active and returns its id.
func (c *Cart) CreatePack() string {
	id := c.generateID()
	for c.packIndex(id) >= 0 {
		id = c.generateID()
	}

	c.Packs = append(c.Packs, Pack{ID: id, Items: []Item{}})
	c.ActivePackID = id

	return id
}

// AddItem adds item to the pack. An item already present in the pack has the
// new quantity merged into it; name, price and image take the latest values.
func (c *Cart) AddItem(packID string, item Item) {
	if item.Quantity < 1 || item.Price < 0 || item.ID == "" {
		return
	}

	idx := c.packIndex(packID)
	if idx < 0 {
		return
	}

	pack := &c.Packs[idx]
	if i := pack.itemIndex(item.ID); i >= 0 {
		existing := &pack.Items[i]
		existing.Quantity += item.Quantity
		existing.Name = item.Name
		existing.Price = item.Price
		if item.Image != "" {
			existing.Image = item.Image
		}
		if item.VendorID != "" {
			existing.VendorID = item.VendorID
		}
		return
	}

	pack.Items = append(pack.Items, item)
}

// AddToActivePack makes sure an active pack exists and adds item to it in a
// single transition. It returns the id of the pack that received the item.
func (c *Cart) AddToActivePack(item Item) string {
	if item.Quantity < 1 || item.Price < 0 || item.ID == "" {
		return c.ActivePackID
	}

	if c.ActivePackID == "" || c.packIndex(c.ActivePackID) < 0 {
		c.CreatePack()
	}

	c.AddItem(c.ActivePackID, item)

	return c.ActivePackID
}

// UpdateQuantity sets the quantity of an item. Zero or negative removes it.
func (c *Cart) UpdateQuantity(packID, itemID string, quantity int) {
	idx := c.packIndex(packID)
	if idx < 0 {
		return
	}

	pack := &c.Packs[idx]
	i := pack.itemIndex(itemID)
	if i < 0 {
		return
	}

	if quantity <= 0 {
		pack.Items = append(pack.Items[:i], pack.Items[i+1:]...)
		return
	}

	pack.Items[i].Quantity = quantity
}

func (c *Cart) RemoveItem(packID, itemID string) {
	c.UpdateQuantity(packID, itemID, 0)
}

// RemovePack drops a pack and its items. When the active pack goes, the most
// recent remaining pack becomes active.
func (c *Cart) RemovePack(packID string) {
	idx := c.packIndex(packID)
	if idx < 0 {
		return
	}

	c.Packs = append(c.Packs[:idx], c.Packs[idx+1:]...)

	if c.ActivePackID != packID {
		return
	}

	if len(c.Packs) == 0 {
		c.ActivePackID = ""
		return
	}

	c.ActivePackID = c.Packs[len(c.Packs)-1].ID
}

func (c *Cart) SetActivePack(packID string) {
	if c.packIndex(packID) < 0 {
		return
	}
	c.ActivePackID = packID
}

func (c *Cart) Clear() {
	c.Packs = []Pack{}
	c.ActivePackID = ""
}

func (c *Cart) Pack(packID string) (Pack, bool) {
	idx := c.packIndex(packID)
	if idx < 0 {
		return Pack{}, false
	}
	return c.Packs[idx], true
}

func (c *Cart) IsEmpty() bool {
	return c.TotalItems() == 0
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, pack := range c.Packs {
		for _, item := range pack.Items {
			total += item.Quantity
		}
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, pack := range c.Packs {
		total += pack.Total()
	}
	return total
}

func (p Pack) Total() float64 {
	var total float64
	for _, item := range p.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (p Pack) ItemCount() int {
	count := 0
	for _, item := range p.Items {
		count += item.Quantity
	}
	return count
}

// Vendors lists the distinct vendor ids in the cart in first-seen order.
func (c *Cart) Vendors() []string {
	seen := make(map[string]struct{})
	var vendors []string

	for _, pack := range c.Packs {
		for _, item := range pack.Items {
			if item.VendorID == "" {
				continue
			}
			if _, ok := seen[item.VendorID]; ok {
				continue
			}
			seen[item.VendorID] = struct{}{}
			vendors = append(vendors, item.VendorID)
		}
	}

	return vendors
}

// Summary is the read model returned to clients; totals are computed at the
// moment it is built.
type Summary struct {
	Packs        []PackSummary `json:"packs"`
	ActivePackID string        `json:"activePackId,omitempty"`
	TotalItems   int           `json:"totalItems"`
	TotalPrice   float64       `json:"totalPrice"`
}

type PackSummary struct {
	ID        string  `json:"id"`
	Items     []Item  `json:"items"`
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
}

func (c *Cart) Summary() Summary {
	packs := make([]PackSummary, 0, len(c.Packs))
	for _, pack := range c.Packs {
		items := make([]Item, len(pack.Items))
		copy(items, pack.Items)
		packs = append(packs, PackSummary{
			ID:        pack.ID,
			Items:     items,
			ItemCount: pack.ItemCount(),
			Total:     pack.Total(),
		})
	}

	return Summary{
		Packs:        packs,
		ActivePackID: c.ActivePackID,
		TotalItems:   c.TotalItems(),
		TotalPrice:   c.TotalPrice(),
	}
}
