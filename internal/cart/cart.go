package cart

import (
	"fmt"
	"sync"
	"time"
)

// Cart holds the line items a visitor intends to purchase. It is in-memory
// only; nothing is persisted, and totals are always derived from current
// items rather than cached. All methods are safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

func newItemID(sel Selection) string {
	return fmt.Sprintf("%s-%s-%s-%d", sel.ArtworkID, sel.ProductType, sel.Size, time.Now().UnixNano())
}

// AddSelection merges the selection into the cart: an existing line item
// with the same identity key gets its quantity incremented and keeps its
// add-time price, title, and image; otherwise a new item with quantity 1
// is appended.
func (c *Cart) AddSelection(sel Selection) LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if sel.sameIdentity(c.items[i]) {
			c.items[i].Quantity++
			return c.items[i]
		}
	}

	item := LineItem{
		ID:          newItemID(sel),
		ArtworkID:   sel.ArtworkID,
		Title:       sel.Title,
		Image:       sel.Image,
		ProductType: sel.ProductType,
		Size:        sel.Size,
		PriceCents:  sel.PriceCents,
		Quantity:    1,
	}
	c.items = append(c.items, item)
	return item
}

// RemoveItem removes the line item with the given id; absent ids are a
// no-op, not an error.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the matching item's quantity. A quantity of zero or
// below removes the item; quantity is never stored non-positive.
func (c *Cart) SetQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(id)
		return
	}

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPriceCents is the sum of price * quantity over all items, in cents.
func (c *Cart) TotalPriceCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// Snapshot returns the items plus both totals from a single consistent
// read of the cart.
func (c *Cart) Snapshot() ([]LineItem, int, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)

	totalItems := 0
	var totalCents int64
	for _, item := range c.items {
		totalItems += item.Quantity
		totalCents += item.PriceCents * int64(item.Quantity)
	}
	return items, totalItems, totalCents
}
