package cart

import (
	"github.com/lumiere-essence/maison-backend/internal/modules/catalog"
)

// Item is a product snapshot plus a quantity. The snapshot is taken at
// add-to-cart time, so later catalog edits never change cart contents.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart aggregates line items for one session. It is not safe for concurrent
// use; the Manager serializes access.
type Cart struct {
	items []Item
}

// Add inserts a snapshot of p with quantity 1, or increments the quantity
// if an item with the same product id already exists.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
}

// Remove deletes the item with the given product id; no-op if absent.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity applies a delta to an item's quantity, bounded below at 1.
// Removal always requires an explicit Remove.
func (c *Cart) SetQuantity(productID string, delta int) {
	for i := range c.items {
		if c.items[i].ID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

// Total is the sum of price x quantity over all items, in base units.
func (c *Cart) Total() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Count is the sum of quantities, used for the badge display.
func (c *Cart) Count() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
