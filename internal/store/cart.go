package store

import "sudsshop/internal/domain"

// Cart is an ordered list of product snapshots with quantities. Items copy
// the product's field values at add time; catalog edits never reach a cart.
// Cart is not safe for concurrent use on its own; the owning Session
// serializes access.
type Cart struct {
	items []domain.CartItem
}

// Add increments the quantity when the product is already present, otherwise
// appends a new line with quantity 1.
func (c *Cart) Add(p domain.Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, domain.CartItem{Product: p, Quantity: 1})
}

// Remove drops the matching line; absent ids are ignored.
func (c *Cart) Remove(id string) {
	out := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	c.items = out
}

// UpdateQuantity applies a delta with a floor of 1. Reaching zero is only
// possible through Remove.
func (c *Cart) UpdateQuantity(id string, delta int) {
	for i := range c.items {
		if c.items[i].ID == id {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

// Items returns a snapshot copy of the cart lines.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price x quantity; 0 for an empty cart.
func (c *Cart) Total() float64 { return domain.Total(c.items) }

// ItemCount sums quantities across lines (the badge number).
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Empty() bool { return len(c.items) == 0 }

func (c *Cart) Clear() { c.items = nil }
