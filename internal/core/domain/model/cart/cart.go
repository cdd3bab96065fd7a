package cart

import (
	"errors"
	"strconv"
	"strings"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart factory method.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Line is one cart entry: a food item and its quantity.
type Line struct {
	Item     string
	Quantity float64
}

// Cart accumulates the food items of one in-progress order before it is
// persisted. It is a staging structure scoped to a single conversation
// session, never shared across sessions and never written to storage itself.
//
// Cart maintains these invariants:
//   - Item names are unique; setting an existing item overwrites its quantity
//   - An absent item means zero quantity
//   - Entries keep their insertion order; overwriting keeps the original
//     position, so summaries read back in the order the customer spoke
//
// An empty cart is a valid state, distinct from "no cart exists".
type Cart struct {
	// quantities maps item name to quantity
	quantities map[string]float64

	// sequence preserves item insertion order for summaries
	sequence []string

	// isConstructed ensures the cart was created via NewCart
	isConstructed bool
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		quantities:    make(map[string]float64),
		isConstructed: true,
	}
}

// Validate ensures the Cart instance was properly constructed through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// Set inserts an item or overwrites the quantity of an existing one.
// Overwriting keeps the item's original position in the cart.
func (c *Cart) Set(item string, quantity float64) {
	if _, exists := c.quantities[item]; !exists {
		c.sequence = append(c.sequence, item)
	}
	c.quantities[item] = quantity
}

// Quantity returns the quantity for an item and whether the item is present.
func (c *Cart) Quantity(item string) (float64, bool) {
	quantity, ok := c.quantities[item]
	return quantity, ok
}

// Remove deletes the requested items and partitions the request into the
// items actually removed and the items that were not in the cart. Both
// slices keep the request order.
func (c *Cart) Remove(items []string) (removed, missing []string) {
	for _, item := range items {
		if _, ok := c.quantities[item]; !ok {
			missing = append(missing, item)
			continue
		}
		delete(c.quantities, item)
		removed = append(removed, item)
	}

	if len(removed) > 0 {
		kept := c.sequence[:0]
		for _, item := range c.sequence {
			if _, ok := c.quantities[item]; ok {
				kept = append(kept, item)
			}
		}
		c.sequence = kept
	}

	return removed, missing
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.sequence))
	for _, item := range c.sequence {
		lines = append(lines, Line{Item: item, Quantity: c.quantities[item]})
	}
	return lines
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.quantities) == 0
}

// Len returns the number of distinct items in the cart.
func (c *Cart) Len() int {
	return len(c.quantities)
}

// Summary renders the cart as a human-readable list, e.g.
// "2 pizza, 1 mango lassi". Whole quantities print without a decimal point.
func (c *Cart) Summary() string {
	parts := make([]string, 0, len(c.sequence))
	for _, item := range c.sequence {
		parts = append(parts, formatQuantity(c.quantities[item])+" "+item)
	}
	return strings.Join(parts, ", ")
}

func formatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}
