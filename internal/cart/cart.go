package cart

import (
	"math"
	"slices"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// Cart is an ordered list of line items, one per product ID, in the order
// products were first added. Every stored item has Quantity >= 1.
//
// A Cart is not safe for concurrent use; callers serialise access.
type Cart struct {
	items []models.CartItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(productID int) int {
	return slices.IndexFunc(c.items, func(it models.CartItem) bool {
		return it.ID == productID
	})
}

// Add puts one unit of product into the cart. A new product is appended at
// the end; an existing one has its quantity incremented in place.
func (c *Cart) Add(product models.Product) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Quantity = addSaturating(c.items[i].Quantity, 1)
		return
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: 1})
}

// UpdateQuantity adds delta to the quantity of productID. The item is removed
// when the result is zero or less; a result above math.MaxInt is capped.
// Unknown IDs are ignored.
func (c *Cart) UpdateQuantity(productID, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	// Quantity is at least 1, so only a positive delta can overflow and a
	// negative one cannot wrap below math.MinInt.
	q := addSaturating(c.items[i].Quantity, delta)
	if q <= 0 {
		c.items = slices.Delete(c.items, i, i+1)
		return
	}
	c.items[i].Quantity = q
}

// Remove drops productID from the cart regardless of its quantity.
func (c *Cart) Remove(productID int) {
	if i := c.indexOf(productID); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
}

// Quantity returns the quantity of productID, or 0 when it is not in the cart.
func (c *Cart) Quantity(productID int) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Items returns a copy of the line items in cart order.
func (c *Cart) Items() []models.CartItem {
	return append([]models.CartItem{}, c.items...)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalPrice is the sum of price times quantity over all items, capped at
// math.MaxInt.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, it := range c.items {
		total = addSaturating(total, it.Subtotal())
	}
	return total
}

// TotalItems is the sum of quantities over all items, capped at math.MaxInt.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total = addSaturating(total, it.Quantity)
	}
	return total
}

// addSaturating returns a+b for a >= 0, capped at math.MaxInt.
func addSaturating(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
