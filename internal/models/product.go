package models

import "math"

// Product represents an immutable catalog entry. Price is in the smallest
// currency unit.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Image    string `json:"image"`
	Badge    string `json:"badge,omitempty"`
}

// CartItem is a product copied into the cart together with its quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price times quantity for the line, capped at math.MaxInt.
func (i CartItem) Subtotal() int {
	if i.Price > 0 && i.Quantity > math.MaxInt/i.Price {
		return math.MaxInt
	}
	return i.Price * i.Quantity
}
