package cart

import (
	"errors"
	"time"

	"github.com/elegant-tiles/storefront/internal/domain/product"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidProduct  = errors.New("product_id is required")
	ErrLineNotFound    = errors.New("product is not in the cart")
)

// Line is one product in the cart. It references the product by id only;
// price and name are looked up from the catalog when needed.
type Line struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart holds the lines of a single session in insertion order. It is not
// safe for concurrent use.
type Cart struct {
	lines []Line
	now   func() time.Time
}

func New() *Cart {
	return &Cart{now: time.Now}
}

func (c *Cart) index(productID string) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts qty units of productID in the cart, merging into an existing line.
func (c *Cart) Add(productID string, qty int) error {
	if productID == "" {
		return ErrInvalidProduct
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}

	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity += qty
		return nil
	}
	c.lines = append(c.lines, Line{
		ProductID: productID,
		Quantity:  qty,
		AddedAt:   c.now(),
	})
	return nil
}

// UpdateQuantity sets the quantity of an existing line. Quantities below one
// are rejected; use Remove to drop a line.
func (c *Cart) UpdateQuantity(productID string, qty int) error {
	if productID == "" {
		return ErrInvalidProduct
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}
	i := c.index(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines[i].Quantity = qty
	return nil
}

func (c *Cart) Increment(productID string) error {
	return c.UpdateQuantity(productID, c.Quantity(productID)+1)
}

// Decrement lowers the quantity by one. Going below one is rejected.
func (c *Cart) Decrement(productID string) error {
	qty := c.Quantity(productID)
	if qty == 0 {
		return ErrLineNotFound
	}
	return c.UpdateQuantity(productID, qty-1)
}

// Remove deletes the line for productID. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	if i := c.index(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity returns the quantity for productID, zero when absent.
func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// ItemCount is the total number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// PriceLookup resolves catalog products for derived totals.
type PriceLookup interface {
	Product(id string) (product.Product, bool)
}
