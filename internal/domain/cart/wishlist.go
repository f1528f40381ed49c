package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a saved product.
type Entry struct {
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// Wishlist is an insertion-ordered set of product ids. Add and Remove are
// idempotent.
type Wishlist struct {
	entries []Entry
	now     func() time.Time
}

func NewWishlist() *Wishlist {
	return &Wishlist{now: time.Now}
}

func (w *Wishlist) index(productID string) int {
	for i, e := range w.entries {
		if e.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add saves productID. Adding a product that is already saved does nothing.
func (w *Wishlist) Add(productID string) error {
	if productID == "" {
		return ErrInvalidProduct
	}
	if w.index(productID) >= 0 {
		return nil
	}
	w.entries = append(w.entries, Entry{ProductID: productID, AddedAt: w.now()})
	return nil
}

// Remove drops productID. Removing an absent product does nothing.
func (w *Wishlist) Remove(productID string) {
	if i := w.index(productID); i >= 0 {
		w.entries = append(w.entries[:i], w.entries[i+1:]...)
	}
}

func (w *Wishlist) Contains(productID string) bool {
	return w.index(productID) >= 0
}

// Entries returns a copy of the saved entries in insertion order.
func (w *Wishlist) Entries() []Entry {
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

func (w *Wishlist) Len() int {
	return len(w.entries)
}

// Value is the sum of the current prices of every saved product. Products the
// catalog no longer knows are skipped.
func (w *Wishlist) Value(lookup PriceLookup) decimal.Decimal {
	total := decimal.Zero
	for _, e := range w.entries {
		if p, ok := lookup.Product(e.ProductID); ok {
			total = total.Add(p.Price)
		}
	}
	return total
}

// MoveToCart adds one unit of productID to c and removes it from w. The
// wishlist is left untouched when the cart rejects the product.
func MoveToCart(w *Wishlist, c *Cart, productID string) error {
	if err := c.Add(productID, 1); err != nil {
		return err
	}
	w.Remove(productID)
	return nil
}
