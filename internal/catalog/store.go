package catalog

import (
	"errors"
	"fmt"

	"github.com/elegant-tiles/storefront/internal/domain/product"
)

// DefaultSimilarLimit is how many related products a product page shows.
const DefaultSimilarLimit = 4

var ErrDuplicateProduct = errors.New("duplicate product id")

// Store is the read-only, seed-ordered product catalog. It is never mutated
// after construction, so it can be shared across sessions.
type Store struct {
	products []product.Product
	byID     map[string]int
}

// NewStore builds a catalog from already validated products, keeping their
// order.
func NewStore(products []product.Product) (*Store, error) {
	s := &Store{
		products: make([]product.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, ok := s.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s, nil
}

// All returns every product in seed order.
func (s *Store) All() []product.Product {
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks a product up by id.
func (s *Store) Product(id string) (product.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return product.Product{}, false
	}
	return s.products[i], true
}

func (s *Store) Len() int {
	return len(s.products)
}

// CategoryCount is a category chip with the number of products behind it.
type CategoryCount struct {
	ID    product.Category `json:"id"`
	Name  string           `json:"name"`
	Count int              `json:"count"`
}

// Categories lists the "all" selector followed by every known category with
// its live product count.
func (s *Store) Categories() []CategoryCount {
	counts := make(map[product.Category]int)
	for _, p := range s.products {
		counts[p.Category]++
	}

	out := []CategoryCount{{
		ID:    product.CategoryAll,
		Name:  product.CategoryAll.DisplayName(),
		Count: len(s.products),
	}}
	for _, c := range product.Categories() {
		out = append(out, CategoryCount{ID: c, Name: c.DisplayName(), Count: counts[c]})
	}
	return out
}

// Similar returns up to limit other products from the same category, in seed
// order. A non-positive limit uses DefaultSimilarLimit.
func (s *Store) Similar(id string, limit int) ([]product.Product, error) {
	current, ok := s.Product(id)
	if !ok {
		return nil, product.ErrProductNotFound
	}
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	out := make([]product.Product, 0, limit)
	for _, p := range s.products {
		if len(out) == limit {
			break
		}
		if p.ID != current.ID && p.Category == current.Category {
			out = append(out, p)
		}
	}
	return out, nil
}
