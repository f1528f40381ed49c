package product

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrOutOfStock           = errors.New("product is out of stock")
	ErrInvalidProduct       = errors.New("product_id is required")
	ErrInvalidName          = errors.New("name is required")
	ErrInvalidPrice         = errors.New("price must be positive")
	ErrInvalidOriginalPrice = errors.New("original price must be greater than price")
	ErrInvalidRating        = errors.New("rating must be between 0 and 5")
	ErrInvalidReviewCount   = errors.New("review count must not be negative")
	ErrInvalidCategory      = errors.New("unknown category")
)

// Badges are presentation flags with no pricing or inventory effect.
type Badges struct {
	Bestseller bool `json:"bestseller,omitempty" yaml:"bestseller"`
	New        bool `json:"new,omitempty" yaml:"new"`
	Featured   bool `json:"featured,omitempty" yaml:"featured"`
}

// Product is an immutable catalog record. Build it with New so the invariants
// hold for every value that reaches the catalog.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      Category         `json:"category"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	InStock       bool             `json:"in_stock"`
	Tags          []string         `json:"tags"`
	Badges        Badges           `json:"badges"`
}

// Spec carries the raw fields of a product before validation.
type Spec struct {
	ID            string
	Name          string
	Category      Category
	Description   string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Rating        float64
	ReviewCount   int
	InStock       bool
	Tags          []string
	Badges        Badges
}

// New validates s and returns the product it describes.
func New(s Spec) (Product, error) {
	if strings.TrimSpace(s.ID) == "" {
		return Product{}, ErrInvalidProduct
	}
	if strings.TrimSpace(s.Name) == "" {
		return Product{}, ErrInvalidName
	}
	if !s.Category.Valid() {
		return Product{}, ErrInvalidCategory
	}
	if !s.Price.IsPositive() {
		return Product{}, ErrInvalidPrice
	}
	if s.OriginalPrice != nil && !s.OriginalPrice.GreaterThan(s.Price) {
		return Product{}, ErrInvalidOriginalPrice
	}
	if s.Rating < MinRating || s.Rating > MaxRating {
		return Product{}, ErrInvalidRating
	}
	if s.ReviewCount < 0 {
		return Product{}, ErrInvalidReviewCount
	}

	var original *decimal.Decimal
	if s.OriginalPrice != nil {
		op := *s.OriginalPrice
		original = &op
	}
	tags := make([]string, len(s.Tags))
	copy(tags, s.Tags)

	return Product{
		ID:            s.ID,
		Name:          s.Name,
		Category:      s.Category,
		Description:   s.Description,
		Price:         s.Price,
		OriginalPrice: original,
		Rating:        s.Rating,
		ReviewCount:   s.ReviewCount,
		InStock:       s.InStock,
		Tags:          tags,
		Badges:        s.Badges,
	}, nil
}

// OnSale reports whether the product carries a struck-through original price.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil
}

// DiscountPercent returns the whole-percent markdown from the original price,
// or zero when the product is not on sale.
func (p Product) DiscountPercent() int64 {
	if p.OriginalPrice == nil {
		return 0
	}
	off := p.OriginalPrice.Sub(p.Price).Div(*p.OriginalPrice).Mul(decimal.NewFromInt(100))
	return off.Round(0).IntPart()
}
