package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/elegant-tiles/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
)

// SortKey orders a query result.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ParseSortKey maps a request value to a SortKey. Unknown and empty values
// fall back to SortFeatured.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceLow, SortPriceHigh, SortRating:
		return k
	}
	return SortFeatured
}

// PriceBand is one of the search page's price filters.
type PriceBand string

const (
	PriceAny        PriceBand = ""
	PriceUnder1000  PriceBand = "under-1000"
	Price1000To2000 PriceBand = "1000-2000"
	Price2000To5000 PriceBand = "2000-5000"
	PriceOver5000   PriceBand = "over-5000"
)

var (
	thousand     = decimal.NewFromInt(1000)
	twoThousand  = decimal.NewFromInt(2000)
	fiveThousand = decimal.NewFromInt(5000)
)

// ParsePriceBand maps a request value to a PriceBand. Unknown values mean no
// price filter.
func ParsePriceBand(s string) PriceBand {
	switch b := PriceBand(s); b {
	case PriceUnder1000, Price1000To2000, Price2000To5000, PriceOver5000:
		return b
	}
	return PriceAny
}

// Contains reports whether price falls in the band. Lower bounds are
// inclusive, upper bounds exclusive.
func (b PriceBand) Contains(price decimal.Decimal) bool {
	switch b {
	case PriceUnder1000:
		return price.LessThan(thousand)
	case Price1000To2000:
		return !price.LessThan(thousand) && price.LessThan(twoThousand)
	case Price2000To5000:
		return !price.LessThan(twoThousand) && price.LessThan(fiveThousand)
	case PriceOver5000:
		return !price.LessThan(fiveThousand)
	}
	return true
}

// Options selects and orders a view of the catalog. The zero value returns the
// whole catalog in featured order.
type Options struct {
	Category    product.Category
	Search      string
	Sort        SortKey
	PriceBand   PriceBand
	InStockOnly bool
}

// Query filters and sorts products without touching the input slice. Category
// and text filters are ANDed; every sort is stable so ties keep input order.
// A query with no matches yields an empty, non-nil slice.
func Query(products []product.Product, opts Options) []product.Product {
	needle := strings.ToLower(opts.Search)

	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, opts.Category) {
			continue
		}
		if !matchesText(p, needle) {
			continue
		}
		if !opts.PriceBand.Contains(p.Price) {
			continue
		}
		if opts.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}

	switch opts.Sort {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b product.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b product.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortRating:
		slices.SortStableFunc(out, func(a, b product.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}
	return out
}

func matchesCategory(p product.Product, c product.Category) bool {
	if c == "" || c == product.CategoryAll {
		return true
	}
	// unknown selectors fail closed
	return c.Valid() && p.Category == c
}

// matchesText expects needle to be lower-cased already.
func matchesText(p product.Product, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
