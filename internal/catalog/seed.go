package catalog

import (
	"embed"
	"fmt"

	"github.com/elegant-tiles/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed/*.yaml
var seedFS embed.FS

type seedProduct struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Category      string         `yaml:"category"`
	Description   string         `yaml:"description"`
	Price         string         `yaml:"price"`
	OriginalPrice string         `yaml:"original_price"`
	Rating        float64        `yaml:"rating"`
	ReviewCount   int            `yaml:"review_count"`
	InStock       bool           `yaml:"in_stock"`
	Tags          []string       `yaml:"tags"`
	Badges        product.Badges `yaml:"badges"`
}

func (r seedProduct) spec() (product.Spec, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return product.Spec{}, fmt.Errorf("price %q: %w", r.Price, err)
	}
	var original *decimal.Decimal
	if r.OriginalPrice != "" {
		op, err := decimal.NewFromString(r.OriginalPrice)
		if err != nil {
			return product.Spec{}, fmt.Errorf("original_price %q: %w", r.OriginalPrice, err)
		}
		original = &op
	}
	return product.Spec{
		ID:            r.ID,
		Name:          r.Name,
		Category:      product.Category(r.Category),
		Description:   r.Description,
		Price:         price,
		OriginalPrice: original,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		InStock:       r.InStock,
		Tags:          r.Tags,
		Badges:        r.Badges,
	}, nil
}

// ParseProducts decodes a YAML product list and validates every record. The
// first invalid record aborts the load.
func ParseProducts(data []byte) ([]product.Product, error) {
	var records []seedProduct
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]product.Product, 0, len(records))
	for i, r := range records {
		spec, err := r.spec()
		if err != nil {
			return nil, fmt.Errorf("product #%d (%s): %w", i+1, r.ID, err)
		}
		p, err := product.New(spec)
		if err != nil {
			return nil, fmt.Errorf("product #%d (%s): %w", i+1, r.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// LoadSeed builds the catalog from the embedded showroom seed.
func LoadSeed() (*Store, error) {
	data, err := seedFS.ReadFile("seed/products.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read product seed: %w", err)
	}
	products, err := ParseProducts(data)
	if err != nil {
		return nil, err
	}
	return NewStore(products)
}
