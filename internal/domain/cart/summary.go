package cart

import "github.com/shopspring/decimal"

// Pricing holds the checkout rules used to derive a Summary.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPricing is free delivery above KES 5,000, otherwise KES 500, with
// 16% VAT.
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromInt(5000),
		ShippingFee:           decimal.NewFromInt(500),
		TaxRate:               decimal.RequireFromString("0.16"),
	}
}

// Summary is derived from the cart on every read and never stored.
type Summary struct {
	ItemCount    int             `json:"item_count"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Shipping     decimal.Decimal `json:"shipping"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	FreeShipping bool            `json:"free_shipping"`
	// AmountToFreeShipping is the gap between the subtotal and the threshold.
	AmountToFreeShipping decimal.Decimal `json:"amount_to_free_shipping"`
}

// Shipping returns the delivery charge for subtotal. The fee is waived only
// once the subtotal exceeds the threshold.
func (p Pricing) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.ShippingFee
}

// Tax returns subtotal times the tax rate, rounded to cents.
func (p Pricing) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(p.TaxRate).Round(2)
}

// Summary computes the order totals for the current lines. Lines whose product
// the catalog does not know contribute nothing.
func (c *Cart) Summary(lookup PriceLookup, pricing Pricing) Summary {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		p, ok := lookup.Product(l.ProductID)
		if !ok {
			continue
		}
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	shipping := pricing.Shipping(subtotal)
	tax := pricing.Tax(subtotal)
	free := subtotal.GreaterThan(pricing.FreeShippingThreshold)

	toFree := decimal.Zero
	if !free {
		toFree = pricing.FreeShippingThreshold.Sub(subtotal)
	}

	return Summary{
		ItemCount:            c.ItemCount(),
		Subtotal:             subtotal,
		Shipping:             shipping,
		Tax:                  tax,
		Total:                subtotal.Add(shipping).Add(tax),
		FreeShipping:         free,
		AmountToFreeShipping: toFree,
	}
}
