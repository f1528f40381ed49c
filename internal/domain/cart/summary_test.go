package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

// ============================================
// Summary Tests
// ============================================

func TestSummary_BelowThresholdChargesShipping(t *testing.T) {
	catalog := stubCatalog{"A": mustProduct(t, "A", 1200)}
	c := New()
	require.NoError(t, c.Add("A", 4)) // 4800

	s := c.Summary(catalog, DefaultPricing())

	assertDecimal(t, "4800", s.Subtotal)
	assertDecimal(t, "500", s.Shipping)
	assertDecimal(t, "768", s.Tax)
	assertDecimal(t, "6068", s.Total)
	assert.False(t, s.FreeShipping)
	assertDecimal(t, "200", s.AmountToFreeShipping)
}

func TestSummary_AboveThresholdShipsFree(t *testing.T) {
	catalog := stubCatalog{"A": mustProduct(t, "A", 3000)}
	c := New()
	require.NoError(t, c.Add("A", 2)) // 6000

	s := c.Summary(catalog, DefaultPricing())

	assertDecimal(t, "6000", s.Subtotal)
	assertDecimal(t, "0", s.Shipping)
	assertDecimal(t, "960", s.Tax)
	assertDecimal(t, "6960", s.Total)
	assert.True(t, s.FreeShipping)
	assertDecimal(t, "0", s.AmountToFreeShipping)
}

func TestSummary_ExactlyAtThresholdStillCharged(t *testing.T) {
	catalog := stubCatalog{"A": mustProduct(t, "A", 5000)}
	c := New()
	require.NoError(t, c.Add("A", 1))

	s := c.Summary(catalog, DefaultPricing())

	assertDecimal(t, "500", s.Shipping)
}

func TestSummary_EmptyCart(t *testing.T) {
	c := New()

	s := c.Summary(stubCatalog{}, DefaultPricing())

	assertDecimal(t, "0", s.Subtotal)
	assertDecimal(t, "500", s.Shipping)
	assertDecimal(t, "0", s.Tax)
	assertDecimal(t, "500", s.Total)
	assertDecimal(t, "5000", s.AmountToFreeShipping)
	assert.Equal(t, 0, s.ItemCount)
	assert.False(t, s.FreeShipping)
}

func TestPricing_Shipping(t *testing.T) {
	pricing := DefaultPricing()

	tests := []struct {
		subtotal string
		expected string
	}{
		{"0", "500"},
		{"4999.99", "500"},
		{"5000", "500"},
		{"5000.01", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			assertDecimal(t, tt.expected, pricing.Shipping(decimal.RequireFromString(tt.subtotal)))
		})
	}
}

func TestSummary_SubtotalIsLiteralSum(t *testing.T) {
	catalog := stubCatalog{
		"1": mustProduct(t, "1", 2850),
		"3": mustProduct(t, "3", 3200),
		"6": mustProduct(t, "6", 890),
	}
	c := New()
	require.NoError(t, c.Add("1", 2))
	require.NoError(t, c.Add("3", 1))
	require.NoError(t, c.Add("6", 3))

	s := c.Summary(catalog, DefaultPricing())

	expected := decimal.Zero
	for _, l := range c.Lines() {
		p, _ := catalog.Product(l.ProductID)
		expected = expected.Add(p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	assert.True(t, expected.Equal(s.Subtotal))
	assertDecimal(t, "11570", s.Subtotal)
	assert.Equal(t, 6, s.ItemCount)
}

func TestSummary_Deterministic(t *testing.T) {
	catalog := stubCatalog{"A": mustProduct(t, "A", 1999)}
	c := New()
	require.NoError(t, c.Add("A", 3))

	first := c.Summary(catalog, DefaultPricing())
	second := c.Summary(catalog, DefaultPricing())

	assert.Equal(t, first, second)
}

func TestSummary_SkipsUnknownProducts(t *testing.T) {
	catalog := stubCatalog{"A": mustProduct(t, "A", 1000)}
	c := New()
	require.NoError(t, c.Add("A", 1))
	require.NoError(t, c.Add("ghost", 2))

	s := c.Summary(catalog, DefaultPricing())

	assertDecimal(t, "1000", s.Subtotal)
	assert.Equal(t, 3, s.ItemCount)
}

func TestSummary_TaxRoundedToCents(t *testing.T) {
	catalog := stubCatalog{"A": mustProduct(t, "A", 1)}
	pricing := DefaultPricing()
	pricing.TaxRate = decimal.RequireFromString("0.125")
	c := New()
	require.NoError(t, c.Add("A", 1))

	s := c.Summary(catalog, pricing)

	assertDecimal(t, "0.13", s.Tax)
}
