package readmodel

import (
	"time"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/domain/cart"
	"github.com/elegant-tiles/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductReadModel is the read model for products
type ProductReadModel struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        product.Category `json:"category"`
	CategoryName    string           `json:"category_name"`
	Description     string           `json:"description,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	OnSale          bool             `json:"on_sale"`
	DiscountPercent int64            `json:"discount_percent,omitempty"`
	Rating          float64          `json:"rating"`
	ReviewCount     int              `json:"review_count"`
	InStock         bool             `json:"in_stock"`
	Tags            []string         `json:"tags"`
	Badges          product.Badges   `json:"badges"`
}

func NewProduct(p product.Product) ProductReadModel {
	return ProductReadModel{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		CategoryName:    p.Category.DisplayName(),
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		OnSale:          p.OnSale(),
		DiscountPercent: p.DiscountPercent(),
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		InStock:         p.InStock,
		Tags:            p.Tags,
		Badges:          p.Badges,
	}
}

func NewProducts(products []product.Product) []ProductReadModel {
	out := make([]ProductReadModel, len(products))
	for i, p := range products {
		out[i] = NewProduct(p)
	}
	return out
}

// CartItemReadModel represents a line in the cart joined with its product
type CartItemReadModel struct {
	ProductID string           `json:"product_id"`
	Name      string           `json:"name"`
	Category  product.Category `json:"category"`
	Price     decimal.Decimal  `json:"price"`
	Quantity  int              `json:"quantity"`
	LineTotal decimal.Decimal  `json:"line_total"`
	InStock   bool             `json:"in_stock"`
}

// CartReadModel is the read model for shopping cart
type CartReadModel struct {
	SessionID string              `json:"session_id"`
	Items     []CartItemReadModel `json:"items"`
	Summary   cart.Summary        `json:"summary"`
}

// NewCart joins the cart lines with the catalog and computes the summary.
// Lines whose product is gone from the catalog are left out of both.
func NewCart(sessionID string, c *cart.Cart, lookup cart.PriceLookup, pricing cart.Pricing) CartReadModel {
	items := make([]CartItemReadModel, 0, c.Len())
	for _, line := range c.Lines() {
		p, ok := lookup.Product(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, CartItemReadModel{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Price:     p.Price,
			Quantity:  line.Quantity,
			LineTotal: p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
			InStock:   p.InStock,
		})
	}

	return CartReadModel{
		SessionID: sessionID,
		Items:     items,
		Summary:   c.Summary(lookup, pricing),
	}
}

// WishlistItemReadModel is a saved product with the date it was saved
type WishlistItemReadModel struct {
	Product ProductReadModel `json:"product"`
	AddedAt time.Time        `json:"added_at"`
}

// WishlistReadModel is the read model for the wishlist page
type WishlistReadModel struct {
	SessionID  string                  `json:"session_id"`
	Items      []WishlistItemReadModel `json:"items"`
	Count      int                     `json:"count"`
	TotalValue decimal.Decimal         `json:"total_value"`
}

func NewWishlist(sessionID string, w *cart.Wishlist, lookup cart.PriceLookup) WishlistReadModel {
	items := make([]WishlistItemReadModel, 0, w.Len())
	for _, e := range w.Entries() {
		p, ok := lookup.Product(e.ProductID)
		if !ok {
			continue
		}
		items = append(items, WishlistItemReadModel{Product: NewProduct(p), AddedAt: e.AddedAt})
	}
	return WishlistReadModel{
		SessionID:  sessionID,
		Items:      items,
		Count:      len(items),
		TotalValue: w.Value(lookup),
	}
}

// BookingOptionsReadModel lists the choices the booking form offers
type BookingOptionsReadModel struct {
	ServiceTypes []booking.ServiceType `json:"service_types"`
	TimeSlots    []string              `json:"time_slots"`
	BudgetRanges []string              `json:"budget_ranges"`
}

// BookingReadModel is the booking form as the page renders it
type BookingReadModel struct {
	booking.Snapshot
	Options BookingOptionsReadModel `json:"options"`
}

func NewBooking(f *booking.Flow) BookingReadModel {
	return BookingReadModel{
		Snapshot: f.Snapshot(),
		Options: BookingOptionsReadModel{
			ServiceTypes: booking.ServiceTypes(),
			TimeSlots:    booking.TimeSlots(),
			BudgetRanges: booking.BudgetRanges(),
		},
	}
}

// ContactReadModel is the contact form state
type ContactReadModel struct {
	Fields    booking.ContactFields `json:"fields"`
	CanSubmit bool                  `json:"can_submit"`
	Sent      bool                  `json:"sent"`
}

func NewContact(c *booking.ContactForm) ContactReadModel {
	return ContactReadModel{
		Fields:    c.Fields(),
		CanSubmit: c.CanSubmit(),
		Sent:      c.Sent(),
	}
}
