package command

// Cart Commands
// AddToCart adds Quantity units. A nil Quantity means one unit; an explicit
// value goes to the cart unchanged and is validated there.
type AddToCart struct {
	SessionID string `json:"-"`
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity,omitempty"`
}

type UpdateCartQuantity struct {
	SessionID string `json:"-"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type RemoveFromCart struct {
	SessionID string `json:"-"`
	ProductID string `json:"product_id"`
}

type ClearCart struct {
	SessionID string `json:"-"`
}

// Wishlist Commands
type AddToWishlist struct {
	SessionID string `json:"-"`
	ProductID string `json:"product_id"`
}

type RemoveFromWishlist struct {
	SessionID string `json:"-"`
	ProductID string `json:"product_id"`
}

type MoveToCart struct {
	SessionID string `json:"-"`
	ProductID string `json:"product_id"`
}

// Booking Commands
type UpdateBooking struct {
	SessionID string            `json:"-"`
	Fields    map[string]string `json:"fields"`
}

// BookingStep covers continue, back, submit and reset, which carry nothing
// but the session.
type BookingStep struct {
	SessionID string `json:"-"`
}

// Contact Commands
type SubmitContact struct {
	SessionID string            `json:"-"`
	Fields    map[string]string `json:"fields"`
}
