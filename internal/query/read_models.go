package query

// Re-export read models from readmodel package so API callers need one import
import "github.com/elegant-tiles/storefront/internal/readmodel"

type ProductReadModel = readmodel.ProductReadModel
type CartItemReadModel = readmodel.CartItemReadModel
type CartReadModel = readmodel.CartReadModel
type WishlistReadModel = readmodel.WishlistReadModel
type BookingReadModel = readmodel.BookingReadModel
type ContactReadModel = readmodel.ContactReadModel
