package structs

import "github.com/google/uuid"

type AddCartItemRequest struct {
	VariantId     *uuid.UUID     `json:"variant_id"`
	BundleId      *uuid.UUID     `json:"bundle_id"`
	Quantity      int            `json:"quantity" validate:"required,gte=1"`
	Customization map[string]any `json:"customization"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// GuestCartItemRequest adds a product to the session-backed guest cart.
// Guest carts track plain products only; picking a variant happens after
// login.
type GuestCartItemRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
}

type WishlistToggleRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
}

// CartSummary is the cart payload returned to the storefront.
type CartSummary struct {
	Id        uuid.UUID `json:"id"`
	Items     any       `json:"items"`
	ItemCount int       `json:"item_count"`
	Total     int64     `json:"total"`
}
