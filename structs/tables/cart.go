package tables

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidItemRef = errors.New("item must reference exactly one variant or bundle")

// ItemRef points a cart or order line at what is being bought: a product
// variant or a bundle, never both and never neither.
type ItemRef struct {
	VariantId *uuid.UUID `json:"variant_id,omitempty"`
	BundleId  *uuid.UUID `json:"bundle_id,omitempty"`
}

func (ref ItemRef) Validate() error {
	if (ref.VariantId == nil) == (ref.BundleId == nil) {
		return ErrInvalidItemRef
	}
	return nil
}

func (ref ItemRef) IsVariant() bool { return ref.VariantId != nil }
func (ref ItemRef) IsBundle() bool  { return ref.BundleId != nil }

type Cart struct {
	tableName struct{}    `bun:"table:carts,alias:ct"`
	Id        uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId    uuid.UUID   `bun:"user_id,notnull,unique,type:uuid" json:"user_id"`
	Items     []*CartItem `bun:"rel:has-many,join:id=cart_id" json:"items,omitempty"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time   `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// ItemCount sums quantities over all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

type CartItem struct {
	tableName struct{}  `bun:"table:cart_items,alias:ci"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CartId    uuid.UUID `bun:"cart_id,notnull,type:uuid" json:"cart_id"`

	VariantId *uuid.UUID `bun:"variant_id,type:uuid" json:"variant_id,omitempty"`
	Variant   *Variant   `bun:"rel:belongs-to,join:variant_id=id" json:"variant,omitempty"`
	BundleId  *uuid.UUID `bun:"bundle_id,type:uuid" json:"bundle_id,omitempty"`
	Bundle    *Bundle    `bun:"rel:belongs-to,join:bundle_id=id" json:"bundle,omitempty"`

	Quantity      int            `bun:"quantity,notnull" json:"quantity" validate:"required,gte=1"`
	Customization map[string]any `bun:"customization,type:jsonb" json:"customization,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

func (ci *CartItem) Ref() ItemRef {
	return ItemRef{VariantId: ci.VariantId, BundleId: ci.BundleId}
}

// UnitPrice returns the current final price of the referenced variant or
// bundle. The relation must be loaded.
func (ci *CartItem) UnitPrice() int64 {
	if ci.Variant != nil {
		return ci.Variant.FinalPrice()
	}
	if ci.Bundle != nil {
		return ci.Bundle.FinalPrice()
	}
	return 0
}

func (ci *CartItem) Subtotal() int64 {
	return ci.UnitPrice() * int64(ci.Quantity)
}

type Wishlist struct {
	tableName struct{}        `bun:"table:wishlists,alias:w"`
	Id        uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserId    uuid.UUID       `bun:"user_id,notnull,unique,type:uuid" json:"user_id"`
	Items     []*WishlistItem `bun:"rel:has-many,join:id=wishlist_id" json:"items,omitempty"`
	CreatedAt time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type WishlistItem struct {
	tableName  struct{}  `bun:"table:wishlist_items,alias:wi"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	WishlistId uuid.UUID `bun:"wishlist_id,notnull,type:uuid" json:"wishlist_id"`
	ProductId  uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Product    *Product  `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
