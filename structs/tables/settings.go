package tables

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryMethod is a shipping option offered at checkout.
type DeliveryMethod struct {
	tableName     struct{}  `bun:"table:delivery_methods,alias:dm"`
	Id            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name          string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Cost          int64     `bun:"cost,notnull" json:"cost" validate:"gte=0"`
	EstimatedDays int       `bun:"estimated_days,notnull" json:"estimated_days" validate:"gte=0"`
	IsActive      bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Coupon struct {
	tableName struct{}  `bun:"table:coupons,alias:cp"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Code      string    `bun:"code,notnull,unique" json:"code" validate:"required,min=2,max=50"`

	// Flat discount in cents, subtracted from the order item total.
	DiscountAmount int64 `bun:"discount_amount,notnull" json:"discount_amount" validate:"required,gte=0"`

	IsActive   bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	ValidFrom  *time.Time `bun:"valid_from" json:"valid_from,omitempty"`
	ValidUntil *time.Time `bun:"valid_until" json:"valid_until,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

// IsValidAt reports whether the coupon is redeemable at the given time. An
// unset bound does not constrain.
func (c *Coupon) IsValidAt(t time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ValidFrom != nil && t.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && t.After(*c.ValidUntil) {
		return false
	}
	return true
}

// PaymentMethod is a manual payment channel shown to the customer, e.g. a
// bKash number or bank account details.
type PaymentMethod struct {
	tableName struct{}  `bun:"table:payment_methods,alias:pm"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Details   string    `bun:"details" json:"details,omitempty"`
	IsActive  bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
