package structs

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	DeliveryMethodId  uuid.UUID `json:"delivery_method_id" validate:"required"`
	DeliveryAddressId uuid.UUID `json:"delivery_address_id" validate:"required"`
	BillingAddressId  uuid.UUID `json:"billing_address_id" validate:"required"`
	CouponCode        string    `json:"coupon_code" validate:"omitempty,max=50"`
	Otp               string    `json:"otp" validate:"required,min=4,max=10"`
	TermsAgreed       bool      `json:"terms_agreed"`
	Notes             string    `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type TrackingRequest struct {
	Status            string     `json:"status" validate:"required,max=100"`
	Note              string     `json:"note" validate:"omitempty,max=500"`
	TrackingNumber    string     `json:"tracking_number" validate:"omitempty,max=100"`
	Courier           string     `json:"courier" validate:"omitempty,max=100"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// OrderListOptions filters the admin order listing.
type OrderListOptions struct {
	Page     int
	PageSize int

	Status        string
	UserId        *uuid.UUID
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// SalesReportOptions bounds the admin sales report.
type SalesReportOptions struct {
	From *time.Time
	To   *time.Time
}
