package tables

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the order status machine. Cancellation is only
// reachable before shipping; delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

type Order struct {
	tableName struct{}  `bun:"table:orders,alias:o"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`

	// Human-readable number in the form ORD-YYYYMMDD-NNNN. The sequence
	// resets every day.
	OrderNumber string `bun:"order_number,notnull,unique" json:"order_number"`

	UserId uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`

	Status OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`

	DeliveryMethodId  uuid.UUID       `bun:"delivery_method_id,notnull,type:uuid" json:"delivery_method_id"`
	DeliveryMethod    *DeliveryMethod `bun:"rel:belongs-to,join:delivery_method_id=id" json:"delivery_method,omitempty"`
	DeliveryAddressId uuid.UUID       `bun:"delivery_address_id,notnull,type:uuid" json:"delivery_address_id"`
	DeliveryAddress   *Address        `bun:"rel:belongs-to,join:delivery_address_id=id" json:"delivery_address,omitempty"`
	BillingAddressId  uuid.UUID       `bun:"billing_address_id,notnull,type:uuid" json:"billing_address_id"`
	BillingAddress    *Address        `bun:"rel:belongs-to,join:billing_address_id=id" json:"billing_address,omitempty"`

	CouponId *uuid.UUID `bun:"coupon_id,type:uuid" json:"coupon_id,omitempty"`
	Coupon   *Coupon    `bun:"rel:belongs-to,join:coupon_id=id" json:"coupon,omitempty"`

	// Sum of item subtotals minus the coupon discount, in cents. A coupon
	// larger than the item total drives this negative.
	TotalAmount int64 `bun:"total_amount,notnull" json:"total_amount"`

	Notes string `bun:"notes" json:"notes,omitempty"`

	Items    []*OrderItem      `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
	Payment  *Payment          `bun:"rel:has-one,join:id=order_id" json:"payment,omitempty"`
	Tracking *DeliveryTracking `bun:"rel:has-one,join:id=order_id" json:"tracking,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// IsCancellable reports whether the customer may still cancel: money has not
// been confirmed yet, meaning there is no payment or it is still pending.
func (o *Order) IsCancellable() bool {
	if o.Status == OrderStatusCancelled || o.Status == OrderStatusDelivered {
		return false
	}
	return o.Payment == nil || o.Payment.Status == PaymentStatusPending
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`

	VariantId *uuid.UUID `bun:"variant_id,type:uuid" json:"variant_id,omitempty"`
	Variant   *Variant   `bun:"rel:belongs-to,join:variant_id=id" json:"variant,omitempty"`
	BundleId  *uuid.UUID `bun:"bundle_id,type:uuid" json:"bundle_id,omitempty"`
	Bundle    *Bundle    `bun:"rel:belongs-to,join:bundle_id=id" json:"bundle,omitempty"`

	Quantity int `bun:"quantity,notnull" json:"quantity"`

	// Final price per unit at checkout time, in cents. Later price changes
	// do not touch existing orders.
	PriceAtPurchase int64 `bun:"price_at_purchase,notnull" json:"price_at_purchase"`

	Customization map[string]any `bun:"customization,type:jsonb" json:"customization,omitempty"`

	StockAllocations []*OrderItemStock `bun:"rel:has-many,join:id=order_item_id" json:"stock_allocations,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

func (oi *OrderItem) Ref() ItemRef {
	return ItemRef{VariantId: oi.VariantId, BundleId: oi.BundleId}
}

func (oi *OrderItem) Subtotal() int64 {
	return oi.PriceAtPurchase * int64(oi.Quantity)
}

// OrderItemStock records which stock batch an order item was served from and
// how many units it took. Rows are written by the admin allocation operation,
// not by checkout.
type OrderItemStock struct {
	tableName   struct{}  `bun:"table:order_item_stocks,alias:ois"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderItemId uuid.UUID `bun:"order_item_id,notnull,type:uuid" json:"order_item_id"`
	StockId     uuid.UUID `bun:"stock_id,notnull,type:uuid" json:"stock_id"`
	Stock       *Stock    `bun:"rel:belongs-to,join:stock_id=id" json:"stock,omitempty"`
	Quantity    int       `bun:"quantity,notnull" json:"quantity"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

// TrackingUpdate is one timestamped entry in a tracking history.
type TrackingUpdate struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type DeliveryTracking struct {
	tableName struct{}  `bun:"table:delivery_trackings,alias:dt"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,unique,type:uuid" json:"order_id"`

	Status            string     `bun:"status,notnull" json:"status"`
	TrackingNumber    string     `bun:"tracking_number" json:"tracking_number,omitempty"`
	Courier           string     `bun:"courier" json:"courier,omitempty"`
	EstimatedDelivery *time.Time `bun:"estimated_delivery" json:"estimated_delivery,omitempty"`

	Updates []TrackingUpdate `bun:"updates,type:jsonb" json:"updates"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// AppendUpdate adds a timestamped entry to the history and moves the current
// status along with it.
func (dt *DeliveryTracking) AppendUpdate(status, note string, at time.Time) {
	dt.Status = status
	dt.Updates = append(dt.Updates, TrackingUpdate{
		Status:    status,
		Note:      note,
		Timestamp: at,
	})
}
