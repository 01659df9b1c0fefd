package tables

import (
	"testing"
	"time"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusDelivered, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s: CanTransitionTo = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		if !s.Valid() {
			t.Errorf("%s: Valid() = false, want true", s)
		}
	}

	if OrderStatus("unknown").Valid() {
		t.Error("unknown status reported valid")
	}
}

func TestOrderIsCancellable(t *testing.T) {
	cases := []struct {
		name  string
		order Order
		want  bool
	}{
		{"pending without payment", Order{Status: OrderStatusPending}, true},
		{"processing with pending payment", Order{
			Status:  OrderStatusProcessing,
			Payment: &Payment{Status: PaymentStatusPending},
		}, true},
		{"processing with completed payment", Order{
			Status:  OrderStatusProcessing,
			Payment: &Payment{Status: PaymentStatusCompleted},
		}, false},
		{"shipped without payment", Order{Status: OrderStatusShipped}, true},
		{"delivered", Order{Status: OrderStatusDelivered}, false},
		{"already cancelled", Order{Status: OrderStatusCancelled}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.order.IsCancellable(); got != tc.want {
				t.Fatalf("IsCancellable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrderItemSubtotal(t *testing.T) {
	item := &OrderItem{Quantity: 4, PriceAtPurchase: 1250}
	if got := item.Subtotal(); got != 5000 {
		t.Fatalf("Subtotal() = %d, want 5000", got)
	}
}

func TestTrackingAppendUpdate(t *testing.T) {
	dt := &DeliveryTracking{Status: "processing"}

	first := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	dt.AppendUpdate("shipped", "handed to courier", first)
	dt.AppendUpdate("delivered", "", second)

	if dt.Status != "delivered" {
		t.Fatalf("Status = %q, want %q", dt.Status, "delivered")
	}
	if len(dt.Updates) != 2 {
		t.Fatalf("len(Updates) = %d, want 2", len(dt.Updates))
	}
	if dt.Updates[0].Status != "shipped" || dt.Updates[0].Note != "handed to courier" {
		t.Fatalf("first update = %+v", dt.Updates[0])
	}
	if !dt.Updates[1].Timestamp.Equal(second) {
		t.Fatalf("second update timestamp = %v, want %v", dt.Updates[1].Timestamp, second)
	}
}
