package tables

import (
	"testing"

	"github.com/google/uuid"
)

func TestItemRefValidate(t *testing.T) {
	variantId := uuid.New()
	bundleId := uuid.New()

	cases := []struct {
		name    string
		ref     ItemRef
		wantErr bool
	}{
		{"variant only", ItemRef{VariantId: &variantId}, false},
		{"bundle only", ItemRef{BundleId: &bundleId}, false},
		{"both set", ItemRef{VariantId: &variantId, BundleId: &bundleId}, true},
		{"neither set", ItemRef{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ref.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCartItemCount(t *testing.T) {
	cart := &Cart{Items: []*CartItem{
		{Quantity: 2},
		{Quantity: 3},
	}}

	if got := cart.ItemCount(); got != 5 {
		t.Fatalf("ItemCount() = %d, want 5", got)
	}

	empty := &Cart{}
	if got := empty.ItemCount(); got != 0 {
		t.Fatalf("ItemCount() on empty cart = %d, want 0", got)
	}
}

func TestCartItemUnitPriceAndSubtotal(t *testing.T) {
	discount := int64(1500)

	item := &CartItem{
		Quantity: 3,
		Variant:  &Variant{Price: 2000, DiscountPrice: &discount},
	}
	if got := item.UnitPrice(); got != 1500 {
		t.Fatalf("UnitPrice() = %d, want 1500", got)
	}
	if got := item.Subtotal(); got != 4500 {
		t.Fatalf("Subtotal() = %d, want 4500", got)
	}

	bundleItem := &CartItem{
		Quantity: 2,
		Bundle:   &Bundle{BundlePrice: 5000},
	}
	if got := bundleItem.Subtotal(); got != 10000 {
		t.Fatalf("bundle Subtotal() = %d, want 10000", got)
	}

	// Unloaded relation falls back to zero rather than panicking.
	bare := &CartItem{Quantity: 1}
	if got := bare.UnitPrice(); got != 0 {
		t.Fatalf("UnitPrice() without relation = %d, want 0", got)
	}
}
