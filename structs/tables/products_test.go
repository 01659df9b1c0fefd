package tables

import "testing"

func TestVariantFinalPrice(t *testing.T) {
	v := &Variant{Price: 2500}
	if got := v.FinalPrice(); got != 2500 {
		t.Fatalf("FinalPrice() = %d, want 2500", got)
	}

	discount := int64(1999)
	v.DiscountPrice = &discount
	if got := v.FinalPrice(); got != 1999 {
		t.Fatalf("FinalPrice() with discount = %d, want 1999", got)
	}

	// A discount of zero still wins over the base price.
	zero := int64(0)
	v.DiscountPrice = &zero
	if got := v.FinalPrice(); got != 0 {
		t.Fatalf("FinalPrice() with zero discount = %d, want 0", got)
	}
}

func TestVariantTotalStock(t *testing.T) {
	v := &Variant{Stocks: []*Stock{
		{Quantity: 5},
		{Quantity: 3},
		{Quantity: -2},
		{Quantity: 0},
	}}

	// Negative correction batches do not subtract from availability.
	if got := v.TotalStock(); got != 8 {
		t.Fatalf("TotalStock() = %d, want 8", got)
	}

	empty := &Variant{}
	if got := empty.TotalStock(); got != 0 {
		t.Fatalf("TotalStock() without batches = %d, want 0", got)
	}
}

func TestBundleFinalPrice(t *testing.T) {
	b := &Bundle{BundlePrice: 9900}
	if got := b.FinalPrice(); got != 9900 {
		t.Fatalf("FinalPrice() = %d, want 9900", got)
	}

	discount := int64(7900)
	b.DiscountPrice = &discount
	if got := b.FinalPrice(); got != 7900 {
		t.Fatalf("FinalPrice() with discount = %d, want 7900", got)
	}
}
