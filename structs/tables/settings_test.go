package tables

import (
	"testing"
	"time"
)

func TestCouponIsValidAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	cases := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{"active without bounds", Coupon{IsActive: true}, true},
		{"inactive", Coupon{IsActive: false}, false},
		{"inside window", Coupon{IsActive: true, ValidFrom: &before, ValidUntil: &after}, true},
		{"not yet valid", Coupon{IsActive: true, ValidFrom: &after}, false},
		{"expired", Coupon{IsActive: true, ValidUntil: &before}, false},
		{"starts exactly now", Coupon{IsActive: true, ValidFrom: &now}, true},
		{"ends exactly now", Coupon{IsActive: true, ValidUntil: &now}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.coupon.IsValidAt(now); got != tc.want {
				t.Fatalf("IsValidAt() = %v, want %v", got, tc.want)
			}
		})
	}
}
