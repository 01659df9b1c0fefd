package services

import "testing"

func TestFormatCents(t *testing.T) {
	cases := []struct {
		amount   int64
		currency string
		want     string
	}{
		{0, "BDT", "0.00 BDT"},
		{5, "BDT", "0.05 BDT"},
		{150, "BDT", "1.50 BDT"},
		{123456, "EUR", "1234.56 EUR"},
		{-250, "BDT", "-2.50 BDT"},
	}

	for _, tc := range cases {
		if got := formatCents(tc.amount, tc.currency); got != tc.want {
			t.Errorf("formatCents(%d, %q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}
