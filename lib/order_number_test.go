package lib

import (
	"testing"
	"time"
)

func TestNextOrderNumberFirstOfDay(t *testing.T) {
	day := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	got := NextOrderNumber("", day)
	want := "ORD-20260831-0001"
	if got != want {
		t.Fatalf("NextOrderNumber(\"\") = %q, want %q", got, want)
	}
}

func TestNextOrderNumberIncrements(t *testing.T) {
	day := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	got := NextOrderNumber("ORD-20260831-0042", day)
	want := "ORD-20260831-0043"
	if got != want {
		t.Fatalf("NextOrderNumber = %q, want %q", got, want)
	}
}

func TestNextOrderNumberResetsPerDay(t *testing.T) {
	nextDay := time.Date(2026, 9, 1, 0, 5, 0, 0, time.UTC)

	// The highest number belongs to the previous day, so the sequence starts
	// over.
	got := NextOrderNumber("ORD-20260831-0042", nextDay)
	want := "ORD-20260901-0001"
	if got != want {
		t.Fatalf("NextOrderNumber = %q, want %q", got, want)
	}
}

func TestNextOrderNumberPastFourDigits(t *testing.T) {
	day := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	got := NextOrderNumber("ORD-20260831-9999", day)
	want := "ORD-20260831-10000"
	if got != want {
		t.Fatalf("NextOrderNumber = %q, want %q", got, want)
	}
}

func TestOrderNumberPrefix(t *testing.T) {
	day := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	if got := OrderNumberPrefix(day); got != "ORD-20260102" {
		t.Fatalf("OrderNumberPrefix = %q, want %q", got, "ORD-20260102")
	}
}
