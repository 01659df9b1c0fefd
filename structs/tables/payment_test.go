package tables

import "testing"

func TestPaymentNeedsApproval(t *testing.T) {
	pending := &Payment{Status: PaymentStatusPending}
	if !pending.NeedsApproval() {
		t.Fatal("pending payment should need approval")
	}

	confirmed := &Payment{Status: PaymentStatusCompleted, IsConfirmed: true}
	if confirmed.NeedsApproval() {
		t.Fatal("confirmed payment should not need approval again")
	}
}

func TestPaymentCanReject(t *testing.T) {
	cases := []struct {
		status PaymentStatus
		want   bool
	}{
		{PaymentStatusPending, true},
		{PaymentStatusCompleted, false},
		{PaymentStatusFailed, false},
		{PaymentStatusRefunded, false},
		{PaymentStatusCancelled, false},
	}

	for _, tc := range cases {
		p := &Payment{Status: tc.status}
		if got := p.CanReject(); got != tc.want {
			t.Errorf("%s: CanReject() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestPaymentStatusValid(t *testing.T) {
	for _, s := range []PaymentStatus{
		PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed,
		PaymentStatusRefunded, PaymentStatusPartiallyRefunded, PaymentStatusCancelled,
	} {
		if !s.Valid() {
			t.Errorf("%s: Valid() = false, want true", s)
		}
	}

	if PaymentStatus("approved").Valid() {
		t.Error("unknown status reported valid")
	}
}
