package handling

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homifyhub_server/lib"

	"github.com/MonkyMars/gecho"
)

func testLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", lib.ErrNotFound, http.StatusNotFound},
		{"conflict", lib.ErrConflict, http.StatusConflict},
		{"duplicate payment", lib.ErrDuplicatePayment, http.StatusConflict},
		{"out of stock", lib.ErrOutOfStock, http.StatusBadRequest},
		{"insufficient stock", lib.ErrInsufficientStock, http.StatusBadRequest},
		{"invalid otp", lib.ErrInvalidOTP, http.StatusBadRequest},
		{"invalid coupon", lib.ErrInvalidCoupon, http.StatusBadRequest},
		{"amount mismatch", lib.ErrAmountMismatch, http.StatusBadRequest},
		{"not cancellable", lib.ErrOrderNotCancellable, http.StatusBadRequest},
		{"payment not pending", lib.ErrPaymentNotPending, http.StatusBadRequest},
		{"invalid credentials", lib.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", lib.ErrExpiredToken, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	logger := testLogger()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondError(tc.err, logger, rec)
			if rec.Code != tc.want {
				t.Fatalf("RespondError(%v) wrote status %d, want %d", tc.err, rec.Code, tc.want)
			}
		})
	}
}

func TestRespondErrorValidationFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(&lib.ValidationFailure{Field: "phone", Message: "is required"}, testLogger(), rec)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("validation failure wrote status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRespondErrorWrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := errors.Join(errors.New("loading order"), lib.ErrNotFound)
	RespondError(wrapped, testLogger(), rec)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("wrapped not-found wrote status %d, want %d", rec.Code, http.StatusNotFound)
	}
}
