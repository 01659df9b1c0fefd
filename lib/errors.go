package lib

import (
	"errors"
	"homifyhub_server/database"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Storefront errors
var (
	ErrOutOfStock          = errors.New("variant is out of stock")
	ErrInsufficientStock   = errors.New("requested quantity exceeds available stock")
	ErrInvalidOTP          = errors.New("invalid or expired verification code")
	ErrInvalidCoupon       = errors.New("coupon is invalid or expired")
	ErrAmountMismatch      = errors.New("payment amount does not match order total")
	ErrDuplicatePayment    = errors.New("a payment was already submitted for this order")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrPaymentNotPending   = errors.New("payment is not pending")
)

// ValidationFailure is a business precondition failure tied to a request
// field, e.g. a missing phone number at checkout.
type ValidationFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationFailure) Error() string {
	return e.Field + " " + e.Message
}

// MapPgError translates PostgreSQL error codes into the sentinel errors the
// handlers know how to present.
func MapPgError(err error) error {
	switch database.SQLState(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict)
}

// GetUserMessage returns a message safe to show to the client.
func GetUserMessage(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return "The resource already exists"
	case errors.Is(err, ErrNotFound):
		return "The resource was not found"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	default:
		return "Something went wrong"
	}
}

// GetDetailForLogging returns the raw error text for structured logs.
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
