package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapPgErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "orders_order_number_key"}

	mapped := MapPgError(pgErr)
	if !errors.Is(mapped, ErrConflict) {
		t.Fatalf("MapPgError(23505) = %v, want ErrConflict", mapped)
	}
	if !IsUniqueViolation(mapped) {
		t.Fatal("IsUniqueViolation(mapped) = false, want true")
	}

	// Wrapping between the driver and the mapper does not hide the code.
	wrapped := MapPgError(fmt.Errorf("inserting order: %w", pgErr))
	if !IsUniqueViolation(wrapped) {
		t.Fatal("IsUniqueViolation(wrapped) = false, want true")
	}
}

func TestMapPgErrorNoDataFound(t *testing.T) {
	mapped := MapPgError(&pgconn.PgError{Code: "P0002"})
	if !errors.Is(mapped, ErrNotFound) {
		t.Fatalf("MapPgError(P0002) = %v, want ErrNotFound", mapped)
	}
}

func TestMapPgErrorPassthrough(t *testing.T) {
	plain := errors.New("connection reset")
	if got := MapPgError(plain); got != plain {
		t.Fatalf("MapPgError(plain) = %v, want the error unchanged", got)
	}

	if IsUniqueViolation(plain) {
		t.Fatal("IsUniqueViolation(plain) = true, want false")
	}
}
