package services

import (
	"errors"
	"testing"

	"homifyhub_server/lib"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	as := &AuthService{}

	hash, err := as.HashPassword("correct horse battery staple", DefaultParams)
	if err != nil {
		t.Fatalf("HashPassword() = %v", err)
	}

	ok, err := as.VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() = %v", err)
	}
	if !ok {
		t.Fatal("correct password did not verify")
	}

	ok, err = as.VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() with wrong password = %v", err)
	}
	if ok {
		t.Fatal("wrong password verified")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	as := &AuthService{}

	first, err := as.HashPassword("same password", DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	second, err := as.HashPassword("same password", DefaultParams)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatal("two hashes of the same password are identical")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	as := &AuthService{}

	if _, err := as.VerifyPassword("anything", "not-a-hash"); !errors.Is(err, lib.ErrInvalidHash) {
		t.Fatalf("VerifyPassword() = %v, want ErrInvalidHash", err)
	}
}
