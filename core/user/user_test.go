package user

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Admin@Harmoni.COM "); got != "admin@harmoni.com" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatal(err)
	}
	if string(hash) == "admin123" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte("admin123")); err != nil {
		t.Fatalf("hash does not match: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte("admin124")); err == nil {
		t.Fatal("hash matches a different password")
	}
}
