package claims

import (
	"context"
	"errors"
	"testing"
)

func TestCanMutateCatalog(t *testing.T) {
	tests := map[Role]bool{
		RoleGuest:      false,
		RoleMember:     false,
		RoleInstructor: false,
		RoleAdmin:      true,
		Role("ADMIN"):  false,
		Role(""):       false,
	}

	for role, exp := range tests {
		if got := CanMutateCatalog(role); got != exp {
			t.Errorf("role %q: expected %v, got %v", role, exp, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"guest", "member", "instructor", "admin"} {
		r, err := ParseRole(s)
		if err != nil {
			t.Fatalf("parsing %q: %v", s, err)
		}
		if string(r) != s {
			t.Fatalf("expected %q, got %q", s, r)
		}
	}

	if _, err := ParseRole("superuser"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	if _, err := Get(ctx); err == nil {
		t.Fatal("expected an error for missing claims")
	}
	if got := Current(ctx); got != Guest {
		t.Fatalf("expected guest claims, got %+v", got)
	}
	if IsAdmin(ctx) {
		t.Fatal("a guest must not be admin")
	}

	ctx = Set(ctx, Claims{UserID: 7, Role: RoleAdmin})
	if !IsAdmin(ctx) {
		t.Fatal("expected admin")
	}
	if !Current(ctx).Authenticated() {
		t.Fatal("expected authenticated claims")
	}
}
