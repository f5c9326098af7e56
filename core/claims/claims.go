package claims

import (
	"context"
	"errors"
	"fmt"
)

type Role string

const (
	RoleGuest      Role = "guest"
	RoleMember     Role = "member"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleGuest, RoleMember, RoleInstructor, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// CanMutateCatalog reports whether role may add, edit or delete courses and
// products.
func CanMutateCatalog(role Role) bool {
	return role == RoleAdmin
}

type Claims struct {
	UserID int64
	Role   Role
}

// Guest is the identity of a caller without a valid token.
var Guest = Claims{Role: RoleGuest}

func (c Claims) Authenticated() bool {
	return c.UserID != 0 && c.Role != RoleGuest
}

type ctxKey int

const claimsKey ctxKey = 1

func Set(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func Get(ctx context.Context) (Claims, error) {
	v, ok := ctx.Value(claimsKey).(Claims)
	if !ok {
		return Claims{}, errors.New("claim value missing from context")
	}
	return v, nil
}

// Current returns the caller claims, falling back to Guest.
func Current(ctx context.Context) Claims {
	c, err := Get(ctx)
	if err != nil {
		return Guest
	}
	return c
}

func IsAdmin(ctx context.Context) bool {
	return Current(ctx).Role == RoleAdmin
}
