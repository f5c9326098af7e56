package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/irsalhamdi/harmoni-music/core/claims"
)

var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	Role claims.Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 bearer tokens carrying a user id and role.
type Tokens struct {
	secret  []byte
	timeout time.Duration
	now     func() time.Time
}

func NewTokens(secret []byte, timeout time.Duration) *Tokens {
	return &Tokens{secret: secret, timeout: timeout, now: time.Now}
}

// Issue signs a token for c that expires after the configured timeout.
func (t *Tokens) Issue(c claims.Claims) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.timeout)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(c.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies raw and returns its claims. Every failure, expiry included,
// matches ErrInvalidToken.
func (t *Tokens) Parse(raw string) (claims.Claims, error) {
	var tc tokenClaims
	_, err := jwt.ParseWithClaims(raw, &tc, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return claims.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil || id < 1 {
		return claims.Claims{}, fmt.Errorf("%w: subject[%s]", ErrInvalidToken, tc.Subject)
	}

	role, err := claims.ParseRole(string(tc.Role))
	if err != nil || role == claims.RoleGuest {
		return claims.Claims{}, fmt.Errorf("%w: role[%s]", ErrInvalidToken, tc.Role)
	}

	return claims.Claims{UserID: id, Role: role}, nil
}
