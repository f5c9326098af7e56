package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/irsalhamdi/harmoni-music/core/claims"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens([]byte("secret"), 24*time.Hour)

	want := claims.Claims{UserID: 7, Role: claims.RoleInstructor}
	raw, exp, err := tokens.Issue(want)
	if err != nil {
		t.Fatal(err)
	}
	if d := time.Until(exp); d < 23*time.Hour || d > 25*time.Hour {
		t.Fatalf("unexpected expiry %v", exp)
	}

	got, err := tokens.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestTokenRejected(t *testing.T) {
	tokens := NewTokens([]byte("secret"), time.Hour)
	raw, _, err := tokens.Issue(claims.Claims{UserID: 1, Role: claims.RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}

	expired := NewTokens([]byte("secret"), time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	guest, _, err := tokens.Issue(claims.Guest)
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		tokens *Tokens
		raw    string
	}{
		"other secret": {NewTokens([]byte("other"), time.Hour), raw},
		"expired":      {expired, raw},
		"garbage":      {tokens, "not.a.token"},
		"tampered":     {tokens, raw + "x"},
		"guest role":   {tokens, guest},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := tc.tokens.Parse(tc.raw); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
