package auth

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/irsalhamdi/harmoni-music/rate"
)

func loginRequest(addr string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"Admin@harmoni.com","password":"guess"}`))
	r.RemoteAddr = addr
	return r
}

func TestLoginLimitedPerClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := rate.NewLimiter(ctx, 1, time.Minute, rate.Every(time.Hour))
	attacker := loginRequest("203.0.113.9:5555")
	admin := loginRequest("198.51.100.7:4444")

	if !limiter.Check(loginKey(attacker, "admin@harmoni.com")) {
		t.Fatal("first attempt must be allowed")
	}

	h := HandleLogin(nil, NewTokens([]byte("secret"), time.Hour), limiter)
	if got := status(h(attacker.Context(), httptest.NewRecorder(), attacker)); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for the exhausted client, got %d", got)
	}

	if !limiter.Check(loginKey(admin, "admin@harmoni.com")) {
		t.Fatal("another client is locked out by the exhausted one")
	}
}

func TestLoginKey(t *testing.T) {
	a := loginKey(loginRequest("10.0.0.1:1000"), "a@x.com")
	if a != loginKey(loginRequest("10.0.0.1:2000"), "a@x.com") {
		t.Fatal("source port must not change the key")
	}
	if a == loginKey(loginRequest("10.0.0.2:1000"), "a@x.com") {
		t.Fatal("addresses share a key")
	}
	if a == loginKey(loginRequest("10.0.0.1:1000"), "b@x.com") {
		t.Fatal("emails share a key")
	}
}
