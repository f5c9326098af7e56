package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/irsalhamdi/harmoni-music/api/web"
	"github.com/irsalhamdi/harmoni-music/api/weberr"
	"github.com/irsalhamdi/harmoni-music/core/claims"
)

// LoadAndSave loads the caller session before the handler runs and commits
// it afterwards, setting the session cookie.
func LoadAndSave(sess *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			var herr error
			sess.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				herr = handler(r.Context(), w, r)
			})).ServeHTTP(w, r.WithContext(ctx))

			return herr
		}
		return h
	}
	return m
}

// Identify stores the caller claims in the context. Requests without a
// bearer token, or with one that fails verification, proceed as guests.
func Identify(tokens *Tokens) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			c := claims.Guest

			if raw, ok := bearer(r); ok {
				if parsed, err := tokens.Parse(raw); err == nil {
					c = parsed
				}
			}

			return handler(claims.Set(ctx, c), w, r)
		}
		return h
	}
	return m
}

func Authenticate() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			if !claims.Current(ctx).Authenticated() {
				return weberr.NotAuthorized(errors.New("user not authenticated"))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

// Admin lets through only callers whose role may change the catalog.
func Admin() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			c := claims.Current(ctx)
			if !c.Authenticated() {
				return weberr.NotAuthorized(errors.New("user not authenticated"))
			}
			if !claims.CanMutateCatalog(c.Role) {
				return weberr.Forbidden(errors.New("user is not an admin"))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

func bearer(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
