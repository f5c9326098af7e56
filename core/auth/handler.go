package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/irsalhamdi/harmoni-music/api/web"
	"github.com/irsalhamdi/harmoni-music/api/weberr"
	"github.com/irsalhamdi/harmoni-music/core/claims"
	"github.com/irsalhamdi/harmoni-music/core/user"
	"github.com/irsalhamdi/harmoni-music/rate"
	"github.com/irsalhamdi/harmoni-music/validate"
	"github.com/jmoiron/sqlx"
)

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      user.User `json:"user"`
}

func HandleRegister(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var un user.UserNew
		if err := web.Decode(w, r, &un); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(un); err != nil {
			return weberr.Invalid(err)
		}

		role := claims.RoleMember
		if un.Role != "" {
			role = claims.Role(un.Role)
		}

		hash, err := user.HashPassword(un.Password)
		if err != nil {
			return err
		}

		u, err := user.Create(ctx, db, user.User{
			Name:         un.Name,
			Email:        un.Email,
			PasswordHash: hash,
			Role:         role,
		})
		if err != nil {
			if errors.Is(err, user.ErrDuplicateEmail) {
				return weberr.Conflict(err, "email is already registered", weberr.WithFields(map[string]interface{}{
					"email": user.NormalizeEmail(un.Email),
				}))
			}
			return fmt.Errorf("registering user: %w", err)
		}

		return web.Respond(ctx, w, u, http.StatusCreated)
	}
}

// loginKey scopes login attempts to one email from one client address, so
// exhausting the attempts elsewhere does not lock the account.
func loginKey(r *http.Request, email string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return email + "|" + host
}

// HandleLogin exchanges credentials for a bearer token. Attempts are limited
// per email and client address.
func HandleLogin(db *sqlx.DB, tokens *Tokens, limiter *rate.Limiter) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var cr user.Credentials
		if err := web.Decode(w, r, &cr); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(cr); err != nil {
			return weberr.Invalid(err)
		}

		email := user.NormalizeEmail(cr.Email)
		if !limiter.Check(loginKey(r, email)) {
			return weberr.TooManyRequests(fmt.Errorf("login attempts exhausted for email[%s] from %s", email, r.RemoteAddr))
		}

		u, err := user.Authenticate(ctx, db, cr)
		if err != nil {
			if errors.Is(err, user.ErrBadCredentials) {
				return weberr.NewError(err, err.Error(), http.StatusUnauthorized)
			}
			return fmt.Errorf("authenticating: %w", err)
		}

		token, exp, err := tokens.Issue(claims.Claims{UserID: u.ID, Role: u.Role})
		if err != nil {
			return err
		}

		return web.Respond(ctx, w, Session{Token: token, ExpiresAt: exp, User: u}, http.StatusOK)
	}
}

func HandleProfile(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		u, err := user.Fetch(ctx, db, clm.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return weberr.NotAuthorized(err)
			}
			return fmt.Errorf("fetching profile: %w", err)
		}

		return web.Respond(ctx, w, u, http.StatusOK)
	}
}
