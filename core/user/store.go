package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/irsalhamdi/harmoni-music/core/claims"
	"github.com/irsalhamdi/harmoni-music/database"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email is already registered")
	ErrBadCredentials = errors.New("email or password is incorrect")
)

// NormalizeEmail is applied to every email before it reaches the database,
// so uniqueness ignores case and surrounding spaces.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return hash, nil
}

// Create inserts u and returns it with its id. An email already in use
// fails with ErrDuplicateEmail and leaves the stored user untouched.
func Create(ctx context.Context, db sqlx.ExtContext, u User) (User, error) {
	const q = `
	INSERT INTO users
		(name, email, password_hash, role, created_at)
	VALUES
		(:name, :email, :password_hash, :role, :created_at)
	RETURNING user_id`

	u.Email = NormalizeEmail(u.Email)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	rows, err := sqlx.NamedQueryContext(ctx, db, q, u)
	if err != nil {
		if errors.Is(database.MapError(err), database.ErrDBDuplicatedEntry) {
			return User{}, fmt.Errorf("email[%s]: %w", u.Email, ErrDuplicateEmail)
		}
		return User{}, fmt.Errorf("inserting user: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return User{}, fmt.Errorf("inserting user: %w", database.MapError(err))
		}
		return User{}, errors.New("inserting user: no id returned")
	}
	if err := rows.Scan(&u.ID); err != nil {
		return User{}, fmt.Errorf("scanning user id: %w", err)
	}

	return u, nil
}

func Fetch(ctx context.Context, db sqlx.ExtContext, id int64) (User, error) {
	const q = `
	SELECT
		*
	FROM
		users
	WHERE
		user_id = $1`

	var u User
	if err := database.GetContext(ctx, db, &u, q, id); err != nil {
		if errors.Is(err, database.ErrDBNotFound) {
			return User{}, fmt.Errorf("user[%d]: %w", id, ErrNotFound)
		}
		return User{}, fmt.Errorf("selecting user[%d]: %w", id, err)
	}

	return u, nil
}

func FetchByEmail(ctx context.Context, db sqlx.ExtContext, email string) (User, error) {
	const q = `
	SELECT
		*
	FROM
		users
	WHERE
		email = $1`

	email = NormalizeEmail(email)

	var u User
	if err := database.GetContext(ctx, db, &u, q, email); err != nil {
		if errors.Is(err, database.ErrDBNotFound) {
			return User{}, fmt.Errorf("user with email[%s]: %w", email, ErrNotFound)
		}
		return User{}, fmt.Errorf("selecting user with email[%s]: %w", email, err)
	}

	return u, nil
}

// Authenticate returns the user owning cr. Unknown emails and wrong
// passwords both fail with ErrBadCredentials.
func Authenticate(ctx context.Context, db sqlx.ExtContext, cr Credentials) (User, error) {
	u, err := FetchByEmail(ctx, db, cr.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrBadCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(cr.Password)); err != nil {
		return User{}, ErrBadCredentials
	}

	return u, nil
}

// EnsureAdmin creates the admin account unless its email is already taken.
func EnsureAdmin(ctx context.Context, db sqlx.ExtContext, name, email, password string) (User, bool, error) {
	u, err := FetchByEmail(ctx, db, email)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, false, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return User{}, false, err
	}

	u, err = Create(ctx, db, User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         claims.RoleAdmin,
	})
	if err != nil {
		return User{}, false, fmt.Errorf("seeding admin: %w", err)
	}

	return u, true, nil
}
