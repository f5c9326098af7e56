package user

import (
	"time"

	"github.com/irsalhamdi/harmoni-music/core/claims"
)

type User struct {
	ID           int64       `json:"id" db:"user_id"`
	Name         string      `json:"name" db:"name"`
	Email        string      `json:"email" db:"email"`
	PasswordHash []byte      `json:"-" db:"password_hash"`
	Role         claims.Role `json:"role" db:"role"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
}

type UserNew struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=member instructor"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
