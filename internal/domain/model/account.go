package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Account is a back-office login account. Accounts carry no authorization by
// themselves; an operator grants roles through the user_roles table.
type Account struct {
	ID           string    `json:"id"         db:"id"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RoleAssignment grants a named role to an account.
type RoleAssignment struct {
	UserID    string    `json:"user_id"    db:"user_id"`
	Role      string    `json:"role"       db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const minPasswordLen = 8

// CreateAccountRequest represents a signup or operator-driven account creation.
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the request for a usable email and password.
func (r *CreateAccountRequest) Validate() error {
	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		return errors.New("email must be a valid email address")
	}
	if len(r.Password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
