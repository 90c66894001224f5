package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/data; orchestration
// in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
)

// ErrSessionNotFound is returned by SessionStore.Get when no live session
// exists for the given id.
var ErrSessionNotFound = errors.New("session not found")

// BeginInput carries inputs for initiating an OAuth/OIDC flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes an authentication flow against an IdP.
// Used only when the back-office runs in oauth mode.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// AccountStore persists back-office login accounts.
type AccountStore interface {
	Create(ctx context.Context, email, passwordHash string) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	GetByID(ctx context.Context, id string) (*model.Account, error)
}

// RoleStore answers the single authorization question the gate asks: does
// this user hold the given role. Implementations must use expect-single
// semantics; more than one matching row is an error condition, not a grant.
type RoleStore interface {
	QueryRole(ctx context.Context, userID string, role domainauth.Role) (*model.RoleAssignment, error)
}

// RoleManager mutates role assignments. Used by the operator CLI and the
// back-office role endpoints, never by the gate itself.
type RoleManager interface {
	Grant(ctx context.Context, userID string, role domainauth.Role) error
	Revoke(ctx context.Context, userID string, role domainauth.Role) (bool, error)
	ListByRole(ctx context.Context, role domainauth.Role) ([]*model.RoleAssignment, error)
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}
