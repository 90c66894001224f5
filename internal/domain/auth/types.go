package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin Role = "admin"
)

// Identity represents the authenticated principal.
// Adapters map provider- or store-specific records into this shape.
type Identity struct {
	UserID string // stable user identifier (account id or OIDC sub)
	Email  string
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }

// Identity returns the identity carried by the session.
func (s Session) Identity() Identity {
	return Identity{UserID: s.UserID, Email: s.Email}
}

// ChangeKind classifies session-change notifications delivered to subscribers.
type ChangeKind string

const (
	// ChangeSignedIn fires when a session is created.
	ChangeSignedIn ChangeKind = "signed_in"
	// ChangeSignedOut fires when a session is terminated.
	ChangeSignedOut ChangeKind = "signed_out"
	// ChangeRevoked fires when an operator revokes a role out-of-band.
	ChangeRevoked ChangeKind = "revoked"
)

// Change is a session-change notification. Session is nil when the change
// leaves the subscriber without a session (sign-out, revocation).
type Change struct {
	Kind    ChangeKind
	Session *Session
}
