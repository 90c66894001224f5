package httpx

import (
	"context"

	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
)

// identityKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type identityKey struct{}

type sessionIDKey struct{}

// SetIdentityInContext returns a child context carrying the authorized admin
// identity. If identity is nil, the original ctx is returned unchanged.
func SetIdentityInContext(ctx context.Context, identity *domainauth.Identity) context.Context {
	if identity == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the admin identity from context and a boolean
// indicating presence. Only requests that passed the admin guard carry one.
func GetIdentityFromContext(ctx context.Context) (*domainauth.Identity, bool) {
	if identity, ok := ctx.Value(identityKey{}).(*domainauth.Identity); ok && identity != nil {
		return identity, true
	}
	return nil, false
}

// SetSessionIDInContext returns a child context carrying the request's session id.
func SetSessionIDInContext(ctx context.Context, sessionID string) context.Context {
	if sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// GetSessionIDFromContext returns the session id bound to the request, if any.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok && id != "" {
		return id, true
	}
	return "", false
}
