package service

import (
	"context"

	"github.com/nextgen-academy/academy-api/internal/authgate"
	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// sessionBackend adapts the auth service to the gate's Backend interface,
// bound to one session id.
type sessionBackend struct {
	svc       *AuthService
	sessionID string
}

// GateBackendFactory returns the factory the gate registry uses to bind a
// backend to each admin session.
func (s *AuthService) GateBackendFactory() authgate.BackendFactory {
	return func(sessionID string) authgate.Backend {
		return &sessionBackend{svc: s, sessionID: sessionID}
	}
}

func (b *sessionBackend) CurrentSession(ctx context.Context) (*domainauth.Session, error) {
	return b.svc.GetSession(ctx, b.sessionID)
}

// CurrentIdentity re-fetches from the account store when one is configured.
// In oauth mode identities live at the provider, so the session's copy is
// the freshest view we have.
func (b *sessionBackend) CurrentIdentity(ctx context.Context, userID string) (*domainauth.Identity, error) {
	if b.svc.accounts == nil {
		sess, err := b.svc.GetSession(ctx, b.sessionID)
		if err != nil {
			return nil, err
		}
		if sess == nil {
			return nil, apperrors.NotFound("session not found")
		}
		identity := sess.Identity()
		return &identity, nil
	}
	return b.svc.GetIdentity(ctx, userID)
}

func (b *sessionBackend) HasAdminRole(ctx context.Context, userID string) (bool, error) {
	return b.svc.HasAdminRole(ctx, userID)
}

func (b *sessionBackend) SignOut(ctx context.Context) error {
	return b.svc.SignOut(ctx, b.sessionID)
}

func (b *sessionBackend) Subscribe(handler func(domainauth.Change)) func() {
	return b.svc.Subscribe(b.sessionID, handler)
}
