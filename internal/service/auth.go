// Package service contains the application services that orchestrate domain
// logic over the repository and adapter ports.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
	"github.com/nextgen-academy/academy-api/internal/ports"
)

const defaultSessionTTL = 12 * time.Hour

// AuthServiceOptions configures an AuthService. Provider is nil in
// credentials mode; Accounts and Hasher are nil in oauth mode.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	Sessions ports.SessionStore
	Accounts ports.AccountStore
	Roles    ports.RoleStore
	Manager  ports.RoleManager

	SessionTTL  time.Duration
	AllowSignup bool
	Hasher      ports.PasswordHasher
	Logger      *slog.Logger

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// AuthService owns back-office authentication: login in its three modes,
// session lifecycle, the admin role question, and session-change fan-out.
type AuthService struct {
	provider ports.AuthProvider
	sessions ports.SessionStore
	accounts ports.AccountStore
	roles    ports.RoleStore
	manager  ports.RoleManager
	hasher   ports.PasswordHasher

	sessionTTL  time.Duration
	allowSignup bool
	logger      *slog.Logger
	now         func() time.Time

	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]subscriber
}

type subscriber struct {
	sessionID string
	handler   func(domainauth.Change)
}

// NewAuthService creates an AuthService from options.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if opts.Roles == nil {
		return nil, errors.New("role store is required")
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AuthService{
		provider:    opts.Provider,
		sessions:    opts.Sessions,
		accounts:    opts.Accounts,
		roles:       opts.Roles,
		manager:     opts.Manager,
		hasher:      opts.Hasher,
		sessionTTL:  opts.SessionTTL,
		allowSignup: opts.AllowSignup,
		logger:      opts.Logger,
		now:         opts.Now,
		subs:        make(map[uint64]subscriber),
	}, nil
}

// BeginLoginResult carries what the login handler needs to redirect the
// browser to the identity provider.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin starts an oauth/mock-mode login flow.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (BeginLoginResult, error) {
	if s.provider == nil {
		return BeginLoginResult{}, apperrors.Validation("oauth login is not enabled")
	}
	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return BeginLoginResult{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "begin login")
	}
	return BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLogin finishes an oauth/mock-mode flow: exchanges the code,
// creates a session, and notifies subscribers bound to it.
func (s *AuthService) CompleteLogin(ctx context.Context, in ports.ExchangeInput) (*domainauth.Session, error) {
	if s.provider == nil {
		return nil, apperrors.Validation("oauth login is not enabled")
	}
	identity, err := s.provider.Exchange(ctx, in)
	if err != nil {
		return nil, apperrors.Unauthorized("login failed")
	}
	return s.createSession(ctx, identity)
}

// SignIn authenticates a credentials-mode login. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if s.accounts == nil || s.hasher == nil {
		return nil, apperrors.Validation("credentials login is not enabled")
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "verify password")
	}
	if !ok {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	return s.createSession(ctx, domainauth.Identity{UserID: account.ID, Email: account.Email})
}

// SignUp creates a back-office account. New accounts hold no roles; an
// operator grants admin separately.
func (s *AuthService) SignUp(ctx context.Context, req model.CreateAccountRequest) (*model.Account, error) {
	if !s.allowSignup {
		return nil, apperrors.Forbidden("signup is disabled")
	}
	if s.accounts == nil || s.hasher == nil {
		return nil, apperrors.Validation("credentials login is not enabled")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}
	return s.accounts.Create(ctx, req.Email, hash)
}

// GetSession resolves a session id. A missing or expired session is
// (nil, nil), not an error; the caller treats it as unauthenticated.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sess, nil
}

// GetIdentity re-fetches the identity for a user id from the account store.
// In oauth mode there is no local account store and callers derive identity
// from the session instead.
func (s *AuthService) GetIdentity(ctx context.Context, userID string) (*domainauth.Identity, error) {
	if s.accounts == nil {
		return nil, apperrors.Internal("no account store configured")
	}
	account, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domainauth.Identity{UserID: account.ID, Email: account.Email}, nil
}

// SignOut deletes the session and notifies its subscribers with a
// nil-session change. Signing out an empty or unknown id is a no-op.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete session")
	}
	s.publishToSession(sessionID, domainauth.Change{Kind: domainauth.ChangeSignedOut, Session: nil})
	return nil
}

// HasAdminRole reports whether exactly one admin role assignment exists for
// the user. No assignment is (false, nil); duplicate assignments or any
// query failure surface as errors so callers fail closed.
func (s *AuthService) HasAdminRole(ctx context.Context, userID string) (bool, error) {
	_, err := s.roles.QueryRole(ctx, userID, domainauth.RoleAdmin)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GrantAdmin assigns the admin role to a user.
func (s *AuthService) GrantAdmin(ctx context.Context, userID string) error {
	if s.manager == nil {
		return apperrors.Internal("no role manager configured")
	}
	return s.manager.Grant(ctx, userID, domainauth.RoleAdmin)
}

// RevokeAdmin removes the admin role and pushes a revocation change to every
// live session of the user, so their gates re-verify and fail closed.
func (s *AuthService) RevokeAdmin(ctx context.Context, userID string) (bool, error) {
	if s.manager == nil {
		return false, apperrors.Internal("no role manager configured")
	}
	revoked, err := s.manager.Revoke(ctx, userID, domainauth.RoleAdmin)
	if err != nil {
		return false, err
	}
	if revoked {
		s.publishToUser(ctx, userID, domainauth.ChangeRevoked)
	}
	return revoked, nil
}

// ListAdmins returns every admin role assignment, oldest first.
func (s *AuthService) ListAdmins(ctx context.Context) ([]*model.RoleAssignment, error) {
	if s.manager == nil {
		return nil, apperrors.Internal("no role manager configured")
	}
	return s.manager.ListByRole(ctx, domainauth.RoleAdmin)
}

// Subscribe registers a handler for changes affecting one session id and
// returns an unsubscribe function. Handlers run synchronously on the
// publishing goroutine.
func (s *AuthService) Subscribe(sessionID string, handler func(domainauth.Change)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = subscriber{sessionID: sessionID, handler: handler}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *AuthService) createSession(ctx context.Context, identity domainauth.Identity) (*domainauth.Session, error) {
	if identity.UserID == "" {
		return nil, apperrors.Internal("identity has no user id")
	}
	sess := domainauth.Session{
		ID:        uuid.New().String(),
		UserID:    identity.UserID,
		Email:     identity.Email,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "save session")
	}
	s.publishToSession(sess.ID, domainauth.Change{Kind: domainauth.ChangeSignedIn, Session: &sess})
	return &sess, nil
}

// publishToSession delivers a change to subscribers bound to the session id.
func (s *AuthService) publishToSession(sessionID string, change domainauth.Change) {
	for _, sub := range s.snapshotSubs(sessionID) {
		sub.handler(change)
	}
}

// publishToUser delivers a change to subscribers whose bound session belongs
// to the given user, resolving each subscriber's session at publish time.
func (s *AuthService) publishToUser(ctx context.Context, userID string, kind domainauth.ChangeKind) {
	for _, sub := range s.snapshotSubs("") {
		sess, err := s.GetSession(ctx, sub.sessionID)
		if err != nil {
			s.logger.WarnContext(ctx, "resolve session for change fan-out failed",
				"session_id", sub.sessionID, "error", err)
			continue
		}
		if sess == nil || sess.UserID != userID {
			continue
		}
		sub.handler(domainauth.Change{Kind: kind, Session: sess})
	}
}

// snapshotSubs copies matching subscribers under the lock so handlers run
// without holding it. An empty sessionID matches every subscriber.
func (s *AuthService) snapshotSubs(sessionID string) []subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		if sessionID == "" || sub.sessionID == sessionID {
			out = append(out, sub)
		}
	}
	return out
}
