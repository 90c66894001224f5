// Package authgate derives and maintains the admin authorization status for
// one back-office session context. It is the single authority the route guard
// consults before letting a request into the admin area.
package authgate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
)

// Status is the derived authentication/authorization state of a session context.
type Status int

const (
	// StatusLoading is the initial state; consumers must not make
	// authorization decisions while the gate reports it.
	StatusLoading Status = iota
	// StatusUnauthenticated means no session, a non-admin session (which is
	// force-terminated), or any backend failure. Fail closed.
	StatusUnauthenticated
	// StatusAuthorized means a live session whose identity holds the admin role.
	StatusAuthorized
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Backend is the facade of backend operations the gate consumes. All methods
// are remote calls with network failure modes; the gate absorbs every error
// into its three-state result.
type Backend interface {
	// CurrentSession returns the session this context is bound to, or nil
	// when none exists (expired, deleted, never created).
	CurrentSession(ctx context.Context) (*domainauth.Session, error)

	// CurrentIdentity re-fetches the identity for the given user id,
	// capturing any server-side profile refresh.
	CurrentIdentity(ctx context.Context, userID string) (*domainauth.Identity, error)

	// HasAdminRole reports whether exactly one admin role assignment exists
	// for the user. Zero rows is (false, nil); more than one row or any
	// query failure is an error.
	HasAdminRole(ctx context.Context, userID string) (bool, error)

	// SignOut terminates the bound session. Best-effort from the gate's
	// perspective.
	SignOut(ctx context.Context) error

	// Subscribe registers a session-change handler and returns an
	// unsubscribe function. The handler receives a nil-session change when
	// the context loses its session.
	Subscribe(handler func(domainauth.Change)) (unsubscribe func())
}

// Gate tracks the admin authorization status of one session context.
//
// The gate re-evaluates on every session-change notification. Overlapping
// role verifications are keyed by a monotonically increasing attempt id;
// a result is committed only if no newer attempt has started, so a stale
// slow check can never overwrite a fresher outcome.
type Gate struct {
	backend Backend
	logger  *slog.Logger

	mu       sync.Mutex
	status   Status
	identity *domainauth.Identity
	attempt  uint64 // id of the most recently initiated evaluation
	closed   bool

	readyOnce   sync.Once
	ready       chan struct{}
	unsubscribe func()
	unsubOnce   sync.Once
}

// New constructs a gate over the given backend. Call Start to begin evaluation.
func New(backend Backend, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{
		backend: backend,
		logger:  logger,
		status:  StatusLoading,
		ready:   make(chan struct{}),
	}
}

// Start subscribes to session-change notifications and restores the current
// session. The subscription is active before any non-Loading status is
// reported. Start never returns an error: all failures resolve to
// StatusUnauthenticated.
func (g *Gate) Start(ctx context.Context) {
	// Subscribe first so no change delivered during restoration is missed.
	unsub := g.backend.Subscribe(func(change domainauth.Change) {
		g.handleChange(context.Background(), change)
	})
	g.mu.Lock()
	g.unsubscribe = unsub
	g.mu.Unlock()

	attempt := g.nextAttempt()

	session, err := g.backend.CurrentSession(ctx)
	if err != nil {
		g.logger.WarnContext(ctx, "session restore failed", "error", err)
		g.commit(attempt, StatusUnauthenticated, nil)
		return
	}
	if session == nil {
		g.commit(attempt, StatusUnauthenticated, nil)
		return
	}
	g.verify(ctx, session.UserID, attempt)
}

// Status returns the current derived status and, when authorized, the identity.
func (g *Gate) Status() (Status, *domainauth.Identity) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status, g.identity
}

// WaitReady blocks until the gate first leaves StatusLoading or the context
// is done. A consumer observing StatusLoading must not make authorization
// decisions; this is how it waits them out.
func (g *Gate) WaitReady(ctx context.Context) error {
	select {
	case <-g.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Logout terminates the session best-effort and transitions to
// StatusUnauthenticated regardless of the sign-out call's outcome. Calling
// it while already unauthenticated is a no-op transition.
func (g *Gate) Logout(ctx context.Context) {
	if err := g.backend.SignOut(ctx); err != nil {
		g.logger.WarnContext(ctx, "sign-out failed, clearing local state anyway", "error", err)
	}
	attempt := g.nextAttempt()
	g.commit(attempt, StatusUnauthenticated, nil)
}

// Close releases the session-change subscription. Safe to call more than
// once; the subscription is released exactly once.
func (g *Gate) Close() {
	g.mu.Lock()
	g.closed = true
	unsub := g.unsubscribe
	g.mu.Unlock()
	if unsub != nil {
		g.unsubOnce.Do(unsub)
	}
}

// Revalidate confirms an authorized gate's session still exists in the
// backend. Store-side expiry deletes sessions without emitting a change
// event, so the guard calls this on every request; a missing, expired, or
// unreadable session fails closed. Non-authorized states are left untouched.
func (g *Gate) Revalidate(ctx context.Context) {
	g.mu.Lock()
	authorized := g.status == StatusAuthorized
	g.mu.Unlock()
	if !authorized {
		return
	}

	session, err := g.backend.CurrentSession(ctx)
	if err == nil && sessionLive(session, time.Now()) {
		return
	}
	if err != nil {
		g.logger.WarnContext(ctx, "session liveness check failed", "error", err)
	}
	// The attempt id is taken only once the session is known dead, so a
	// concurrent verification of fresher session state is never superseded
	// by this observation.
	g.commit(g.nextAttempt(), StatusUnauthenticated, nil)
}

// sessionLive reports whether a session exists and has not passed its expiry.
// Sessions without an expiry timestamp rely on store-side eviction alone.
func sessionLive(session *domainauth.Session, now time.Time) bool {
	if session == nil {
		return false
	}
	return session.ExpiresAt.IsZero() || !session.Expired(now)
}

// handleChange processes one session-change notification.
func (g *Gate) handleChange(ctx context.Context, change domainauth.Change) {
	g.mu.Lock()
	closed := g.closed
	g.mu.Unlock()
	if closed {
		return
	}

	attempt := g.nextAttempt()
	if change.Session == nil {
		g.commit(attempt, StatusUnauthenticated, nil)
		return
	}
	g.verify(ctx, change.Session.UserID, attempt)
}

// verify runs the role-verification procedure for the given user under the
// given attempt id. Any error, zero rows, or multiple rows fails closed and
// force-terminates the session.
func (g *Gate) verify(ctx context.Context, userID string, attempt uint64) {
	isAdmin, err := g.backend.HasAdminRole(ctx, userID)
	if err != nil {
		g.logger.WarnContext(ctx, "admin role check failed", "user_id", userID, "error", err)
	}
	if err != nil || !isAdmin {
		// The session must not stay silently active for a non-admin.
		if signOutErr := g.backend.SignOut(ctx); signOutErr != nil {
			g.logger.WarnContext(ctx, "forced sign-out failed", "user_id", userID, "error", signOutErr)
		}
		g.commit(attempt, StatusUnauthenticated, nil)
		return
	}

	identity, err := g.backend.CurrentIdentity(ctx, userID)
	if err != nil || identity == nil {
		g.logger.WarnContext(ctx, "identity re-fetch failed", "user_id", userID, "error", err)
		g.commit(attempt, StatusUnauthenticated, nil)
		return
	}
	g.commit(attempt, StatusAuthorized, identity)
}

// nextAttempt issues a new evaluation attempt id, superseding any in-flight one.
func (g *Gate) nextAttempt() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attempt++
	return g.attempt
}

// commit installs the result of an attempt unless a newer attempt has
// started since; superseded results are discarded here (last write wins).
func (g *Gate) commit(attempt uint64, status Status, identity *domainauth.Identity) {
	g.mu.Lock()
	if attempt != g.attempt {
		g.mu.Unlock()
		return
	}
	g.status = status
	g.identity = identity
	g.mu.Unlock()

	g.readyOnce.Do(func() { close(g.ready) })
}
