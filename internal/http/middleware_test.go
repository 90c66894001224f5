package httpx

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextgen-academy/academy-api/internal/authgate"
	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
)

// guardBackend is a configurable gate backend for guard tests.
type guardBackend struct {
	mu       sync.Mutex
	session  *domainauth.Session
	isAdmin  bool
	signOuts int
}

func (b *guardBackend) CurrentSession(context.Context) (*domainauth.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session, nil
}

func (b *guardBackend) CurrentIdentity(_ context.Context, userID string) (*domainauth.Identity, error) {
	return &domainauth.Identity{UserID: userID, Email: "admin@academy.test"}, nil
}

func (b *guardBackend) SignOut(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session = nil
	b.signOuts++
	return nil
}

func (b *guardBackend) Subscribe(func(domainauth.Change)) func() { return func() {} }

type testBackend struct{ *guardBackend }

func (b testBackend) HasAdminRole(_ context.Context, _ string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isAdmin, nil
}

func newGuardRegistry(backends map[string]*guardBackend) *authgate.Registry {
	return authgate.NewRegistry(func(sessionID string) authgate.Backend {
		if b, ok := backends[sessionID]; ok {
			return testBackend{b}
		}
		return testBackend{&guardBackend{}}
	}, nil)
}

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentityFromContext(r.Context())
		require.True(t, ok, "authorized requests must carry an identity")
		WriteJSON(w, http.StatusOK, map[string]string{"user": identity.UserID})
	})
}

func TestRequireAdmin_NoCookieAPIRequest(t *testing.T) {
	gates := newGuardRegistry(nil)
	defer gates.Close()
	guard := RequireAdmin(gates, "", nil)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication_required")
	assert.Equal(t, 0, gates.Len(), "no gate is created without a session id")
}

func TestRequireAdmin_NoCookieBrowserRequest(t *testing.T) {
	gates := newGuardRegistry(nil)
	defer gates.Close()
	guard := RequireAdmin(gates, "", nil)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get("Location")
	assert.Contains(t, location, AdminLoginPath)
	assert.Contains(t, location, "redirect_uri=%2Fadmin%2Fdashboard")
}

func TestRequireAdmin_AuthorizedPassesThrough(t *testing.T) {
	backend := &guardBackend{
		session: &domainauth.Session{ID: "s1", UserID: "u1", Email: "admin@academy.test"},
		isAdmin: true,
	}
	gates := newGuardRegistry(map[string]*guardBackend{"s1": backend})
	defer gates.Close()
	guard := RequireAdmin(gates, "", nil)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "s1"})
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "u1")
	assert.Equal(t, 1, gates.Len())
}

func TestRequireAdmin_NonAdminSessionIsDeniedAndSignedOut(t *testing.T) {
	backend := &guardBackend{
		session: &domainauth.Session{ID: "s2", UserID: "u2", Email: "student@academy.test"},
		isAdmin: false,
	}
	gates := newGuardRegistry(map[string]*guardBackend{"s2": backend})
	defer gates.Close()
	guard := RequireAdmin(gates, "", nil)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "s2"})
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, 1, backend.signOuts, "a non-admin session must be force-terminated")
}

func TestRequireAdmin_GateIsReusedAcrossRequests(t *testing.T) {
	backend := &guardBackend{
		session: &domainauth.Session{ID: "s1", UserID: "u1"},
		isAdmin: true,
	}
	gates := newGuardRegistry(map[string]*guardBackend{"s1": backend})
	defer gates.Close()
	guard := RequireAdmin(gates, "", nil)(protectedHandler(t))

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "s1"})
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 1, gates.Len())
}

func TestRequireAdmin_ExpiredSessionIsDenied(t *testing.T) {
	backend := &guardBackend{
		session: &domainauth.Session{ID: "s1", UserID: "u1", Email: "admin@academy.test"},
		isAdmin: true,
	}
	gates := newGuardRegistry(map[string]*guardBackend{"s1": backend})
	defer gates.Close()
	guard := RequireAdmin(gates, "", nil)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "s1"})
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Session store TTL eviction removes the session without any change
	// event reaching the gate.
	backend.mu.Lock()
	backend.session = nil
	backend.mu.Unlock()

	req = httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "s1"})
	rec = httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code, "a dead session must not ride a cached authorization")
	assert.Equal(t, 0, gates.Len(), "the dead session's gate is released")
}

func TestRequireAdmin_DeniedSessionsDoNotAccumulateGates(t *testing.T) {
	gates := newGuardRegistry(nil)
	defer gates.Close()
	guard := RequireAdmin(gates, "", nil)(protectedHandler(t))

	for i := range 50 {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: fmt.Sprintf("forged-%d", i)})
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	assert.Equal(t, 0, gates.Len(), "gates for rejected cookies must be released")
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		path   string
		accept string
		want   bool
	}{
		{"/api/courses", "text/html", false},
		{"/images/x.jpg", "text/html", false},
		{"/admin/dashboard", "text/html,application/xhtml+xml", true},
		{"/admin/dashboard", "application/json", false},
		{"/admin/dashboard", "", true},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.accept != "" {
			req.Header.Set("Accept", tt.accept)
		}
		assert.Equal(t, tt.want, isBrowserRequest(req), "%s accept=%q", tt.path, tt.accept)
	}
}
