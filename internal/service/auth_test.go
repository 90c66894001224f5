package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
	"github.com/nextgen-academy/academy-api/internal/ports"
)

type fakeSessions struct {
	mu sync.Mutex
	m  map[string]domainauth.Session

	saveErr   error
	getErr    error
	deleteErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{m: make(map[string]domainauth.Session)}
}

func (f *fakeSessions) Save(_ context.Context, sess domainauth.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.m[sess.ID] = sess
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (domainauth.Session, error) {
	if f.getErr != nil {
		return domainauth.Session{}, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.m[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.m, id)
	return nil
}

type fakeAccounts struct {
	createFunc     func(ctx context.Context, email, passwordHash string) (*model.Account, error)
	getByEmailFunc func(ctx context.Context, email string) (*model.Account, error)
	getByIDFunc    func(ctx context.Context, id string) (*model.Account, error)
}

func (f *fakeAccounts) Create(ctx context.Context, email, hash string) (*model.Account, error) {
	return f.createFunc(ctx, email, hash)
}

func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	return f.getByEmailFunc(ctx, email)
}

func (f *fakeAccounts) GetByID(ctx context.Context, id string) (*model.Account, error) {
	return f.getByIDFunc(ctx, id)
}

type fakeRoles struct {
	queryRoleFunc func(ctx context.Context, userID string, role domainauth.Role) (*model.RoleAssignment, error)
}

func (f *fakeRoles) QueryRole(ctx context.Context, userID string, role domainauth.Role) (*model.RoleAssignment, error) {
	return f.queryRoleFunc(ctx, userID, role)
}

func noRoles() *fakeRoles {
	return &fakeRoles{queryRoleFunc: func(context.Context, string, domainauth.Role) (*model.RoleAssignment, error) {
		return nil, apperrors.NotFound("no role assignment")
	}}
}

type fakeManager struct {
	grantFunc  func(ctx context.Context, userID string, role domainauth.Role) error
	revokeFunc func(ctx context.Context, userID string, role domainauth.Role) (bool, error)
	listFunc   func(ctx context.Context, role domainauth.Role) ([]*model.RoleAssignment, error)
}

func (f *fakeManager) Grant(ctx context.Context, userID string, role domainauth.Role) error {
	return f.grantFunc(ctx, userID, role)
}

func (f *fakeManager) Revoke(ctx context.Context, userID string, role domainauth.Role) (bool, error) {
	return f.revokeFunc(ctx, userID, role)
}

func (f *fakeManager) ListByRole(ctx context.Context, role domainauth.Role) ([]*model.RoleAssignment, error) {
	return f.listFunc(ctx, role)
}

// fakeHasher "hashes" by prefixing, which keeps assertions readable.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (fakeHasher) Verify(password, encodedHash string) (bool, error) {
	return encodedHash == "h:"+password, nil
}

type fakeProvider struct {
	beginFunc    func(ctx context.Context, in ports.BeginInput) (string, string, string, error)
	exchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error)
}

func (f *fakeProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	return f.beginFunc(ctx, in)
}

func (f *fakeProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	return f.exchangeFunc(ctx, in)
}

func credentialsService(t *testing.T, opts AuthServiceOptions) *AuthService {
	t.Helper()
	if opts.Sessions == nil {
		opts.Sessions = newFakeSessions()
	}
	if opts.Roles == nil {
		opts.Roles = noRoles()
	}
	if opts.Hasher == nil {
		opts.Hasher = fakeHasher{}
	}
	svc, err := NewAuthService(opts)
	require.NoError(t, err)
	return svc
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	accounts := &fakeAccounts{
		getByEmailFunc: func(_ context.Context, email string) (*model.Account, error) {
			if email != "admin@academy.test" {
				return nil, apperrors.NotFound("account not found")
			}
			return &model.Account{ID: "u1", Email: email, PasswordHash: "h:s3cret-pass"}, nil
		},
	}
	svc := credentialsService(t, AuthServiceOptions{Sessions: sessions, Accounts: accounts})

	sess, err := svc.SignIn(ctx, "admin@academy.test", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "admin@academy.test", sess.Email)
	assert.NotEmpty(t, sess.ID)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	stored, err := sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, stored.ID)
}

func TestAuthService_SignInBadCredentials(t *testing.T) {
	ctx := context.Background()
	accounts := &fakeAccounts{
		getByEmailFunc: func(_ context.Context, email string) (*model.Account, error) {
			if email != "admin@academy.test" {
				return nil, apperrors.NotFound("account not found")
			}
			return &model.Account{ID: "u1", Email: email, PasswordHash: "h:s3cret-pass"}, nil
		},
	}
	svc := credentialsService(t, AuthServiceOptions{Accounts: accounts})

	_, unknownErr := svc.SignIn(ctx, "nobody@academy.test", "whatever")
	_, wrongErr := svc.SignIn(ctx, "admin@academy.test", "wrong")

	// Unknown email and wrong password must be indistinguishable.
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, apperrors.IsUnauthorized(unknownErr))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_SignInNotEnabled(t *testing.T) {
	svc, err := NewAuthService(AuthServiceOptions{Sessions: newFakeSessions(), Roles: noRoles()})
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), "a@b.test", "pw")
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_SignUp(t *testing.T) {
	var createdHash string
	accounts := &fakeAccounts{
		createFunc: func(_ context.Context, email, hash string) (*model.Account, error) {
			createdHash = hash
			return &model.Account{ID: "u9", Email: email}, nil
		},
	}
	svc := credentialsService(t, AuthServiceOptions{Accounts: accounts, AllowSignup: true})

	account, err := svc.SignUp(context.Background(), model.CreateAccountRequest{
		Email:    "new@academy.test",
		Password: "long-enough-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "u9", account.ID)
	assert.Equal(t, "h:long-enough-pw", createdHash, "the service must store a hash, never the password")
}

func TestAuthService_SignUpDisabled(t *testing.T) {
	svc := credentialsService(t, AuthServiceOptions{Accounts: &fakeAccounts{}})

	_, err := svc.SignUp(context.Background(), model.CreateAccountRequest{
		Email:    "new@academy.test",
		Password: "long-enough-pw",
	})
	assert.True(t, apperrors.IsForbidden(err))
}

func TestAuthService_SignUpValidation(t *testing.T) {
	svc := credentialsService(t, AuthServiceOptions{Accounts: &fakeAccounts{}, AllowSignup: true})

	_, err := svc.SignUp(context.Background(), model.CreateAccountRequest{Email: "not-an-email", Password: "long-enough-pw"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.SignUp(context.Background(), model.CreateAccountRequest{Email: "a@b.test", Password: "short"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_CompleteLogin(t *testing.T) {
	sessions := newFakeSessions()
	provider := &fakeProvider{
		exchangeFunc: func(_ context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
			if in.Code != "good-code" {
				return domainauth.Identity{}, errors.New("bad code")
			}
			return domainauth.Identity{UserID: "oidc-sub-1", Email: "sso@academy.test"}, nil
		},
	}
	svc, err := NewAuthService(AuthServiceOptions{Provider: provider, Sessions: sessions, Roles: noRoles()})
	require.NoError(t, err)

	sess, err := svc.CompleteLogin(context.Background(), ports.ExchangeInput{Code: "good-code"})
	require.NoError(t, err)
	assert.Equal(t, "oidc-sub-1", sess.UserID)

	_, err = svc.CompleteLogin(context.Background(), ports.ExchangeInput{Code: "bad"})
	assert.True(t, apperrors.IsUnauthorized(err), "exchange failures must not leak provider detail")
}

func TestAuthService_CompleteLoginWithoutProvider(t *testing.T) {
	svc := credentialsService(t, AuthServiceOptions{})

	_, err := svc.BeginLogin(context.Background(), "http://localhost/auth/callback")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CompleteLogin(context.Background(), ports.ExchangeInput{Code: "x"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_GetSession(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	svc := credentialsService(t, AuthServiceOptions{Sessions: sessions})

	sess, err := svc.GetSession(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, sess, "empty id resolves to no session")

	sess, err = svc.GetSession(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, sess, "missing session is not an error")

	sessions.getErr = errors.New("redis down")
	_, err = svc.GetSession(ctx, "any")
	assert.Error(t, err, "infrastructure failures must surface")
}

func TestAuthService_SignOutNotifiesOnlyThatSession(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	svc := credentialsService(t, AuthServiceOptions{Sessions: sessions})

	var got []domainauth.Change
	var other []domainauth.Change
	svc.Subscribe("s1", func(c domainauth.Change) { got = append(got, c) })
	svc.Subscribe("s2", func(c domainauth.Change) { other = append(other, c) })

	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, svc.SignOut(ctx, "s1"))

	require.Len(t, got, 1)
	assert.Equal(t, domainauth.ChangeSignedOut, got[0].Kind)
	assert.Nil(t, got[0].Session)
	assert.Empty(t, other)

	_, err := sessions.Get(ctx, "s1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_SignOutEmptyIDIsNoop(t *testing.T) {
	svc := credentialsService(t, AuthServiceOptions{})
	assert.NoError(t, svc.SignOut(context.Background(), ""))
}

func TestAuthService_HasAdminRole(t *testing.T) {
	ctx := context.Background()

	svc := credentialsService(t, AuthServiceOptions{Roles: &fakeRoles{
		queryRoleFunc: func(_ context.Context, userID string, role domainauth.Role) (*model.RoleAssignment, error) {
			return &model.RoleAssignment{UserID: userID, Role: string(role)}, nil
		},
	}})
	ok, err := svc.HasAdminRole(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	svc = credentialsService(t, AuthServiceOptions{Roles: noRoles()})
	ok, err = svc.HasAdminRole(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok, "no assignment is a clean denial, not an error")

	svc = credentialsService(t, AuthServiceOptions{Roles: &fakeRoles{
		queryRoleFunc: func(context.Context, string, domainauth.Role) (*model.RoleAssignment, error) {
			return nil, apperrors.Internal("expected a single admin role assignment for user, found multiple")
		},
	}})
	ok, err = svc.HasAdminRole(ctx, "u1")
	require.Error(t, err, "duplicate assignments must not grant access")
	assert.False(t, ok)
}

func TestAuthService_RevokeAdminNotifiesUserSessions(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	expires := time.Now().Add(time.Hour)
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "sA", UserID: "alice", ExpiresAt: expires}))
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "sB", UserID: "bob", ExpiresAt: expires}))

	manager := &fakeManager{
		revokeFunc: func(_ context.Context, userID string, _ domainauth.Role) (bool, error) {
			return userID == "alice", nil
		},
	}
	svc := credentialsService(t, AuthServiceOptions{Sessions: sessions, Manager: manager})

	var aliceChanges, bobChanges []domainauth.Change
	svc.Subscribe("sA", func(c domainauth.Change) { aliceChanges = append(aliceChanges, c) })
	svc.Subscribe("sB", func(c domainauth.Change) { bobChanges = append(bobChanges, c) })

	revoked, err := svc.RevokeAdmin(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.Len(t, aliceChanges, 1)
	assert.Equal(t, domainauth.ChangeRevoked, aliceChanges[0].Kind)
	require.NotNil(t, aliceChanges[0].Session)
	assert.Equal(t, "alice", aliceChanges[0].Session.UserID)
	assert.Empty(t, bobChanges, "revocation must not disturb other users' sessions")

	// Revoking a role the user never held publishes nothing.
	revoked, err = svc.RevokeAdmin(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, bobChanges)
}

func TestAuthService_SubscribeUnsubscribe(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	svc := credentialsService(t, AuthServiceOptions{Sessions: sessions})
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}))

	var calls int
	unsubscribe := svc.Subscribe("s1", func(domainauth.Change) { calls++ })

	require.NoError(t, svc.SignOut(ctx, "s1"))
	assert.Equal(t, 1, calls)

	unsubscribe()
	require.NoError(t, svc.SignOut(ctx, "s1"))
	assert.Equal(t, 1, calls, "no deliveries after unsubscribe")
}

func TestSessionBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	accounts := &fakeAccounts{
		getByIDFunc: func(_ context.Context, id string) (*model.Account, error) {
			return &model.Account{ID: id, Email: "admin@academy.test"}, nil
		},
	}
	svc := credentialsService(t, AuthServiceOptions{Sessions: sessions, Accounts: accounts})
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "s1", UserID: "u1", Email: "admin@academy.test", ExpiresAt: time.Now().Add(time.Hour)}))

	backend := svc.GateBackendFactory()("s1")

	sess, err := backend.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "u1", sess.UserID)

	identity, err := backend.CurrentIdentity(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "admin@academy.test", identity.Email)

	require.NoError(t, backend.SignOut(ctx))
	sess, err = backend.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSessionBackend_IdentityFallsBackToSession(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	provider := &fakeProvider{}
	svc, err := NewAuthService(AuthServiceOptions{Provider: provider, Sessions: sessions, Roles: noRoles()})
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "s1", UserID: "oidc-sub-1", Email: "sso@academy.test", ExpiresAt: time.Now().Add(time.Hour)}))

	backend := svc.GateBackendFactory()("s1")

	identity, err := backend.CurrentIdentity(ctx, "oidc-sub-1")
	require.NoError(t, err)
	assert.Equal(t, "sso@academy.test", identity.Email)

	require.NoError(t, sessions.Delete(ctx, "s1"))
	_, err = backend.CurrentIdentity(ctx, "oidc-sub-1")
	assert.Error(t, err, "a vanished session cannot vouch for an identity")
}
