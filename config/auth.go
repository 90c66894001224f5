package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the admin back-office.
type AuthMode string

const (
	// AuthModeCredentials verifies email/password against local accounts.
	AuthModeCredentials AuthMode = "credentials"
	// AuthModeOAuth uses OAuth/OIDC for admin sign-in.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "credentials", "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: credentials, oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration (used when Mode=oauth).
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"academy"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"academy"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/api/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string `env:"USER_ID" envDefault:"dev-admin"`
	Email  string `env:"EMAIL"   envDefault:"dev@academy.local"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines how admin identities are authenticated.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"credentials"`

	// SessionTTL is how long an admin session stays valid.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"8h"`

	// AllowSignup controls whether the public signup endpoint is enabled.
	// New accounts carry no role until an operator grants one.
	AllowSignup bool `env:"AUTH_ALLOW_SIGNUP" envDefault:"true"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
}
