package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/nextgen-academy/academy-api/config"
	"github.com/nextgen-academy/academy-api/internal/adapters/credauth"
	"github.com/nextgen-academy/academy-api/internal/adapters/devauth"
	"github.com/nextgen-academy/academy-api/internal/adapters/oidc"
	redisadapter "github.com/nextgen-academy/academy-api/internal/adapters/redis"
	"github.com/nextgen-academy/academy-api/internal/data"
	"github.com/nextgen-academy/academy-api/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service for the configured auth mode.
// Returns nil if auth cannot be assembled; the router then exposes no auth
// endpoints and the admin guard denies everything.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.RedisClient == nil {
		logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		return nil
	}
	if cfg.DB == nil {
		logger.Warn("auth service disabled: database not configured", "mode", cfg.Auth.Mode)
		return nil
	}

	// Sessions live in Redis; role assignments live in Postgres. Both are
	// shared by every auth mode.
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	roleRepo := data.NewUserRoleRepo(cfg.DB)

	opts := service.AuthServiceOptions{
		Sessions:   sessionStore,
		Roles:      roleRepo,
		Manager:    roleRepo,
		SessionTTL: cfg.Auth.SessionTTL,
		Logger:     logger,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeCredentials:
		opts.Accounts = data.NewAccountRepo(cfg.DB)
		opts.Hasher = credauth.NewHasher()
		opts.AllowSignup = cfg.Auth.AllowSignup

	case config.AuthModeOAuth:
		prov := buildOIDCProvider(cfg.Auth.OAuth, logger)
		if prov == nil {
			return nil
		}
		opts.Provider = prov

	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			UserID: cfg.Auth.DevAuth.UserID,
			Email:  cfg.Auth.DevAuth.Email,
		})
		if err != nil {
			logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
			return nil
		}
		opts.Provider = prov

	default:
		logger.Warn("unknown auth mode, auth disabled", "mode", cfg.Auth.Mode)
		return nil
	}

	svc, err := service.NewAuthService(opts)
	if err != nil {
		logger.Warn("failed to create auth service, auth disabled", "error", err)
		return nil
	}
	return svc
}

func buildOIDCProvider(oauth config.OAuthConfig, logger *slog.Logger) *oidc.Provider {
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		logger.Warn("oauth mode selected but required config missing; auth disabled",
			"discovery_url_empty", oauth.DiscoveryURL == "",
			"client_id_empty", oauth.ClientID == "",
			"client_secret_empty", oauth.ClientSecret == "",
		)
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
	})
	if err != nil {
		logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		return nil
	}
	return prov
}
