package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextgen-academy/academy-api/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, config.AuthModeCredentials, cfg.Auth.Mode)
	assert.Equal(t, "/admin-login", cfg.HTTP.LoginPath)
	assert.Positive(t, cfg.Auth.SessionTTL)
	assert.Positive(t, cfg.Uploads.MaxBytes)
	assert.False(t, cfg.Notify.Enabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("AUTH_MODE", "mock")
	t.Setenv("AUTH_ALLOW_SIGNUP", "false")
	t.Setenv("NOTIFY_SLACK_WEBHOOK_URL", "  https://hooks.slack.example/T0/B0  ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.Equal(t, config.AuthModeMock, cfg.Auth.Mode)
	assert.False(t, cfg.Auth.AllowSignup)
	assert.True(t, cfg.Notify.Enabled(), "sanitize should trim the webhook url")
}

func TestLoadConfigRejectsUnknownAuthMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "ldap")

	_, err := LoadConfig()
	assert.Error(t, err)
}
