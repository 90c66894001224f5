package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProviderConfig
	}{
		{"missing client id", ProviderConfig{ClientSecret: "s", RedirectURL: "r", DiscoveryURL: "d"}},
		{"missing client secret", ProviderConfig{ClientID: "c", RedirectURL: "r", DiscoveryURL: "d"}},
		{"missing redirect url", ProviderConfig{ClientID: "c", ClientSecret: "s", DiscoveryURL: "d"}},
		{"missing discovery url", ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestIssuerFromDiscoveryURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://idp.example.com", "https://idp.example.com"},
		{"https://idp.example.com/", "https://idp.example.com"},
		{"https://idp.example.com/.well-known/openid-configuration", "https://idp.example.com"},
		{"https://idp.example.com/realms/academy/.well-known/openid-configuration", "https://idp.example.com/realms/academy"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, issuerFromDiscoveryURL(tt.in), tt.in)
	}
}

func TestIdentityFromClaims(t *testing.T) {
	identity := identityFromClaims(idTokenClaims{Sub: "u1", Email: "admin@academy.test"})
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, "admin@academy.test", identity.Email)
}

func TestGenerateRandomString(t *testing.T) {
	s1, err := generateRandomString(32)
	require.NoError(t, err)
	s2, err := generateRandomString(32)
	require.NoError(t, err)

	assert.Len(t, s1, 32)
	assert.Len(t, s2, 32)
	assert.NotEqual(t, s1, s2)

	empty, err := generateRandomString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
