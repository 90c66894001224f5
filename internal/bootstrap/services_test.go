package bootstrap

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextgen-academy/academy-api/config"
)

// newFakeRedis returns a client that is never dialed; wiring code only
// stores the handle.
//
//nolint:ireturn // matches the redis.UniversalClient the wiring consumes.
func newFakeRedis() redis.UniversalClient {
	return redis.NewClient(&redis.Options{Addr: "localhost:0"})
}

func testAppConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	cfg := &config.AppConfig{
		Auth: config.AuthConfig{
			Mode:       config.AuthModeMock,
			SessionTTL: time.Hour,
			DevAuth:    config.DevAuthConfig{UserID: "dev-admin", Email: "dev@academy.local"},
		},
		Uploads: config.UploadsConfig{Dir: t.TempDir(), MaxBytes: 1 << 20},
	}
	cfg.Sanitize()
	return cfg
}

func TestBuildServices(t *testing.T) {
	container, err := BuildServices(ServicesConfig{
		Config:      testAppConfig(t),
		DB:          openIdleDB(t),
		RedisClient: newFakeRedis(),
	})
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.Courses)
	assert.NotNil(t, container.Admissions)
	assert.NotNil(t, container.FAQs)
	assert.NotNil(t, container.Gallery)
	assert.NotNil(t, container.Stats)
	assert.NotNil(t, container.Images)
	assert.NotNil(t, container.Metrics)
	assert.NotNil(t, container.Auth)
	assert.NotNil(t, container.Gates)
}

func TestBuildServicesWithoutRedis(t *testing.T) {
	container, err := BuildServices(ServicesConfig{
		Config: testAppConfig(t),
		DB:     openIdleDB(t),
	})
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.Courses, "course service runs uncached without redis")
	assert.Nil(t, container.Auth, "auth requires redis for sessions")
	assert.Nil(t, container.Gates)
}

func TestBuildServicesRequiresDB(t *testing.T) {
	_, err := BuildServices(ServicesConfig{Config: testAppConfig(t)})
	assert.Error(t, err)
}

func TestBuildServicesRequiresConfig(t *testing.T) {
	_, err := BuildServices(ServicesConfig{DB: openIdleDB(t)})
	assert.Error(t, err)
}
