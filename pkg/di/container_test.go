package di

import (
	"context"
	"testing"

	"movie-dialogue-api/backend/internal/testutil"
	"movie-dialogue-api/backend/pkg/cache"
	"movie-dialogue-api/backend/pkg/config"
	"movie-dialogue-api/backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T, vars map[string]string) *Container {
	t.Helper()
	cfg, err := config.LoadFrom(vars)
	require.NoError(t, err)

	c, err := New(testutil.NewSeededStore(t), cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

func TestNewDefaults(t *testing.T) {
	c := newContainer(t, map[string]string{})

	require.NotNil(t, c.Services)
	require.NotNil(t, c.Handlers)
	assert.IsType(t, &cache.MemoryStore{}, c.Cache)
	assert.Nil(t, c.JWTService)
	assert.NotNil(t, c.Telemetry.MetricsHandler())

	detail, err := c.Services.Characters.Get(context.Background(), testutil.Ripley)
	require.NoError(t, err)
	assert.Equal(t, "RIPLEY", detail.Character.Character)
}

func TestNewWithoutCache(t *testing.T) {
	c := newContainer(t, map[string]string{"CACHE_ENABLED": "false", "METRICS_ENABLED": "false"})

	assert.Nil(t, c.Cache)
	assert.Nil(t, c.Telemetry.MetricsHandler())
}

func TestNewWithWriteGuard(t *testing.T) {
	c := newContainer(t, map[string]string{"WRITE_TOKEN_SECRET": "signing-key"})

	require.NotNil(t, c.JWTService)
	token, err := c.JWTService.GenerateToken("tester", "conversations:write")
	require.NoError(t, err)
	_, err = c.JWTService.Authorize(token, "conversations:write")
	assert.NoError(t, err)
}

func TestNewRejectsBadRedisURL(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"REDIS_URL": "http://localhost:6379"})
	require.NoError(t, err)

	_, err = New(testutil.NewSeededStore(t), cfg, logger.Discard())
	assert.Error(t, err)
}

func TestHealthReportsDatabase(t *testing.T) {
	c := newContainer(t, map[string]string{})

	c.Health.RunChecks(context.Background())
	status := c.Health.GetStatus()
	require.Contains(t, status, "database")
	assert.True(t, c.Health.IsSystemHealthy())
}
