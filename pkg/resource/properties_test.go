package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProperties = `
app:
  name: ${TEST_APP_NAME:beach-cleanup}
  server:
    port: ${TEST_APP_PORT:8080}
    context-path: ${TEST_CONTEXT_PATH:}
  forecast:
    fallback-delay: 2s
    rate-limit:
      rps: ${TEST_RPS:2.5}
  cache:
    enabled: ${TEST_CACHE_ENABLED:false}
  stats:
    volunteers: 2847
`

func TestInitFromBytesResolvesDefaults(t *testing.T) {
	require.NoError(t, InitFromBytes([]byte(testProperties)))

	assert.Equal(t, "beach-cleanup", GetString("app.name"))
	assert.Equal(t, 8080, GetInt("app.server.port"))
	assert.Equal(t, "", GetString("app.server.context-path"))
	assert.True(t, IsSet("app.server.context-path"))
	assert.Equal(t, 2*time.Second, GetDuration("app.forecast.fallback-delay"))
	assert.Equal(t, 2.5, GetFloat64("app.forecast.rate-limit.rps"))
	assert.False(t, GetBool("app.cache.enabled"))
	assert.Equal(t, int64(2847), GetInt64("app.stats.volunteers"))
}

func TestInitFromBytesPrefersEnvironment(t *testing.T) {
	t.Setenv("TEST_APP_PORT", "9090")
	t.Setenv("TEST_CACHE_ENABLED", "true")
	t.Setenv("TEST_CONTEXT_PATH", "/cleanup")

	require.NoError(t, InitFromBytes([]byte(testProperties)))

	assert.Equal(t, 9090, GetInt("app.server.port"))
	assert.True(t, GetBool("app.cache.enabled"))
	assert.Equal(t, "/cleanup", GetString("app.server.context-path"))
}

func TestDefaults(t *testing.T) {
	require.NoError(t, InitFromBytes([]byte(testProperties)))

	assert.Equal(t, "fallback", GetStringOrDefault("app.missing", "fallback"))
	assert.Equal(t, "fallback", GetStringOrDefault("app.server.context-path", "fallback"))
	assert.Equal(t, 3, GetIntOrDefault("app.nearby.default-limit", 3))
	assert.Equal(t, 8080, GetIntOrDefault("app.server.port", 1))
	assert.Equal(t, time.Minute, GetDurationOrDefault("app.missing", time.Minute))
	assert.Equal(t, 2*time.Second, GetDurationOrDefault("app.forecast.fallback-delay", time.Minute))
}

func TestSetOverridesProperty(t *testing.T) {
	require.NoError(t, InitFromBytes([]byte(testProperties)))

	Set("app.name", "override")
	assert.Equal(t, "override", GetString("app.name"))
}

func TestInitFromBytesRejectsInvalidYAML(t *testing.T) {
	assert.Error(t, InitFromBytes([]byte("app: [unclosed")))
}
