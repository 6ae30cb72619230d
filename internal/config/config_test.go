package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap turns a plain map into a lookup function like os.LookupEnv.
func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestResolveBackendURL(t *testing.T) {
	t.Run("first variable in priority order wins", func(t *testing.T) {
		url, err := ResolveBackendURL(EnvProduction, envMap(map[string]string{
			"BACKEND_URL":          "http://legacy:4000",
			"EVERMORE_BACKEND_URL": "https://api.evermore.test/",
		}))
		require.NoError(t, err)
		assert.Equal(t, "https://api.evermore.test", url)
	})

	t.Run("blank values are skipped", func(t *testing.T) {
		url, err := ResolveBackendURL(EnvProduction, envMap(map[string]string{
			"EVERMORE_API_URL": "   ",
			"BACKEND_URL":      "http://backend:4000",
		}))
		require.NoError(t, err)
		assert.Equal(t, "http://backend:4000", url)
	})

	t.Run("production fails fast when nothing is set", func(t *testing.T) {
		_, err := ResolveBackendURL(EnvProduction, envMap(nil))
		assert.True(t, errors.Is(err, ErrBackendURLMissing))
	})

	t.Run("development falls back to localhost", func(t *testing.T) {
		url, err := ResolveBackendURL(EnvDevelopment, envMap(nil))
		require.NoError(t, err)
		assert.Equal(t, defaultBackendURL, url)
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults for development", func(t *testing.T) {
		cfg, err := Load(envMap(nil))
		require.NoError(t, err)
		assert.Equal(t, EnvDevelopment, cfg.GetAppEnv())
		assert.False(t, cfg.IsProduction())
		assert.Equal(t, ":8080", cfg.GetServerAddr())
		assert.Equal(t, 15*time.Second, cfg.GetBackendTimeout())
		assert.Equal(t, float64(10), cfg.GetRateLimit())
		assert.NotEmpty(t, cfg.GetSessionSecret())
	})

	t.Run("production requires a session secret", func(t *testing.T) {
		_, err := Load(envMap(map[string]string{
			"APP_ENV":     "production",
			"BACKEND_URL": "https://api.evermore.test",
		}))
		assert.Error(t, err)
	})

	t.Run("rejects a malformed timeout", func(t *testing.T) {
		_, err := Load(envMap(map[string]string{"BACKEND_TIMEOUT": "soon"}))
		assert.Error(t, err)
	})

	t.Run("reads overrides", func(t *testing.T) {
		cfg, err := Load(envMap(map[string]string{
			"APP_ENV":               "Production",
			"EVERMORE_API_URL":      "https://api.evermore.test",
			"SESSION_SECRET":        "s3cret",
			"BACKEND_TIMEOUT":       "3s",
			"SERVER_ADDR":           ":9000",
			"CONTENT_DIR":           "./content",
			"RATE_LIMIT_PER_SECOND": "2.5",
		}))
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "https://api.evermore.test", cfg.GetBackendURL())
		assert.Equal(t, 3*time.Second, cfg.GetBackendTimeout())
		assert.Equal(t, ":9000", cfg.GetServerAddr())
		assert.Equal(t, "./content", cfg.GetContentDir())
		assert.Equal(t, 2.5, cfg.GetRateLimit())
	})
}
