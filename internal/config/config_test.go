package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  host: "0.0.0.0"

redis:
  url: "redis://cache.internal:6379/1"

resend:
  api_key: "re_test_key"
  base_url: "https://api.resend.com"
  timeout_seconds: 45

contact:
  provider: "resend"
  from: "Portfolio Contact <onboarding@resend.dev>"
  to: "owner@example.com"
  rate_limit_salt: "pepper"
  rate_limit_window_seconds: 3600
  allowed_origins:
    - "https://example.dev"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "redis://cache.internal:6379/1", cfg.Redis.URL)
	assert.Equal(t, "re_test_key", cfg.Resend.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Resend.Timeout())
	assert.Equal(t, "owner@example.com", cfg.Contact.To)
	assert.Equal(t, "pepper", cfg.Contact.RateLimitSalt)
	assert.Equal(t, time.Hour, cfg.Contact.RateLimitWindow())
	assert.Equal(t, []string{"https://example.dev"}, cfg.Contact.AllowedOrigins)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
contact:
  to: "owner@example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "https://api.resend.com", cfg.Resend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Resend.Timeout())
	assert.Equal(t, "resend", cfg.Contact.Provider)
	assert.Equal(t, 24*time.Hour, cfg.Contact.RateLimitWindow())
	// The salt never gets a default.
	assert.Empty(t, cfg.Contact.RateLimitSalt)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
resend:
  api_key: "from-file"
contact:
  to: "file@example.com"
`)

	t.Setenv("RESEND_API_KEY", "from-env")
	t.Setenv("RATE_LIMIT_SALT", "env-pepper")
	t.Setenv("CONTACT_TO", "env@example.com")
	t.Setenv("KV_URL", "redis://upstash.example:6379")
	t.Setenv("PORT", "3000")

	cfg, err := LoadFromEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Resend.APIKey)
	assert.Equal(t, "env-pepper", cfg.Contact.RateLimitSalt)
	assert.Equal(t, "env@example.com", cfg.Contact.To)
	assert.Equal(t, "redis://upstash.example:6379", cfg.Redis.URL)
	assert.Equal(t, 3000, cfg.Server.Port)
}
