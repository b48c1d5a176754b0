package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailpoint/go-session"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := session.LoadConfigFromEnv()

		assert.Equal(t, "http://localhost:3000/api", cfg.GetBaseURL())
		assert.Equal(t, 8, cfg.GetRequestTimeout())
		assert.Equal(t, 120, cfg.GetExpiryBuffer())
		assert.Equal(t, "Bearer", cfg.GetAuthScheme())
		assert.Equal(t, "/login", cfg.GetLoginRoute())
		assert.Equal(t, "/", cfg.GetLandingRoute())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SESSION_BASE_URL", "https://portal.example.com/api")
		t.Setenv("SESSION_EXPIRY_BUFFER_SECONDS", "60")
		t.Setenv("SESSION_AUTH_SCHEME", "Token")

		cfg := session.LoadConfigFromEnv()

		assert.Equal(t, "https://portal.example.com/api", cfg.GetBaseURL())
		assert.Equal(t, 60, cfg.GetExpiryBuffer())
		assert.Equal(t, "Token", cfg.GetAuthScheme())
	})

	t.Run("malformed numbers fall back", func(t *testing.T) {
		t.Setenv("SESSION_REQUEST_TIMEOUT_SECONDS", "not-a-number")

		cfg := session.LoadConfigFromEnv()

		assert.Equal(t, 8, cfg.GetRequestTimeout())
	})
}
