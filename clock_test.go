package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/go-session"
)

func mintTokenWithoutExpiry(t *testing.T) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": int64(7),
		"role":   "ADMIN",
		"iat":    time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	return signed
}

func TestIsExpiredWithin(t *testing.T) {
	tests := []struct {
		name      string
		expiresIn time.Duration
		buffer    time.Duration
		expected  bool
	}{
		{"expired one second ago, no buffer", -time.Second, 0, true},
		{"expires in 121s, no buffer", 121 * time.Second, 0, false},
		{"expires in 60s, default buffer", 60 * time.Second, session.DefaultExpiryBuffer, true},
		{"expires in 10m, default buffer", 10 * time.Minute, session.DefaultExpiryBuffer, false},
		{"long lived token", 24 * time.Hour, session.DefaultExpiryBuffer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := mintToken(t, 7, session.RoleAdmin, tt.expiresIn)
			assert.Equal(t, tt.expected, session.IsExpiredWithin(token, tt.buffer))
		})
	}

	t.Run("unreadable token is expired", func(t *testing.T) {
		assert.True(t, session.IsExpiredWithin("not-a-token", 0))
		assert.True(t, session.IsExpiredWithin("", 0))
	})

	t.Run("missing exp claim is expired", func(t *testing.T) {
		assert.True(t, session.IsExpiredWithin(mintTokenWithoutExpiry(t), 0))
	})
}

func TestIsExpiredUsesDefaultBuffer(t *testing.T) {
	assert.True(t, session.IsExpired(mintToken(t, 7, session.RoleAdmin, 30*time.Second)))
	assert.False(t, session.IsExpired(mintToken(t, 7, session.RoleAdmin, time.Hour)))
}

func TestTimeRemaining(t *testing.T) {
	t.Run("reports time until the literal deadline", func(t *testing.T) {
		token := mintToken(t, 7, session.RoleAdmin, time.Hour)

		remaining := session.TimeRemaining(token)

		assert.InDelta(t, time.Hour.Seconds(), remaining.Seconds(), 5)
	})

	t.Run("is non-increasing as the clock advances", func(t *testing.T) {
		token := mintToken(t, 7, session.RoleAdmin, time.Hour)

		first := session.TimeRemaining(token)
		time.Sleep(10 * time.Millisecond)
		second := session.TimeRemaining(token)

		assert.LessOrEqual(t, second, first)
	})

	t.Run("floors at zero", func(t *testing.T) {
		expired := mintToken(t, 7, session.RoleAdmin, -time.Hour)

		assert.Equal(t, time.Duration(0), session.TimeRemaining(expired))
	})

	t.Run("unreadable token has no time left", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), session.TimeRemaining("garbage"))
		assert.Equal(t, time.Duration(0), session.TimeRemaining(mintTokenWithoutExpiry(t)))
	})
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		expected  string
	}{
		{"zero is expired", 0, "Expired"},
		{"negative is expired", -5 * time.Second, "Expired"},
		{"seconds band", 45 * time.Second, "45s"},
		{"last second before a minute", 59 * time.Second, "59s"},
		{"exactly one minute", time.Minute, "1m"},
		{"minutes band floors", 125 * time.Second, "2m"},
		{"exactly one hour", time.Hour, "1h 0m"},
		{"hours and minutes", 3661 * time.Second, "1h 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, session.FormatRemaining(tt.remaining))
		})
	}
}
