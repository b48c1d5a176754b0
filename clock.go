package session

import (
	"fmt"
	"time"
)

// DefaultExpiryBuffer is subtracted from a token's literal deadline when
// deciding staleness: a token inside the buffer is treated as already
// expired so requests signed with it are not rejected mid-flight over
// clock skew or network latency.
const DefaultExpiryBuffer = 120 * time.Second

// ExpiringSoonThreshold is the display band for "session about to end"
// warnings. It is intentionally independent of DefaultExpiryBuffer.
const ExpiringSoonThreshold = 5 * time.Minute

// IsExpired reports whether the token is expired under the default buffer.
func IsExpired(token string) bool {
	return IsExpiredWithin(token, DefaultExpiryBuffer)
}

// IsExpiredWithin reports whether the token expires within the given
// buffer. A token that cannot be decoded or carries no expiry claim is
// expired: every caller must fail closed on an unreadable credential.
func IsExpiredWithin(token string, buffer time.Duration) bool {
	claims := DecodeToken(token)
	if claims == nil || claims.RegisteredClaims.ExpiresAt == nil {
		return true
	}
	return !claims.Expires().After(time.Now().Add(buffer))
}

// TimeRemaining returns the time until the token's literal deadline,
// floored at zero. Unreadable tokens have no time left.
func TimeRemaining(token string) time.Duration {
	claims := DecodeToken(token)
	if claims == nil || claims.RegisteredClaims.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(claims.Expires())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatRemaining renders a remaining duration as a compact human string.
func FormatRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return "Expired"
	}

	seconds := int64(remaining.Seconds())
	switch {
	case seconds >= 3600:
		return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
	case seconds >= 60:
		return fmt.Sprintf("%dm", seconds/60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
