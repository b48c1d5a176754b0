package session

import (
	"fmt"
	"time"
)

// SessionInfo is a read-only snapshot of the current session, computed on
// demand and never cached: every field reflects the store and the clock at
// the moment of the call.
type SessionInfo struct {
	Valid         bool          `json:"valid"`
	TimeRemaining time.Duration `json:"time_remaining"`
	Formatted     string        `json:"formatted_time"`
	Claims        *Claims       `json:"claims"`
	ExpiringSoon  bool          `json:"expiring_soon"`
}

func (i SessionInfo) String() string {
	userID := int64(0)
	role := ""
	if i.Claims != nil {
		userID = i.Claims.UserID
		role = i.Claims.UserRole
	}
	return fmt.Sprintf(
		"valid=%t user=%d role=%s remaining=%s expiring_soon=%t",
		i.Valid,
		userID,
		role,
		i.Formatted,
		i.ExpiringSoon,
	)
}
