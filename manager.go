package session

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// SessionManager is the single process-wide authority for "who is logged
// in". Construct one at application start and inject it; every query reads
// the credential store fresh, so a purge performed by the pipeline is
// visible on the next call.
type SessionManager struct {
	gateway Gateway
	store   CredentialStore
	buffer  time.Duration
	logger  Logger
}

// NewSessionManager returns a new SessionManager
func NewSessionManager(gateway Gateway, store CredentialStore, cfg Config) *SessionManager {
	buffer := DefaultExpiryBuffer
	if cfg != nil && cfg.GetExpiryBuffer() > 0 {
		buffer = time.Duration(cfg.GetExpiryBuffer()) * time.Second
	}

	return &SessionManager{
		gateway: gateway,
		store:   store,
		buffer:  buffer,
		logger:  defLogger{},
	}
}

func (m *SessionManager) WithLogger(logger Logger) *SessionManager {
	m.logger = logger
	return m
}

// Login performs the credential exchange and persists the returned token
// and profile as one write. On failure the store is left untouched.
func (m *SessionManager) Login(ctx context.Context, email, password string) error {
	exchange, err := m.gateway.Login(ctx, LoginPayload{Email: email, Password: password})
	if err != nil {
		return err
	}

	if err := m.store.Put(exchange.Token, exchange.User); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to persist credentials")
	}

	if claims := DecodeToken(exchange.Token); claims != nil {
		m.logger.Debug("session established", "details", print.MaybePrettyJSON(claims))
	}

	return nil
}

// Register performs the signup exchange; a successful signup logs the new
// account in immediately.
func (m *SessionManager) Register(ctx context.Context, payload RegisterPayload) error {
	exchange, err := m.gateway.Register(ctx, payload)
	if err != nil {
		return err
	}

	if err := m.store.Put(exchange.Token, exchange.User); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to persist credentials")
	}

	return nil
}

// Logout clears both credential slots. It never fails; a store error is
// logged and swallowed because the caller has no recovery beyond retrying
// the same clear.
func (m *SessionManager) Logout() {
	if err := m.store.Clear(); err != nil {
		m.logger.Error("logout failed to clear credentials", "error", err)
	}
}

// IsAuthenticated reports token presence only. Coarse UI gating; expiry is
// not consulted.
func (m *SessionManager) IsAuthenticated() bool {
	return m.store.Token() != ""
}

// IsSessionValid reports whether an authenticated call can be made right
// now: token present and outside the expiry buffer.
func (m *SessionManager) IsSessionValid() bool {
	token := m.store.Token()
	return token != "" && !IsExpiredWithin(token, m.buffer)
}

// HasRole reports whether the live session carries the given role.
func (m *SessionManager) HasRole(role string) bool {
	claims := m.liveClaims()
	if claims == nil {
		return false
	}
	return claims.HasRole(role)
}

// CurrentUserID returns the authenticated principal's ID, false when there
// is no live session.
func (m *SessionManager) CurrentUserID() (int64, bool) {
	claims := m.liveClaims()
	if claims == nil {
		return 0, false
	}
	return claims.UserID, true
}

// Claims returns the decoded claims of the stored token regardless of
// expiry, nil when there is no readable token.
func (m *SessionManager) Claims() *Claims {
	return DecodeToken(m.store.Token())
}

// Profile returns the cached serialized user profile for the UI layer.
func (m *SessionManager) Profile() []byte {
	return m.store.Profile()
}

// Info returns an aggregate snapshot, nil when no token is stored.
func (m *SessionManager) Info() *SessionInfo {
	token := m.store.Token()
	if token == "" {
		return nil
	}

	remaining := TimeRemaining(token)

	return &SessionInfo{
		Valid:         !IsExpiredWithin(token, m.buffer),
		TimeRemaining: remaining,
		Formatted:     FormatRemaining(remaining),
		Claims:        DecodeToken(token),
		ExpiringSoon:  remaining <= ExpiringSoonThreshold,
	}
}

// liveClaims decodes the stored token only when the session is still
// valid under the buffer; role and identity reads fail closed on expiry.
func (m *SessionManager) liveClaims() *Claims {
	token := m.store.Token()
	if token == "" || IsExpiredWithin(token, m.buffer) {
		return nil
	}
	return DecodeToken(token)
}
