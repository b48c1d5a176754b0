package session

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// CredentialStore persists the raw token and the serialized user profile.
// The two slots live and die together: Put writes both as one logical unit
// and Clear removes both, so readers never observe a token without its
// profile or the reverse.
type CredentialStore interface {
	Token() string
	Profile() []byte
	Put(token string, profile []byte) error
	Clear() error
}

// Gateway is the backend credential exchange consumed by SessionManager.
// Client is the production implementation; tests substitute stubs.
type Gateway interface {
	Login(ctx context.Context, payload LoginPayload) (*AuthExchange, error)
	Register(ctx context.Context, payload RegisterPayload) (*AuthExchange, error)
	FetchRole(ctx context.Context) (string, error)
}

// Navigator consumes navigation commands emitted by the ResponseGuardian.
// The embedding application's routing layer implements it. Current must
// reflect commands already accepted via Go, even if the actual route change
// is still in flight; the guardian relies on that to suppress redirect
// storms when several requests fail at once.
type Navigator interface {
	Current() string
	Go(cmd NavigationCommand)
}

// NavigationCommand is an explicit, inspectable redirect request. The
// guardian emits it instead of mutating any global location state.
type NavigationCommand struct {
	Path   string
	Reason string
}

// Config holds session options
type Config interface {
	GetBaseURL() string
	GetRequestTimeout() int
	GetExpiryBuffer() int
	GetAuthScheme() string
	GetLoginRoute() string
	GetLandingRoute() string
	GetStorePath() string
}

// NopNavigator discards navigation commands. It is the default until the
// embedding application wires a real router.
type NopNavigator struct{}

func (NopNavigator) Current() string { return "" }
func (NopNavigator) Go(NavigationCommand) {}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] SESSION "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] SESSION "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] SESSION "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] SESSION "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
