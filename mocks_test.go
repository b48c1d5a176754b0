package session_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/go-session"
)

const testSigningKey = "test-signing-key"

// mintToken signs an HS256 token the way the portal backend would. The
// client never verifies signatures, so the key only matters for realism.
func mintToken(t *testing.T, userID int64, role session.UserRole, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := &session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		UserID:   userID,
		UserRole: string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	return signed
}

// recordingNavigator captures emitted navigation commands.
type recordingNavigator struct {
	mu       sync.Mutex
	location string
	commands []session.NavigationCommand
}

func (n *recordingNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

func (n *recordingNavigator) Go(cmd session.NavigationCommand) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.commands = append(n.commands, cmd)
	n.location = cmd.Path
}

func (n *recordingNavigator) emitted() []session.NavigationCommand {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]session.NavigationCommand, len(n.commands))
	copy(out, n.commands)
	return out
}

// stubGateway scripts Gateway outcomes for SessionManager tests.
type stubGateway struct {
	loginExchange    *session.AuthExchange
	loginErr         error
	registerExchange *session.AuthExchange
	registerErr      error
	role             string
	roleErr          error

	loginCalls    []session.LoginPayload
	registerCalls []session.RegisterPayload
}

func (g *stubGateway) Login(_ context.Context, payload session.LoginPayload) (*session.AuthExchange, error) {
	g.loginCalls = append(g.loginCalls, payload)
	if g.loginErr != nil {
		return nil, g.loginErr
	}
	return g.loginExchange, nil
}

func (g *stubGateway) Register(_ context.Context, payload session.RegisterPayload) (*session.AuthExchange, error) {
	g.registerCalls = append(g.registerCalls, payload)
	if g.registerErr != nil {
		return nil, g.registerErr
	}
	return g.registerExchange, nil
}

func (g *stubGateway) FetchRole(_ context.Context) (string, error) {
	if g.roleErr != nil {
		return "", g.roleErr
	}
	return g.role, nil
}

// roundTripperFunc adapts a function into an http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
