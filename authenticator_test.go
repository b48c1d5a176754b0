package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpoint/go-session"
)

func newAuthenticator(store session.CredentialStore) *session.RequestAuthenticator {
	return session.NewRequestAuthenticator(store, &session.Options{})
}

func TestRequestAuthenticatorDecide(t *testing.T) {
	auth := newAuthenticator(session.NewMemoryStore())

	tests := []struct {
		name     string
		token    string
		expected session.Decision
	}{
		{"no token passes through", "", session.DecisionPassthrough},
		{"live token attaches", mintToken(t, 7, session.RoleAdmin, time.Hour), session.DecisionAttach},
		{"expired token purges", mintToken(t, 7, session.RoleAdmin, -time.Minute), session.DecisionPurge},
		{"token inside the buffer purges", mintToken(t, 7, session.RoleAdmin, 30*time.Second), session.DecisionPurge},
		{"unreadable token purges", "garbage", session.DecisionPurge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, auth.Decide(tt.token))
		})
	}
}

func TestRequestAuthenticatorPrepare(t *testing.T) {
	t.Run("attaches bearer credential for a live token", func(t *testing.T) {
		store := session.NewMemoryStore()
		token := mintToken(t, 7, session.RoleAdmin, time.Hour)
		require.NoError(t, store.Put(token, nil))

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		newAuthenticator(store).Prepare(req)

		assert.Equal(t, "Bearer "+token, req.Header.Get("Authorization"))
	})

	t.Run("purges an expired token and sends unauthenticated", func(t *testing.T) {
		store := session.NewMemoryStore()
		expired := mintToken(t, 7, session.RoleAdmin, -time.Minute)
		require.NoError(t, store.Put(expired, []byte("profile")))

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		newAuthenticator(store).Prepare(req)

		assert.Empty(t, req.Header.Get("Authorization"))
		assert.Empty(t, store.Token())
		assert.Nil(t, store.Profile())
	})

	t.Run("passes through when no token is stored", func(t *testing.T) {
		store := session.NewMemoryStore()

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		newAuthenticator(store).Prepare(req)

		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("honors a custom auth scheme", func(t *testing.T) {
		store := session.NewMemoryStore()
		token := mintToken(t, 7, session.RoleAdmin, time.Hour)
		require.NoError(t, store.Put(token, nil))

		auth := session.NewRequestAuthenticator(store, &session.Options{AuthScheme: "Token"})

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		auth.Prepare(req)

		assert.Equal(t, "Token "+token, req.Header.Get("Authorization"))
	})
}
