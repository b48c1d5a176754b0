package session

import (
	"net/http"
)

// Runtime bundles the wired session core: the persisted store, the
// authenticated HTTP pipeline, the backend client, and the manager the
// application queries.
type Runtime struct {
	Manager       *SessionManager
	Client        *Client
	Store         CredentialStore
	Authenticator *RequestAuthenticator
	Guardian      *ResponseGuardian
}

// New wires the full session core over a persisted credential store at
// cfg.GetStorePath(). Chain With* methods on the returned components to
// swap loggers or attach a Navigator before first use.
func New(cfg Config) (*Runtime, error) {
	db, err := OpenStoreDB(cfg.GetStorePath())
	if err != nil {
		return nil, err
	}

	store, err := NewBunStore(db)
	if err != nil {
		return nil, err
	}

	return NewWithStore(cfg, store), nil
}

// NewWithStore wires the session core over a caller-provided store; tests
// and single-run tools typically pass a MemoryStore.
func NewWithStore(cfg Config, store CredentialStore) *Runtime {
	authenticator := NewRequestAuthenticator(store, cfg)
	guardian := NewResponseGuardian(store, cfg)
	transport := NewTransport(http.DefaultTransport, authenticator, guardian)
	client := NewClient(cfg, transport)
	manager := NewSessionManager(client, store, cfg)

	return &Runtime{
		Manager:       manager,
		Client:        client,
		Store:         store,
		Authenticator: authenticator,
		Guardian:      guardian,
	}
}
