package session

import (
	"net/http"
	"time"
)

// Decision is the pre-send action for an outgoing request.
type Decision int

const (
	// DecisionPassthrough forwards the request untouched: no token present.
	DecisionPassthrough Decision = iota
	// DecisionAttach injects the Authorization header: token present and live.
	DecisionAttach
	// DecisionPurge clears the store and forwards without credentials: the
	// token is already inside the expiry buffer, so attaching it would only
	// earn a rejection from the backend.
	DecisionPurge
)

// RequestAuthenticator is the pre-send filter of the pipeline. It never
// performs network I/O; its only side effect is purging a dead credential
// the moment it notices one.
type RequestAuthenticator struct {
	store  CredentialStore
	scheme string
	buffer time.Duration
	logger Logger
}

// NewRequestAuthenticator returns a new RequestAuthenticator
func NewRequestAuthenticator(store CredentialStore, cfg Config) *RequestAuthenticator {
	scheme := "Bearer"
	if cfg != nil && cfg.GetAuthScheme() != "" {
		scheme = cfg.GetAuthScheme()
	}

	buffer := DefaultExpiryBuffer
	if cfg != nil && cfg.GetExpiryBuffer() > 0 {
		buffer = time.Duration(cfg.GetExpiryBuffer()) * time.Second
	}

	return &RequestAuthenticator{
		store:  store,
		scheme: scheme,
		buffer: buffer,
		logger: defLogger{},
	}
}

func (a *RequestAuthenticator) WithLogger(logger Logger) *RequestAuthenticator {
	a.logger = logger
	return a
}

// Decide maps the stored token to a pre-send action.
func (a *RequestAuthenticator) Decide(token string) Decision {
	if token == "" {
		return DecisionPassthrough
	}
	if IsExpiredWithin(token, a.buffer) {
		return DecisionPurge
	}
	return DecisionAttach
}

// Prepare applies the decision to the outgoing request before transmission.
func (a *RequestAuthenticator) Prepare(req *http.Request) {
	token := a.store.Token()

	switch a.Decide(token) {
	case DecisionAttach:
		req.Header.Set("Authorization", a.scheme+" "+token)
	case DecisionPurge:
		if err := a.store.Clear(); err != nil {
			a.logger.Error("failed to purge expired credential", "error", err)
			return
		}
		a.logger.Info("expired credential purged before send", "path", req.URL.Path)
	}
}
