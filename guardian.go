package session

import (
	"net/http"
	"sync"

	"github.com/goliatone/go-errors"
)

// ResponseGuardian is the post-receive stage of the pipeline. It never
// retries the original request; there is no refresh flow. It only cleans up
// dead credentials and points the application back at the login boundary.
type ResponseGuardian struct {
	store        CredentialStore
	navigator    Navigator
	logger       Logger
	loginRoute   string
	landingRoute string

	// navMu serializes the location check and the navigation command so
	// simultaneous 401s from concurrent requests cannot both redirect.
	navMu sync.Mutex
}

// NewResponseGuardian returns a new ResponseGuardian
func NewResponseGuardian(store CredentialStore, cfg Config) *ResponseGuardian {
	loginRoute := "/login"
	landingRoute := "/"
	if cfg != nil {
		if cfg.GetLoginRoute() != "" {
			loginRoute = cfg.GetLoginRoute()
		}
		if cfg.GetLandingRoute() != "" {
			landingRoute = cfg.GetLandingRoute()
		}
	}

	return &ResponseGuardian{
		store:        store,
		navigator:    NopNavigator{},
		logger:       defLogger{},
		loginRoute:   loginRoute,
		landingRoute: landingRoute,
	}
}

func (g *ResponseGuardian) WithNavigator(navigator Navigator) *ResponseGuardian {
	if navigator != nil {
		g.navigator = navigator
	}
	return g
}

func (g *ResponseGuardian) WithLogger(logger Logger) *ResponseGuardian {
	g.logger = logger
	return g
}

// Inspect classifies the outcome of a sent request and applies at most one
// corrective action for it. The classified error is returned so the caller
// can react locally; recovery already happened by the time it sees it.
func (g *ResponseGuardian) Inspect(req *http.Request, resp *http.Response, err error) error {
	requestID, _ := RequestIDFromContext(req.Context())

	if err != nil {
		g.logger.Warn("transport failure",
			"error", err,
			"path", req.URL.Path,
			"request_id", requestID,
		)
		return errors.Wrap(err, errors.CategoryOperation, "request produced no response").
			WithTextCode(TextCodeTransportFailure)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		g.recoverAuthFailure(req, requestID)
		return ErrAuthenticationFailed
	case resp.StatusCode == http.StatusForbidden:
		g.logger.Warn("authorization failure",
			"path", req.URL.Path,
			"request_id", requestID,
		)
		return ErrForbidden
	case resp.StatusCode >= http.StatusInternalServerError:
		g.logger.Error("server failure",
			"status", resp.StatusCode,
			"path", req.URL.Path,
			"request_id", requestID,
		)
		return ErrServerFailure
	}

	return nil
}

// recoverAuthFailure purges the store and emits a single navigation command
// to the login route. The handled marker on the originating request keeps
// simultaneous 401s from piling up redirects.
func (g *ResponseGuardian) recoverAuthFailure(req *http.Request, requestID string) {
	marker := handledMarkerFromContext(req.Context())
	if marker != nil {
		if marker.done {
			return
		}
		marker.done = true
	}

	if err := g.store.Clear(); err != nil {
		g.logger.Error("failed to clear credentials after auth failure", "error", err)
	}

	g.navMu.Lock()
	defer g.navMu.Unlock()

	current := g.navigator.Current()
	if current == g.loginRoute || current == g.landingRoute {
		return
	}

	g.logger.Info("authentication failure, redirecting to login",
		"from", current,
		"request_id", requestID,
	)
	g.navigator.Go(NavigationCommand{
		Path:   g.loginRoute,
		Reason: "authentication failure",
	})
}
