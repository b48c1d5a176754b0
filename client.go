package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
)

// DefaultRequestTimeout bounds every backend exchange. There is no
// cancellation flow for in-flight auth calls beyond this deadline.
const DefaultRequestTimeout = 8 * time.Second

// Client is the production Gateway: a base-URL JSON client for the portal
// backend's auth endpoints. It sends every request through the session
// Transport so credentials are attached and policed uniformly.
type Client struct {
	baseURL string
	http    *http.Client
	logger  Logger
}

var _ Gateway = (*Client)(nil)

// NewClient returns a new Client
func NewClient(cfg Config, transport http.RoundTripper) *Client {
	timeout := DefaultRequestTimeout
	if cfg != nil && cfg.GetRequestTimeout() > 0 {
		timeout = time.Duration(cfg.GetRequestTimeout()) * time.Second
	}

	baseURL := ""
	if cfg != nil {
		baseURL = strings.TrimRight(cfg.GetBaseURL(), "/")
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: defLogger{},
	}
}

func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// HTTPClient exposes the underlying client so the embedding application can
// issue domain requests (catalog, stock, sales) through the same pipeline.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Login performs the credential exchange. A 401 surfaces as
// ErrInvalidCredentials and leaves the credential store untouched.
func (c *Client) Login(ctx context.Context, payload LoginPayload) (*AuthExchange, error) {
	if err := payload.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "invalid login request payload")
	}

	resp, err := c.postJSON(ctx, "/auth/login", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	return decodeExchange(resp)
}

// Register performs the signup exchange. A 409 surfaces as
// ErrEmailRegistered.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*AuthExchange, error) {
	if err := payload.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "invalid registration payload")
	}

	resp, err := c.postJSON(ctx, "/auth/signup", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return nil, ErrEmailRegistered
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.statusError(resp)
	}

	return decodeExchange(resp)
}

// FetchRole asks the backend for the authenticated principal's role. The
// pipeline attaches the stored credential.
func (c *Client) FetchRole(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/role", nil)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to build role request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	role := RoleResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&role); err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to decode role response")
	}

	return role.Role, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to encode request payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}

	return resp, nil
}

func (c *Client) statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuthenticationFailed
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode >= http.StatusInternalServerError:
		return ErrServerFailure
	default:
		c.logger.Warn("unexpected backend status", "status", resp.StatusCode, "path", resp.Request.URL.Path)
		return errors.New(
			fmt.Sprintf("backend responded with status %d", resp.StatusCode),
			errors.CategoryBadInput,
		).WithCode(errors.CodeBadRequest)
	}
}

func decodeExchange(resp *http.Response) (*AuthExchange, error) {
	exchange := &AuthExchange{}
	if err := json.NewDecoder(resp.Body).Decode(exchange); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to decode auth exchange")
	}
	if exchange.Token == "" {
		return nil, errors.New("auth exchange returned no token", errors.CategoryInternal)
	}
	return exchange, nil
}

// wrapTransportError preserves a guardian classification if one is already
// present; http.Client wraps RoundTrip errors in *url.Error.
func wrapTransportError(err error) error {
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr
	}
	return errors.Wrap(err, errors.CategoryOperation, "request produced no response").
		WithTextCode(TextCodeTransportFailure)
}
