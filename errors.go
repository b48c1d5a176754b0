package session

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCredentials = "session_invalid_credentials"
	TextCodeEmailRegistered    = "session_email_registered"
	TextCodeAuthFailure        = "session_auth_failure"
	TextCodeForbidden          = "session_forbidden"
	TextCodeTransportFailure   = "session_transport_failure"
	TextCodeServerFailure      = "session_server_failure"
)

// ErrInvalidCredentials is returned when the backend rejects a login
// exchange. The credential store is left untouched.
var ErrInvalidCredentials = errors.New("invalid email or password", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrEmailRegistered is returned when registration conflicts with an
// existing account.
var ErrEmailRegistered = errors.New("email is already registered", errors.CategoryConflict).
	WithTextCode(TextCodeEmailRegistered).
	WithCode(errors.CodeConflict)

// ErrAuthenticationFailed is returned after the guardian has already
// purged the store and emitted the login redirect; callers may react to
// it locally but must not retry without a fresh login.
var ErrAuthenticationFailed = errors.New("authentication rejected by backend", errors.CategoryAuth).
	WithTextCode(TextCodeAuthFailure).
	WithCode(errors.CodeUnauthorized)

// ErrForbidden is returned when the credential is valid but the role is
// insufficient for the requested resource.
var ErrForbidden = errors.New("insufficient privilege", errors.CategoryAuthz).
	WithTextCode(TextCodeForbidden).
	WithCode(errors.CodeForbidden)

// ErrServerFailure is returned for 5xx responses from the backend.
var ErrServerFailure = errors.New("backend internal error", errors.CategoryInternal).
	WithTextCode(TextCodeServerFailure).
	WithCode(errors.CodeInternal)

// IsAuthenticationFailure will check for rejected credentials
func IsAuthenticationFailure(err error) bool {
	return hasTextCode(err, TextCodeAuthFailure) || hasTextCode(err, TextCodeInvalidCredentials)
}

// IsAuthorizationFailure will check for insufficient privilege
func IsAuthorizationFailure(err error) bool {
	return hasTextCode(err, TextCodeForbidden)
}

// IsTransportFailure will check for requests that never produced a response
func IsTransportFailure(err error) bool {
	return hasTextCode(err, TextCodeTransportFailure)
}

// IsServerFailure will check for backend 5xx outcomes
func IsServerFailure(err error) bool {
	return hasTextCode(err, TextCodeServerFailure)
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}
