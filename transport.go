package session

import (
	"net/http"

	"github.com/google/uuid"
)

// Transport composes the RequestAuthenticator and ResponseGuardian into a
// single http.RoundTripper. Every portal call, whether issued by the SDK's
// own Client or by the embedding application through HTTPClient, crosses
// both stages.
//
// Status-classified failures are corrected and logged here, but the
// response itself always passes through unchanged: the caller owns the
// presentation of a 401 or 500 it just received. Only transport failures
// surface as errors from RoundTrip, per the RoundTripper contract.
type Transport struct {
	base          http.RoundTripper
	authenticator *RequestAuthenticator
	guardian      *ResponseGuardian
}

var _ http.RoundTripper = (*Transport)(nil)

// NewTransport returns a new Transport
func NewTransport(base http.RoundTripper, authenticator *RequestAuthenticator, guardian *ResponseGuardian) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:          base,
		authenticator: authenticator,
		guardian:      guardian,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := withHandledMarker(req.Context())
	ctx = WithRequestID(ctx, uuid.NewString())

	token := t.authenticator.store.Token()
	if t.authenticator.Decide(token) == DecisionAttach {
		if claims := DecodeToken(token); claims != nil {
			ctx = WithClaimsContext(ctx, claims)
		}
	}

	out := req.Clone(ctx)
	t.authenticator.Prepare(out)

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, t.guardian.Inspect(out, nil, err)
	}

	// corrective action and logging happen in the guardian; the response
	// itself passes back untouched for the caller to interpret
	_ = t.guardian.Inspect(out, resp, nil)

	return resp, nil
}
