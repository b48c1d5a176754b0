package session

import (
	"context"
)

var claimsCtxKey = &contextKey{"claims"}
var handledCtxKey = &contextKey{"handled"}
var requestIDCtxKey = &contextKey{"request_id"}

type contextKey struct {
	name string
}

// handledMarker records that the guardian already took its corrective
// action for the originating request. It travels in the request context so
// repeated inspections of the same request cannot trigger a second
// navigation.
type handledMarker struct {
	done bool
}

// WithClaimsContext sets the decoded Claims in the given context
func WithClaimsContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// ClaimsFromContext finds the decoded Claims from the context.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	raw, ok := ctx.Value(claimsCtxKey).(*Claims)
	return raw, ok
}

// WithRequestID sets the correlation ID in the given context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, id)
}

// RequestIDFromContext finds the correlation ID from the context.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	raw, ok := ctx.Value(requestIDCtxKey).(string)
	return raw, ok
}

func withHandledMarker(ctx context.Context) context.Context {
	return context.WithValue(ctx, handledCtxKey, &handledMarker{})
}

func handledMarkerFromContext(ctx context.Context) *handledMarker {
	raw, ok := ctx.Value(handledCtxKey).(*handledMarker)
	if !ok {
		return nil
	}
	return raw
}
