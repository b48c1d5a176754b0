// Package session provides the client-side authentication lifecycle for the
// retail portal backend: unverified token decoding, expiry tracking, credential
// persistence, and the HTTP plumbing that attaches or purges credentials.
//
// Session lifecycle:
//   - Tokens are issued by the backend at login/registration and are never
//     verified client-side; the claims segment is decoded for identity, role,
//     and expiry only. A token that cannot be decoded counts as no session.
//   - The CredentialStore persists the token and the cached user profile as a
//     single unit. The two slots are written and cleared together so a stale
//     identity is never presented next to a dead credential.
//   - Expiry is decided ahead of the literal deadline with a safety buffer so
//     in-flight requests are not rejected by the backend over clock skew.
//
// HTTP pipeline:
//   - RequestAuthenticator runs before each outgoing request: attach a valid
//     credential, purge an expired one, or pass through untouched.
//   - ResponseGuardian runs on each outcome: a 401 clears the store and emits
//     a navigation command to the login route at most once per request; 403,
//     5xx, and transport failures are logged and re-raised unchanged.
//   - Both stages compose into a single http.RoundTripper via Transport.
//
// SessionManager is the one authority the embedding application queries for
// "who is logged in" and asks to log in, register, or log out. Construct it
// once at startup and inject it; there is no package-level singleton.
package session
