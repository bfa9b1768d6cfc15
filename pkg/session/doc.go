// Package session implements the stateless session lifecycle: issuing a
// signed token on successful login and rotating it on every successful use.
//
// Sessions are sliding-window: each Resolve of a valid token mints a fresh
// token with a refreshed issue time, so validity is measured from the most
// recent use rather than the original login. The previous token remains
// independently valid until its own expiry -- there is no revocation list
// or server-side session store, a deliberate tradeoff of this design.
// Concurrent resolves of the same token therefore never conflict; each
// produces its own successor.
//
// Identity failures are collapsed: Issue answers every unknown credential,
// wrong password, unconfirmed identity, or inactive account with the same
// ErrInvalidCredentials, and Resolve answers every malformed, forged, or
// expired token with ErrNoSession, preventing account enumeration.
//
// # Usage
//
//	var cfg session.Config
//	config.MustLoad(&cfg)
//
//	mgr, err := session.New(cfg, store)
//	tok, err := mgr.Issue(ctx, "alice@example.com", "password")
//	actor, fresh, err := mgr.Resolve(ctx, tok)
//
// The actor store is the only I/O dependency; token minting is pure
// computation over the immutable signing key.
package session
