// Package token signs and verifies the compact session tokens carried by
// API callers.
//
// Tokens use the JWT compact serialization with HMAC-SHA256 only. A Service
// wraps an immutable signing key injected at construction, so tests can use
// deterministic keys and key rotation is an explicit redeploy rather than
// ambient global state. SessionClaims is the payload minted by the session
// layer: the actor id and the issue time in integer seconds.
//
// Parsing fails closed. A malformed structure, a signature mismatch, or a
// token declaring any algorithm other than HS256 yields a sentinel error
// and never a partially decoded payload. Signature comparison is constant
// time.
//
// # Usage
//
//	svc, err := token.NewFromString("signing-secret")
//	tok, err := svc.Generate(token.SessionClaims{ActorID: id, IssuedAt: now})
//
//	var claims token.SessionClaims
//	if err := svc.Parse(tok, &claims); err != nil {
//	    // no session
//	}
//
// Expiry is not encoded in the token; the session layer derives it from
// IssuedAt and its configured TTL.
package token
