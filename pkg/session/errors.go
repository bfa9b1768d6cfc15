package session

import "errors"

var (
	// ErrInvalidCredentials is returned by Issue for every identity failure:
	// unknown credential, wrong password, unconfirmed or inactive actor. The
	// sub-causes are deliberately not distinguished.
	ErrInvalidCredentials = errors.New("session: invalid credentials")

	// ErrNoSession is returned by Resolve when the token is malformed,
	// forged, expired, or references an unknown actor.
	ErrNoSession = errors.New("session: no session")

	// ErrMissingStore is returned when a manager is constructed without an
	// actor store.
	ErrMissingStore = errors.New("session: missing actor store")
)
