package identity

import "errors"

var (
	// ErrUnknownRole is returned when a role string is not one of the
	// enumerated tiers.
	ErrUnknownRole = errors.New("identity: unknown role")

	// ErrPasswordMismatch is returned when password verification fails for
	// any reason, including an actor without a usable hash.
	ErrPasswordMismatch = errors.New("identity: password mismatch")

	// ErrNilActor is returned when an operation is handed a nil actor.
	ErrNilActor = errors.New("identity: nil actor")
)
