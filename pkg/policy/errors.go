package policy

import "errors"

var (
	// ErrDenied is the explicit denial outcome: no rule granted the request
	// or a carve-out rejected it. It is a policy decision, not a fault, and
	// callers translate it into an access-denied response.
	ErrDenied = errors.New("policy: denied")

	// ErrInvalidActor is returned for a nil actor or one carrying a role
	// outside the enumerated set. This indicates a wiring bug at the
	// boundary, not a policy outcome.
	ErrInvalidActor = errors.New("policy: invalid actor")

	// ErrUnknownResource is returned for a nil resource or a type the rule
	// set does not recognize.
	ErrUnknownResource = errors.New("policy: unknown resource type")
)
