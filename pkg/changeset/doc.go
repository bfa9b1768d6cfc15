// Package changeset provides an immutable old/new attribute diff used by
// authorization and state transition checks.
//
// A Set captures, per attribute, the persisted value and the value a caller
// is about to write. Both the policy engine and the order status guard
// consume the same Set, so a single diff computed at the persistence
// boundary drives every "compare current vs. proposed" decision.
//
// # Usage
//
//	set := changeset.Of("role", "user", "admin")
//	if set.Changed("role") {
//	    // the pending write modifies the role attribute
//	}
//
// A Set is a value type and safe for concurrent reads.
package changeset
