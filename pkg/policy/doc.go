// Package policy answers "may this actor perform this action on this
// resource, given its pending changes".
//
// The engine holds an ordered list of grant and deny rules evaluated in
// sequence with last-match-wins semantics. That ordering expresses the
// domain's "broad grant, narrow carve-out" shape directly: elevated actors
// get blanket manage on accounts, two deny rules carve out self-role
// escalation and touching other elevated accounts, and a final grant
// restores unrestricted access for the single main actor.
//
// Attribute-sensitive rules read the changeset.Set the caller is about to
// persist, so the engine never depends on a storage framework's dirty
// tracking. Client-family resources (client, place, document, order) are
// checked by role tier and ownership lineage instead of attribute diffs.
//
// # Usage
//
//	engine := policy.New()
//	if err := engine.Can(actor, policy.ActionUpdate, account, changes); err != nil {
//	    // errors.Is(err, policy.ErrDenied) -> forbidden
//	}
//
// Denial is data, not a fault: ErrDenied is the expected negative outcome.
// ErrInvalidActor and ErrUnknownResource mark malformed references, which
// only occur when the boundary is wired incorrectly.
package policy
