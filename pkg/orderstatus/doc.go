// Package orderstatus guards the rental order lifecycle.
//
// Statuses carry an explicit total order (reserved=0 through finalized=5)
// and transition legality is a comparison over those indices rather than an
// enumerated transition table: forward moves are legal, backward moves are
// not, with two exceptions. Finalized is terminal -- nothing leaves it --
// and on_pick_up is reachable from any non-terminal state regardless of
// ordering, so a pending order can still be sent out for pick-up.
//
// The Guard evaluates only when the status attribute appears in a pending
// change set, and rejects by returning a validation error scoped to the
// status field. Acceptance has no side effect; the persistence layer saves
// the new value.
package orderstatus
