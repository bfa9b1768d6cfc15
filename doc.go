// Package accesscore is the access-control and session layer of the rental
// management API.
//
// It answers two questions on every request: who is the caller, and may
// they perform this operation on this object given its pending changes.
// The packages compose in that order:
//
//   - pkg/identity – the Actor model, role tiers, and the bcrypt credential
//     store.
//   - pkg/token – the HMAC-signed compact session token codec.
//   - pkg/session – stateless token issuance and sliding-window rotation.
//   - pkg/changeset – the immutable old/new attribute diff decisions read.
//   - pkg/policy – the ordered grant/deny capability rule set.
//   - pkg/orderstatus – the finite-state guard over order status changes.
//   - pkg/rental – the protected resource snapshots the engine is asked
//     about.
//
// HTTP routing, persistence, and notification dispatch are external
// collaborators: the core is handed already-loaded actors and resources and
// returns decisions as data, never as control-flow panics.
package accesscore
