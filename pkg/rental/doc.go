// Package rental holds the protected resource snapshots the policy engine
// is asked about: accounts, clients, places, documents, and orders.
//
// These are decision-time views over already-loaded records, not a
// persistence model. Client-family resources implement policy.Owned by
// tracing their lineage to the creating client's creator; Account adapts an
// identity.Actor so account rules can compare the target against the acting
// actor. Order wires the status transition guard into its own validation
// step.
package rental
