// Package identity defines the Actor model and its credential store.
//
// An Actor carries a role from a fixed enumerated set (user < staff ≈ admin)
// plus an orthogonal Main flag marking the single distinguished super-admin.
// Role-tier predicates (IsElevated, IsPlainUser, IsMain) are the inputs the
// policy engine classifies actors by.
//
// Password handling lives on the Hasher value: Set re-derives the bcrypt
// hash, Set with an empty plaintext clears it (pending-invitation state),
// and Verify compares without leaking whether a hash exists at all.
// Persistence of the actor record is an external collaborator's concern;
// the package only mutates the in-memory hash field.
package identity
