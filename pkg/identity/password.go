package identity

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher derives and verifies password hashes using bcrypt, an adaptive
// salted algorithm. The zero cost falls back to bcrypt.DefaultCost; tests
// and non-production configurations lower it via WithCost.
type Hasher struct {
	cost int
}

// HasherOption configures a Hasher.
type HasherOption func(*Hasher)

// WithCost sets the bcrypt cost factor. Values outside the bcrypt range are
// clamped by the underlying library at hash time.
func WithCost(cost int) HasherOption {
	return func(h *Hasher) {
		h.cost = cost
	}
}

// NewHasher creates a Hasher with bcrypt.DefaultCost unless overridden.
func NewHasher(opts ...HasherOption) Hasher {
	h := Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Set re-derives the actor's password hash from the plaintext. An empty
// plaintext clears the hash, representing "no password usable" states such
// as pending invitations; a cleared hash never verifies.
func (h Hasher) Set(actor *Actor, plaintext string) error {
	if actor == nil {
		return ErrNilActor
	}

	if plaintext == "" {
		actor.PasswordHash = nil
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	actor.PasswordHash = hash
	return nil
}

// Verify compares the plaintext against the actor's stored hash. It returns
// ErrPasswordMismatch for a wrong password and for any actor without a
// usable hash, so callers cannot tell the two apart.
func (h Hasher) Verify(actor *Actor, plaintext string) error {
	if actor == nil || !actor.HasPassword() {
		return ErrPasswordMismatch
	}

	if err := bcrypt.CompareHashAndPassword(actor.PasswordHash, []byte(plaintext)); err != nil {
		return ErrPasswordMismatch
	}

	return nil
}
