package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/identity"
)

func TestHasher(t *testing.T) {
	t.Parallel()
	hasher := identity.NewHasher(identity.WithCost(bcrypt.MinCost))

	t.Run("set then verify", func(t *testing.T) {
		t.Parallel()
		actor := &identity.Actor{}

		require.NoError(t, hasher.Set(actor, "s3cret-pass"))
		require.True(t, actor.HasPassword())
		require.NoError(t, hasher.Verify(actor, "s3cret-pass"))
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		actor := &identity.Actor{}

		require.NoError(t, hasher.Set(actor, "s3cret-pass"))
		err := hasher.Verify(actor, "wrong")
		require.ErrorIs(t, err, identity.ErrPasswordMismatch)
	})

	t.Run("empty plaintext clears the hash", func(t *testing.T) {
		t.Parallel()
		actor := &identity.Actor{}

		require.NoError(t, hasher.Set(actor, "s3cret-pass"))
		require.NoError(t, hasher.Set(actor, ""))

		assert.False(t, actor.HasPassword())
		require.ErrorIs(t, hasher.Verify(actor, ""), identity.ErrPasswordMismatch)
		require.ErrorIs(t, hasher.Verify(actor, "s3cret-pass"), identity.ErrPasswordMismatch)
	})

	t.Run("hash is salted", func(t *testing.T) {
		t.Parallel()
		first := &identity.Actor{}
		second := &identity.Actor{}

		require.NoError(t, hasher.Set(first, "same-pass"))
		require.NoError(t, hasher.Set(second, "same-pass"))

		assert.NotEqual(t, first.PasswordHash, second.PasswordHash)
	})

	t.Run("nil actor", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, hasher.Set(nil, "pass"), identity.ErrNilActor)
		require.ErrorIs(t, hasher.Verify(nil, "pass"), identity.ErrPasswordMismatch)
	})

	t.Run("default cost round trip", func(t *testing.T) {
		t.Parallel()
		h := identity.NewHasher()
		actor := &identity.Actor{}

		require.NoError(t, h.Set(actor, "adaptive-cost"))
		require.NoError(t, h.Verify(actor, "adaptive-cost"))
	})
}
