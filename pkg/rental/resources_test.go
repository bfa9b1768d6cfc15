package rental_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/changeset"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/identity"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/orderstatus"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/rental"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/validator"
)

func TestOwnershipLineage(t *testing.T) {
	t.Parallel()
	creator := uuid.New()
	client := &rental.Client{ID: uuid.New(), CreatorID: creator}
	place := &rental.Place{ID: uuid.New(), Client: client}

	t.Run("client owner is its creator", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, creator, client.OwnerID())
	})

	t.Run("place, document, and order trace to the client creator", func(t *testing.T) {
		t.Parallel()
		document := rental.Document{ID: uuid.New(), Client: client}
		order := rental.NewOrder(client, place)

		assert.Equal(t, creator, place.OwnerID())
		assert.Equal(t, creator, document.OwnerID())
		assert.Equal(t, creator, order.OwnerID())
	})

	t.Run("missing lineage owns nothing", func(t *testing.T) {
		t.Parallel()
		orphan := rental.Order{ID: uuid.New()}
		assert.Equal(t, uuid.Nil, orphan.OwnerID())
	})
}

func TestAccountAdapter(t *testing.T) {
	t.Parallel()
	actor := &identity.Actor{ID: uuid.New(), Role: identity.RoleStaff, Main: true}
	account := rental.Account{Actor: actor}

	assert.Equal(t, "account", account.PolicyType())
	assert.Equal(t, actor.ID, account.AccountID())
	assert.True(t, account.Elevated())
	assert.True(t, account.Main())

	empty := rental.Account{}
	assert.Equal(t, uuid.Nil, empty.AccountID())
	assert.False(t, empty.Elevated())
	assert.False(t, empty.Main())
}

func TestOrderLifecycle(t *testing.T) {
	t.Parallel()
	client := &rental.Client{ID: uuid.New(), CreatorID: uuid.New()}
	place := &rental.Place{ID: uuid.New(), Client: client}

	t.Run("created orders start reserved", func(t *testing.T) {
		t.Parallel()
		order := rental.NewOrder(client, place)
		assert.Equal(t, orderstatus.Reserved, order.Status)
	})

	t.Run("finalized order rejects further status changes", func(t *testing.T) {
		t.Parallel()
		order := rental.NewOrder(client, place)

		// Jumping straight to finalized is a legal forward move.
		jump := changeset.Of("status", order.Status, orderstatus.Finalized)
		require.NoError(t, order.Validate(jump))
		order.Status = orderstatus.Finalized

		for _, target := range orderstatus.Statuses {
			if target == orderstatus.Finalized {
				continue
			}
			err := order.Validate(changeset.Of("status", order.Status, target))
			require.Error(t, err, "finalized -> %s must be rejected", target)
			assert.True(t, validator.ExtractValidationErrors(err).Has("status"))
		}
	})

	t.Run("non-status updates pass validation", func(t *testing.T) {
		t.Parallel()
		order := rental.NewOrder(client, place)
		set := changeset.Of("ends_at", nil, "2026-09-15")
		require.NoError(t, order.Validate(set))
	})
}
