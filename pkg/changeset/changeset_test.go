package changeset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/changeset"
)

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("of single field", func(t *testing.T) {
		t.Parallel()
		set := changeset.Of("role", "user", "admin")

		assert.True(t, set.Changed("role"))
		assert.False(t, set.Changed("active"))

		c, ok := set.Get("role")
		require.True(t, ok)
		assert.Equal(t, "user", c.Old)
		assert.Equal(t, "admin", c.New)
	})

	t.Run("unchanged value is not a change", func(t *testing.T) {
		t.Parallel()
		set := changeset.Of("status", "reserved", "reserved")

		assert.False(t, set.Changed("status"))

		// The attribute is still part of the pending write.
		_, ok := set.Get("status")
		assert.True(t, ok)
	})

	t.Run("build copies the input map", func(t *testing.T) {
		t.Parallel()
		input := map[string]changeset.Change{
			"active": {Old: true, New: false},
		}
		set := changeset.Build(input)

		input["role"] = changeset.Change{Old: "user", New: "admin"}

		assert.True(t, set.Changed("active"))
		assert.False(t, set.Changed("role"))
		assert.Equal(t, []string{"active"}, set.Fields())
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()
		var set changeset.Set

		assert.True(t, set.IsEmpty())
		assert.False(t, set.Changed("role"))
		assert.Nil(t, set.Fields())

		_, ok := set.Get("role")
		assert.False(t, ok)
	})

	t.Run("build with nil map", func(t *testing.T) {
		t.Parallel()
		set := changeset.Build(nil)
		assert.True(t, set.IsEmpty())
	})
}
