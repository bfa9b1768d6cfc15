package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("login", "alice"),
			validator.InList("role", "staff", []string{"user", "staff", "admin"}),
		)
		require.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("login", "  "),
			validator.InList("role", "owner", []string{"user", "staff", "admin"}),
		)
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 2)
		assert.True(t, ve.Has("login"))
		assert.True(t, ve.Has("role"))
	})

	t.Run("deny rule always fails", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.Deny("status", "cannot move backward"))
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		require.True(t, ve.Has("status"))
		assert.Equal(t, []string{"cannot move backward"}, ve.Get("status"))
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("error message lists fields", func(t *testing.T) {
		t.Parallel()
		ve := validator.ValidationErrors{
			{Field: "status", Message: "is terminal"},
		}
		assert.Equal(t, "validation failed: status: is terminal", ve.Error())
	})

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()
		var ve validator.ValidationErrors
		assert.True(t, ve.IsEmpty())
		assert.Equal(t, "validation failed", ve.Error())
	})

	t.Run("extract from wrapped error", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.Deny("status", "nope"))
		wrapped := fmt.Errorf("saving order: %w", err)

		require.True(t, validator.IsValidationError(wrapped))
		ve := validator.ExtractValidationErrors(wrapped)
		require.Len(t, ve, 1)
	})

	t.Run("extract from nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}
