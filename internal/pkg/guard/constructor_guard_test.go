package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_provided_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		customError := errors.New("object was not constructed")

		err := g.Validate(customError)

		require.Error(t, err)
		assert.Equal(t, customError, err)
	})

	t.Run("zero_value_guard_with_nil_error_returns_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

type guardedThing struct {
	guard guard.ConstructorGuard
}

func newGuardedThing() guardedThing {
	return guardedThing{guard: guard.NewConstructorGuard()}
}

func TestConstructorGuard_Embedded(t *testing.T) {
	t.Run("constructed_struct_passes_validation", func(t *testing.T) {
		thing := newGuardedThing()
		require.NoError(t, thing.guard.Validate(nil))
	})

	t.Run("zero_value_struct_fails_validation", func(t *testing.T) {
		var thing guardedThing
		require.Error(t, thing.guard.Validate(nil))
	})
}
