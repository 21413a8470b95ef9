package guard_test

import (
	"errors"
	"testing"

	"routetrail/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type window struct {
		from, to int
		guard    guard.ConstructorGuard
	}
	errWindowNotConstructed := errors.New("window must be created via newWindow")

	newWindow := func(from, to int) (window, error) {
		if from > to {
			return window{}, errors.New("from is after to")
		}
		return window{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
	}

	w, err := newWindow(1, 4)
	require.NoError(t, err)
	require.NoError(t, w.guard.Validate(errWindowNotConstructed))

	_, err = newWindow(5, 1)
	require.Error(t, err)

	var zero window
	assert.Equal(t, errWindowNotConstructed, zero.guard.Validate(errWindowNotConstructed))
}

func TestConstructorGuard_CopiesStayValid(t *testing.T) {
	g := guard.NewConstructorGuard()
	copied := g

	require.NoError(t, g.Validate(nil))
	require.NoError(t, copied.Validate(nil))
}
