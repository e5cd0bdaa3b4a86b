package guard_test

import (
	"errors"
	"testing"

	"foodorders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	type searchFilter struct {
		userID string
		guard  guard.ConstructorGuard
	}

	errFilterNotConstructed := errors.New("searchFilter must be created via newSearchFilter")

	newSearchFilter := func(userID string) (searchFilter, error) {
		if userID == "" {
			return searchFilter{}, errors.New("userID is required")
		}
		return searchFilter{userID: userID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_instance_validates", func(t *testing.T) {
		f, err := newSearchFilter("u-1")

		require.NoError(t, err)
		require.NoError(t, f.guard.Validate(errFilterNotConstructed))
	})

	t.Run("zero_value_instance_fails_validation", func(t *testing.T) {
		var f searchFilter

		err := f.guard.Validate(errFilterNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errFilterNotConstructed, err)
	})
}
