package guard_test

import (
	"errors"
	"testing"

	"constructmart/internal/pkg/guard"

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

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates the intended embedding pattern.
func TestConstructorGuardUsageExample(t *testing.T) {
	type cartLine struct {
		productID string
		quantity  int
		guard     guard.ConstructorGuard
	}

	var errCartLineNotConstructed = errors.New("cartLine must be created via newCartLine")

	newCartLine := func(productID string, quantity int) (cartLine, error) {
		if productID == "" {
			return cartLine{}, errors.New("product ID is required")
		}
		if quantity <= 0 {
			return cartLine{}, errors.New("quantity must be positive")
		}
		return cartLine{
			productID: productID,
			quantity:  quantity,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	validate := func(l cartLine) error {
		return l.guard.Validate(errCartLineNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		line, err := newCartLine("cement-42", 3)

		require.NoError(t, err)
		require.NoError(t, validate(line))
		assert.Equal(t, "cement-42", line.productID)
		assert.Equal(t, 3, line.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var line cartLine // zero value

		err := validate(line)

		require.Error(t, err)
		assert.Equal(t, errCartLineNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCartLine("", 3)
		require.Error(t, err)

		_, err = newCartLine("cement-42", 0)
		require.Error(t, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		gCopy := g

		require.NoError(t, g.Validate(testError))
		require.NoError(t, gCopy.Validate(testError))
	})
}
