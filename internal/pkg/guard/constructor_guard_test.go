package guard_test

import (
	"errors"
	"testing"

	"cargo/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardUsageExample mirrors how commands embed the guard.
func TestConstructorGuardUsageExample(t *testing.T) {
	type feeCommand struct {
		orderID int64
		fee     int64
		guard   guard.ConstructorGuard
	}
	errNotConstructed := errors.New("feeCommand must be created via newFeeCommand")

	newFeeCommand := func(orderID, fee int64) (feeCommand, error) {
		if fee <= 0 {
			return feeCommand{}, errors.New("fee must be positive")
		}
		return feeCommand{orderID: orderID, fee: fee, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		cmd, err := newFeeCommand(1, 10000)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, int64(10000), cmd.fee)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var cmd feeCommand

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
