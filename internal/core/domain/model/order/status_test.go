package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep Unknown as zero value", func(t *testing.T) {
		var s order.Status
		assert.Equal(t, order.Unknown, s)
		require.Error(t, s.Validate())
	})

	t.Run("should list statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.Placed, order.Paid, order.Processing, order.Shipped, order.Completed, order.Cancelled,
		}, order.Statuses())
	})
}

func TestStatus_String(t *testing.T) {
	expected := map[order.Status]string{
		order.Placed:     "PLACED",
		order.Paid:       "PAID",
		order.Processing: "PROCESSING",
		order.Shipped:    "SHIPPED",
		order.Completed:  "COMPLETED",
		order.Cancelled:  "CANCELLED",
		order.Unknown:    "UNKNOWN",
		order.Status(42): "UNKNOWN",
	}

	for status, name := range expected {
		assert.Equal(t, name, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every status name", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should ignore case and whitespace", func(t *testing.T) {
		parsed, err := order.ParseStatus("  shipped ")

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "DELIVERED"} {
			_, err := order.ParseStatus(name)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		require.NoError(t, status.Validate())
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		})
	}
}

func TestStatus_CanCancel(t *testing.T) {
	expected := map[order.Status]bool{
		order.Placed:     true,
		order.Paid:       true,
		order.Processing: true,
		order.Shipped:    false,
		order.Completed:  false,
		order.Cancelled:  true,
	}

	for status, allowed := range expected {
		assert.Equal(t, allowed, status.CanCancel(), status.String())
	}
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should move cancellable statuses to Cancelled", func(t *testing.T) {
		for _, status := range []order.Status{order.Placed, order.Paid, order.Processing, order.Cancelled} {
			next, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("should refuse Shipped and Completed with the current status", func(t *testing.T) {
		for _, status := range []order.Status{order.Shipped, order.Completed} {
			_, err := status.Cancel()

			require.ErrorIs(t, err, errs.ErrIllegalState)
			var stateErr *errs.IllegalStateError
			require.ErrorAs(t, err, &stateErr)
			assert.Equal(t, status, stateErr.State)
			assert.Contains(t, err.Error(), status.String())
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow every pair including self transitions", func(t *testing.T) {
		for _, current := range order.Statuses() {
			for _, target := range order.Statuses() {
				assert.True(t, current.CanTransitionTo(target))

				next, err := current.TransitionTo(target)
				require.NoError(t, err)
				assert.Equal(t, target, next)
			}
		}
	})

	t.Run("should reject an unknown target", func(t *testing.T) {
		_, err := order.Placed.TransitionTo(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
