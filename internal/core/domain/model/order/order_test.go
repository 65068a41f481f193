package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	changedAt = createdAt.Add(90 * time.Minute)
)

func ptr[T any](v T) *T {
	return &v
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		"acc-123",
		[]order.Item{item(t, "prod-1", 2, "29.99"), item(t, "prod-2", 1, "10.00")},
		"123 Main St, City, State 12345",
		ptr("pmt-456"),
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		7,
		"acc-123",
		[]order.Item{item(t, "prod-1", 1, "5.00")},
		money(t, "5.00"),
		"1 Main St",
		nil,
		status,
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create placed order with computed total", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Validate())
		assert.False(t, o.HasID())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, "acc-123", o.AccountID())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "69.98", o.TotalAmount().String())
		assert.Equal(t, "123 Main St, City, State 12345", o.ShippingAddress())
		require.NotNil(t, o.PaymentID())
		assert.Equal(t, "pmt-456", *o.PaymentID())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, createdAt, o.UpdatedAt())
	})

	t.Run("should treat blank payment id as absent", func(t *testing.T) {
		o, err := order.NewOrder("acc-1", []order.Item{item(t, "p", 1, "1.00")}, "addr", ptr("  "), createdAt)

		require.NoError(t, err)
		assert.Nil(t, o.PaymentID())
	})

	t.Run("should keep items in creation order", func(t *testing.T) {
		o := newPlacedOrder(t)

		items := o.Items()
		assert.Equal(t, "prod-1", items[0].ProductID())
		assert.Equal(t, "prod-2", items[1].ProductID())
	})

	t.Run("should not expose internal item slice", func(t *testing.T) {
		o := newPlacedOrder(t)

		items := o.Items()
		items[0] = item(t, "tampered", 1, "0.01")

		assert.Equal(t, "prod-1", o.Items()[0].ProductID())
	})

	t.Run("should report all missing fields", func(t *testing.T) {
		o, err := order.NewOrder("", nil, " ", nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "accountId")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "shippingAddress")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep stored values", func(t *testing.T) {
		o, err := order.RestoreOrder(
			11,
			"acc-9",
			[]order.Item{item(t, "p", 1, "1.00")},
			money(t, "1.00"),
			"addr",
			ptr("pmt-1"),
			order.Shipped,
			createdAt,
			changedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(11), o.ID())
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, changedAt, o.UpdatedAt())
	})

	t.Run("should not recompute the stored total", func(t *testing.T) {
		o, err := order.RestoreOrder(
			11, "acc-9", []order.Item{item(t, "p", 1, "1.00")}, money(t, "3.00"),
			"addr", nil, order.Placed, createdAt, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, "3.00", o.TotalAmount().String())
	})

	t.Run("should reject missing id and unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			0, "acc-9", []order.Item{item(t, "p", 1, "1.00")}, money(t, "1.00"),
			"addr", nil, order.Unknown, createdAt, createdAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		o := &order.Order{}
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("should assign once", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.AssignID(5))
		assert.True(t, o.HasID())
		assert.Equal(t, int64(5), o.ID())
	})

	t.Run("should refuse reassignment", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.AssignID(5))

		err := o.AssignID(6)

		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.Equal(t, int64(5), o.ID())
	})

	t.Run("should refuse non positive id", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.ErrorIs(t, o.AssignID(-1), errs.ErrValueIsOutOfRange)
		assert.False(t, o.HasID())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := orderInStatus(t, order.Placed)
	b := orderInStatus(t, order.Paid)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
	assert.False(t, newPlacedOrder(t).IsEqual(newPlacedOrder(t)))
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel every status except shipped and completed", func(t *testing.T) {
		for _, status := range []order.Status{order.Placed, order.Paid, order.Processing, order.Cancelled} {
			o := orderInStatus(t, status)

			require.NoError(t, o.Cancel(changedAt))
			assert.Equal(t, order.Cancelled, o.Status())
			assert.Equal(t, changedAt, o.UpdatedAt())
			assert.Equal(t, createdAt, o.CreatedAt())
		}
	})

	t.Run("should leave shipped and completed orders unmodified", func(t *testing.T) {
		for _, status := range []order.Status{order.Shipped, order.Completed} {
			o := orderInStatus(t, status)

			err := o.Cancel(changedAt)

			require.ErrorIs(t, err, errs.ErrIllegalState)
			var stateErr *errs.IllegalStateError
			require.ErrorAs(t, err, &stateErr)
			assert.Equal(t, status, stateErr.State)
			assert.Equal(t, status, o.Status())
			assert.Equal(t, createdAt, o.UpdatedAt())
		}
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("should set exactly the requested status for every pair", func(t *testing.T) {
		for _, current := range order.Statuses() {
			for _, target := range order.Statuses() {
				o := orderInStatus(t, current)

				require.NoError(t, o.UpdateStatus(target, changedAt))
				assert.Equal(t, target, o.Status())
				assert.Equal(t, changedAt, o.UpdatedAt())
			}
		}
	})

	t.Run("should change nothing but status and updatedAt", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.AssignID(3))

		require.NoError(t, o.UpdateStatus(order.Shipped, changedAt))

		assert.Equal(t, int64(3), o.ID())
		assert.Equal(t, "acc-123", o.AccountID())
		assert.Equal(t, "69.98", o.TotalAmount().String())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "pmt-456", *o.PaymentID())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.ErrorIs(t, o.UpdateStatus(order.Status(99), changedAt), errs.ErrValueIsInvalid)
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, createdAt, o.UpdatedAt())
	})
}

func TestOrder_ExampleRoundTrip(t *testing.T) {
	price1, _ := kernel.MoneyFromString("29.99")
	price2, _ := kernel.MoneyFromString("10.00")
	i1, _ := order.NewItem("prod-1", 2, price1)
	i2, _ := order.NewItem("prod-2", 1, price2)

	o, err := order.NewOrder("acc-123", []order.Item{i1, i2}, "addr", nil, createdAt)

	require.NoError(t, err)
	assert.Equal(t, "69.98", o.TotalAmount().String())
	assert.Equal(t, order.Placed, o.Status())
}
