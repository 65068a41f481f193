package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func item(t *testing.T, productID string, quantity int, price string) order.Item {
	t.Helper()
	i, err := order.NewItem(productID, quantity, money(t, price))
	require.NoError(t, err)
	return i
}

func TestSubtotal(t *testing.T) {
	price := money(t, "29.99")
	quantity := 2

	t.Run("should multiply quantity by price", func(t *testing.T) {
		assert.Equal(t, "59.98", order.Subtotal(&quantity, &price).String())
	})

	t.Run("should be zero when quantity is absent", func(t *testing.T) {
		assert.True(t, order.Subtotal(nil, &price).IsZero())
	})

	t.Run("should be zero when price is absent", func(t *testing.T) {
		assert.True(t, order.Subtotal(&quantity, nil).IsZero())
	})

	t.Run("should be zero when both are absent", func(t *testing.T) {
		assert.True(t, order.Subtotal(nil, nil).IsZero())
	})
}

func TestComputeTotal(t *testing.T) {
	t.Run("should sum price times quantity exactly", func(t *testing.T) {
		items := []order.Item{
			item(t, "prod-1", 2, "29.99"),
			item(t, "prod-2", 1, "10.00"),
		}

		assert.True(t, order.ComputeTotal(items).IsEqual(money(t, "69.98")))
	})

	t.Run("should not depend on item order", func(t *testing.T) {
		items := []order.Item{
			item(t, "a", 3, "0.10"),
			item(t, "b", 7, "19.95"),
			item(t, "c", 1, "0.01"),
			item(t, "d", 11, "3.33"),
		}
		reversed := []order.Item{items[3], items[2], items[1], items[0]}
		rotated := []order.Item{items[2], items[0], items[3], items[1]}

		total := order.ComputeTotal(items)
		assert.Equal(t, "176.59", total.String())
		assert.True(t, total.IsEqual(order.ComputeTotal(reversed)))
		assert.True(t, total.IsEqual(order.ComputeTotal(rotated)))
	})

	t.Run("should equal the sum of subtotals", func(t *testing.T) {
		items := []order.Item{
			item(t, "a", 5, "0.07"),
			item(t, "b", 2, "1234.56"),
		}

		sum := kernel.ZeroMoney()
		for _, i := range items {
			sum = sum.Add(i.Subtotal())
		}
		assert.True(t, sum.IsEqual(order.ComputeTotal(items)))
	})

	t.Run("should be zero for no items", func(t *testing.T) {
		assert.True(t, order.ComputeTotal(nil).IsZero())
	})
}
