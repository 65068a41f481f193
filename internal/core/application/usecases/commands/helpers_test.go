package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	placedAt  = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	changedAt = placedAt.Add(2 * time.Hour)
)

func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	item, err := order.NewItem("prod-1", 2, price)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id,
		"acc-123",
		[]order.Item{item},
		order.ComputeTotal([]order.Item{item}),
		"1 Main St",
		nil,
		status,
		placedAt,
		placedAt,
	)
	require.NoError(t, err)
	return o
}
