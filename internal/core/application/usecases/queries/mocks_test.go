package queries_test

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetByAccount(
	ctx context.Context,
	accountID string,
	status *order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, accountID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// noopTracker satisfies the repository's aggregate tracker in integration suites.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ int64, _ any) {}

var placedAt = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func newOrder(t require.TestingT, accountID string) *order.Order {
	price, err := kernel.MoneyFromString("4.25")
	require.NoError(t, err)
	item, err := order.NewItem("prod-1", 2, price)
	require.NoError(t, err)
	o, err := order.NewOrder(accountID, []order.Item{item}, "1 Main St", nil, placedAt)
	require.NoError(t, err)
	return o
}
