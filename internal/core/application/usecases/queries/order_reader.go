// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never open a transaction.
package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderReader is the read half of the order repository used by query handlers.
type OrderReader interface {
	Get(ctx context.Context, id int64) (*order.Order, error)
	GetByAccount(ctx context.Context, accountID string, status *order.Status) ([]*order.Order, error)
}
