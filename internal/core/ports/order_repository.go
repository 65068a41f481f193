// Package ports defines the contracts between the application core and its adapters.
// The core depends only on these interfaces; adapters under internal/adapters implement them.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are always stored and loaded together with their order.
type OrderRepository interface {
	// Add inserts a new order with its items and assigns the generated id to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Items are never rewritten.
	// Returns an errs.ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns an errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByAccount retrieves the orders of an account, optionally restricted to one status.
	// An account without orders yields an empty slice, not an error.
	GetByAccount(ctx context.Context, accountID string, status *order.Status) ([]*order.Order, error)
}
