package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other systems.
type OrderEventPublisher interface {
	// PublishOrderChanged emits one OrderChanged event per order.
	PublishOrderChanged(ctx context.Context, orders ...*order.Order) error
}
