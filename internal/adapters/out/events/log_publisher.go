package events

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// LogPublisher records OrderChanged events in the application log.
// It stands in for KafkaPublisher when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order_events")}
}

func (p *LogPublisher) PublishOrderChanged(ctx context.Context, orders ...*order.Order) error {
	for _, o := range orders {
		event := NewOrderChangedEvent(o)
		p.logger.InfoContext(ctx, "Order changed",
			"event_id", event.EventID,
			"order_id", event.OrderID,
			"account_id", event.AccountID,
			"status", event.Status,
			"total_amount", event.TotalAmount.StringFixed(2),
		)
	}
	return nil
}
