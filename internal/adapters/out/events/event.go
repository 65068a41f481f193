// Package events publishes OrderChanged notifications for committed order writes,
// either to a Kafka topic or, when no broker is configured, to the application log.
package events

import (
	"strconv"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderChangedEvent is the payload announced after an order is created or changed.
type OrderChangedEvent struct {
	EventID     string          `json:"eventId"`
	OrderID     int64           `json:"orderId"`
	AccountID   string          `json:"accountId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// NewOrderChangedEvent snapshots o. OccurredAt is the order's last update time.
func NewOrderChangedEvent(o *order.Order) OrderChangedEvent {
	return OrderChangedEvent{
		EventID:     uuid.NewString(),
		OrderID:     o.ID(),
		AccountID:   o.AccountID(),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount().Amount(),
		OccurredAt:  o.UpdatedAt(),
	}
}

// Key is the partitioning key; all events of one order land on the same partition.
func (e OrderChangedEvent) Key() string {
	return strconv.FormatInt(e.OrderID, 10)
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
