package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes OrderChanged events to a Kafka topic keyed by order id.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	})
}

func newKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishOrderChanged sends one message per order in a single batch.
func (p *KafkaPublisher) PublishOrderChanged(ctx context.Context, orders ...*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(orders))
	for _, o := range orders {
		event := NewOrderChangedEvent(o)
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal order changed event: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.Key()),
			Value: data,
			Time:  time.Now().UTC(),
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("write order changed events: %w", err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
