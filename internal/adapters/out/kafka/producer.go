// Package kafka publishes order change notifications to the order-changed
// topic for downstream consumers (notifications, analytics).
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"constructmart/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderChangedProducer implements ports.EventPublisher on a Kafka topic.
// Messages are keyed by order ID so all changes to one order land in the same
// partition and stay ordered.
type OrderChangedProducer struct {
	writer *kafka.Writer
}

// NewOrderChangedProducer creates a producer for the given brokers and topic.
func NewOrderChangedProducer(brokers []string, topic string) *OrderChangedProducer {
	return &OrderChangedProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishOrderChanged sends one order change notification.
func (p *OrderChangedProducer) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}

// Close flushes and releases the underlying connection.
func (p *OrderChangedProducer) Close() error {
	return p.writer.Close()
}
