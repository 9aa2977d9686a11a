package ports

import (
	"context"
	"time"
)

// OrderChangedEvent is the message published to the order-changed topic after
// every committed order mutation. EventType carries the lifecycle event name
// (order_created, item_assigned, ...).
type OrderChangedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	EventType   string    `json:"event_type"`
	ItemID      string    `json:"item_id,omitempty"`
	ItemStatus  string    `json:"item_status,omitempty"`
	OrderStatus string    `json:"order_status"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher publishes order change notifications for downstream
// consumers (notifications, analytics). Publishing happens after commit:
// a lost event is acceptable, a phantom event is not.
type EventPublisher interface {
	// PublishOrderChanged sends one order change notification.
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error

	// Close flushes and releases the underlying connection.
	Close() error
}
