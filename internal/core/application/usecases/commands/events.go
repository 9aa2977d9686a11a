package commands

import (
	"context"
	"log/slog"
	"time"

	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/core/ports"
)

// publishOrderChanged emits one order-changed event after a committed
// mutation. Publishing is best effort: the transaction has already committed,
// so a broker failure is logged and swallowed rather than turned into a
// client-facing error.
func publishOrderChanged(
	ctx context.Context,
	publisher ports.EventPublisher,
	log *slog.Logger,
	o *order.Order,
	eventType string,
	item *order.Item,
	actor order.Actor,
) {
	if publisher == nil {
		return
	}

	status, err := o.Status()
	if err != nil {
		status = order.OrderStatusUnknown
	}

	event := ports.OrderChangedEvent{
		OrderID:     o.ID().String(),
		OrderNumber: o.OrderNumber(),
		EventType:   eventType,
		OrderStatus: status.String(),
		ActorID:     actor.ID.String(),
		ActorRole:   string(actor.Role),
		OccurredAt:  time.Now().UTC(),
	}
	if item != nil {
		event.ItemID = item.ID().String()
		event.ItemStatus = item.Status().String()
	}

	if err := publisher.PublishOrderChanged(ctx, event); err != nil && log != nil {
		log.WarnContext(ctx, "publish order changed event failed",
			slog.String("order_id", event.OrderID),
			slog.String("event_type", eventType),
			slog.Any("error", err))
	}
}
