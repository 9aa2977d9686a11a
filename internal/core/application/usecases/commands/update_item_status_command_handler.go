package commands

import (
	"context"
	"log/slog"

	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/core/ports"
)

// UpdateItemStatusCommandHandler handles all non-claim item transitions:
// forward fulfillment moves, cancellations, and the admin-only terminal
// rejection. Cancelling an unshipped item returns its units to catalog stock
// in the same transaction.
type UpdateItemStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.EventPublisher
	log        *slog.Logger
}

// NewUpdateItemStatusCommandHandler creates a handler for item status transitions.
func NewUpdateItemStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.EventPublisher,
	log *slog.Logger,
) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

// Handle processes the transition command. Authorization and transition
// legality live in the aggregate; an invalid request mutates nothing.
func (h *UpdateItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateItemStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	eventType := order.EventItemStatusChanged
	switch cmd.Target() {
	case order.ItemStatusRejected:
		eventType = order.EventItemRejected
		if err = aggregate.MarkItemRejected(cmd.ItemID(), cmd.Actor()); err != nil {
			return err
		}
	case order.ItemStatusCancelled:
		eventType = order.EventItemCancelled
		if err = aggregate.AdvanceItem(cmd.ItemID(), cmd.Target(), cmd.Note(), cmd.Actor()); err != nil {
			return err
		}
		if err = h.releaseStock(ctx, uow, aggregate, cmd); err != nil {
			return err
		}
	default:
		if err = aggregate.AdvanceItem(cmd.ItemID(), cmd.Target(), cmd.Note(), cmd.Actor()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	item, err := aggregate.Item(cmd.ItemID())
	if err == nil {
		publishOrderChanged(ctx, h.publisher, h.log, aggregate, eventType, item, cmd.Actor())
	}

	return nil
}

// releaseStock returns a cancelled item's units to the catalog.
func (h *UpdateItemStatusCommandHandler) releaseStock(
	ctx context.Context,
	uow FulfillmentUoW,
	aggregate *order.Order,
	cmd UpdateItemStatusCommand,
) error {
	item, err := aggregate.Item(cmd.ItemID())
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, item.ProductID())
	if err != nil {
		return err
	}

	if err = p.ReleaseStock(item.Quantity()); err != nil {
		return err
	}
	return productRepo.Update(ctx, p)
}
