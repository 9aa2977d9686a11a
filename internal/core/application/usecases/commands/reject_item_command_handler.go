package commands

import (
	"context"
	"log/slog"

	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/core/ports"
)

// RejectItemCommandHandler handles merchant rejections of pending items.
// A rejection does not change the item status: it records the merchant so the
// item never resurfaces in their queue, and leaves it claimable by everyone
// else. There is no limit on how many merchants may decline an item.
type RejectItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	log        *slog.Logger
}

// NewRejectItemCommandHandler creates a handler for merchant rejection operations.
func NewRejectItemCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	log *slog.Logger,
) RejectItemCommandHandler {
	return RejectItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

// Handle processes the rejection command.
func (h *RejectItemCommandHandler) Handle(ctx context.Context, cmd RejectItemCommand) error {
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

	merchant := order.Actor{ID: cmd.MerchantID(), Role: order.ActorRoleMerchant}
	if err = aggregate.RejectItem(cmd.ItemID(), merchant); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	item, err := aggregate.Item(cmd.ItemID())
	if err == nil {
		publishOrderChanged(ctx, h.publisher, h.log, aggregate, order.EventItemRejected, item, merchant)
	}

	return nil
}
