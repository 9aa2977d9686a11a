package commands

import (
	"context"
	"log/slog"

	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/core/ports"
)

// AssignItemCommandHandler handles merchant claims on pending items.
//
// The claim is enforced twice: the aggregate rejects claims on held items in
// memory, and the repository backs it with an atomic guarded update so two
// transactions racing for the same item cannot both win. The loser gets a
// ConflictError, which the transport maps to 409.
type AssignItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	log        *slog.Logger
}

// NewAssignItemCommandHandler creates a handler for merchant claim operations.
func NewAssignItemCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	log *slog.Logger,
) AssignItemCommandHandler {
	return AssignItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

// Handle processes the claim command.
func (h *AssignItemCommandHandler) Handle(ctx context.Context, cmd AssignItemCommand) error {
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
	if err = aggregate.AssignItem(cmd.ItemID(), merchant); err != nil {
		return err
	}

	// The guarded update is the race gate: it only succeeds if the row is
	// still pending and unassigned.
	if err = orderRepo.ClaimItem(ctx, cmd.OrderID(), cmd.ItemID(), cmd.MerchantID()); err != nil {
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
		publishOrderChanged(ctx, h.publisher, h.log, aggregate, order.EventItemAssigned, item, merchant)
	}

	return nil
}
