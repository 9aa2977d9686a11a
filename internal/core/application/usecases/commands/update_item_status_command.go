package commands

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/pkg/guard"
)

var ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
	"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
)

// UpdateItemStatusCommand represents a status transition request for one
// order item: a merchant moving it through fulfillment, a customer or
// merchant cancelling it, or an admin marking it terminally rejected.
type UpdateItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	target  order.ItemStatus
	note    string
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a status transition command.
// The target status and actor role are parsed here; whether the transition is
// allowed is the aggregate's decision.
func NewUpdateItemStatusCommand(
	orderID, itemID kernel.UUID,
	targetStatus string,
	note string,
	actorID kernel.UUID,
	actorRole string,
) (UpdateItemStatusCommand, error) {
	cmd := UpdateItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setTarget(targetStatus),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

// OrderID returns the order containing the item.
func (c UpdateItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item being transitioned.
func (c UpdateItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Target returns the requested status.
func (c UpdateItemStatusCommand) Target() order.ItemStatus {
	return c.target
}

// Note returns the optional note recorded with the transition.
func (c UpdateItemStatusCommand) Note() string {
	return c.note
}

// Actor returns the principal requesting the transition.
func (c UpdateItemStatusCommand) Actor() order.Actor {
	return c.actor
}

func (c *UpdateItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemStatusCommand) setTarget(targetStatus string) error {
	target, err := order.ItemStatusFromString(targetStatus)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateItemStatusCommand) setActor(actorID kernel.UUID, actorRole string) error {
	actor, err := order.NewActor(actorID, order.ActorRole(actorRole))
	if err != nil {
		return err
	}

	c.actor = actor
	return nil
}
