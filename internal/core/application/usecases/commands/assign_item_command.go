package commands

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/guard"
)

var ErrAssignItemCommandIsNotConstructed = errors.New(
	"AssignItemCommand must be created via NewAssignItemCommand constructor",
)

// AssignItemCommand represents a merchant claiming a pending order item.
// When several merchants race for the same item, exactly one claim succeeds;
// the rest receive a conflict.
type AssignItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	itemID     kernel.UUID
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignItemCommand creates a command for a merchant claim.
// Validates that all three identifiers are set.
func NewAssignItemCommand(orderID, itemID, merchantID kernel.UUID) (AssignItemCommand, error) {
	cmd := AssignItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setMerchantID(merchantID),
	); err != nil {
		return AssignItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignItemCommand) Validate() error {
	return c.guard.Validate(ErrAssignItemCommandIsNotConstructed)
}

// OrderID returns the order containing the item.
func (c AssignItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item being claimed.
func (c AssignItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// MerchantID returns the claiming merchant.
func (c AssignItemCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

func (c *AssignItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AssignItemCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}
