package commands

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/guard"
)

var ErrRejectItemCommandIsNotConstructed = errors.New(
	"RejectItemCommand must be created via NewRejectItemCommand constructor",
)

// RejectItemCommand represents a merchant declining a pending order item.
// The item stays pending and claimable by other merchants; the declining
// merchant is excluded from claiming it later.
type RejectItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	itemID     kernel.UUID
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectItemCommand creates a command for a merchant rejection.
func NewRejectItemCommand(orderID, itemID, merchantID kernel.UUID) (RejectItemCommand, error) {
	cmd := RejectItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setMerchantID(merchantID),
	); err != nil {
		return RejectItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectItemCommand) Validate() error {
	return c.guard.Validate(ErrRejectItemCommandIsNotConstructed)
}

// OrderID returns the order containing the item.
func (c RejectItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item being declined.
func (c RejectItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// MerchantID returns the declining merchant.
func (c RejectItemCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

func (c *RejectItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *RejectItemCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}
