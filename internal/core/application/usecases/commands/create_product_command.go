package commands

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents an admin adding a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name          string
	description   string
	category      string
	unit          string
	price         kernel.Money
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a catalog product command.
func NewCreateProductCommand(
	name, description, category, unit string,
	price kernel.Money,
	stockQuantity int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setUnit(unit),
		cmd.setStock(stockQuantity),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.description = description
	cmd.category = category
	cmd.price = price

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the free-text description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Category returns the catalog category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Unit returns the sales unit.
func (c CreateProductCommand) Unit() string {
	return c.unit
}

// Price returns the price per unit.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// StockQuantity returns the initial stock.
func (c CreateProductCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}

	c.unit = unit
	return nil
}

func (c *CreateProductCommand) setStock(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidError("stock quantity must not be negative")
	}

	c.stockQuantity = stockQuantity
	return nil
}
