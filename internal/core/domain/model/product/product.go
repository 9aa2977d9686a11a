package product

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrStockIsNegative is returned for negative stock quantities.
	ErrStockIsNegative = errs.NewValueIsInvalidError("stock quantity must not be negative")

	// ErrQuantityIsInvalid is returned for non-positive reserve/release amounts.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")

	// ErrProductIsInactive is returned when reserving stock of a delisted product.
	ErrProductIsInactive = errs.NewValueIsInvalidError("product is inactive")
)

// Product is a catalog entry for a construction material. The catalog is the
// authoritative source of prices and stock: order items snapshot from it at
// checkout, and stock is decremented in the same transaction that creates the
// order.
type Product struct {
	id            kernel.UUID
	name          string
	description   string
	category      string
	unit          string
	price         kernel.Money
	stockQuantity int
	active        bool

	isConstructed bool
}

// NewProduct creates an active catalog product.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	category string,
	unit string,
	price kernel.Money,
	stockQuantity int,
) (*Product, error) {
	p := &Product{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnit(unit),
		p.setStock(stockQuantity),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.category = category
	p.price = price
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	category string,
	unit string,
	price kernel.Money,
	stockQuantity int,
	active bool,
) (*Product, error) {
	p, err := NewProduct(id, name, description, category, unit, price, stockQuantity)
	if err != nil {
		return nil, err
	}
	p.active = active
	return p, nil
}

// Validate ensures the Product was constructed through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's catalog identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the display name, e.g. "OPC 53 Cement 50kg".
func (p *Product) Name() string { return p.name }

// Description returns the free-text description.
func (p *Product) Description() string { return p.description }

// Category returns the catalog category, e.g. "cement".
func (p *Product) Category() string { return p.category }

// Unit returns the sales unit, e.g. "bag" or "ton".
func (p *Product) Unit() string { return p.unit }

// Price returns the current catalog price per unit.
func (p *Product) Price() kernel.Money { return p.price }

// StockQuantity returns the units currently available.
func (p *Product) StockQuantity() int { return p.stockQuantity }

// IsActive reports whether the product is listed for sale.
func (p *Product) IsActive() bool { return p.active }

// HasStock reports whether the requested quantity is available.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && quantity <= p.stockQuantity
}

// ReserveStock decrements available stock for a checkout. The caller reports
// shortages across the whole order; this method only guards a single product,
// returning the available quantity through StockShortage on failure.
func (p *Product) ReserveStock(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	if !p.active {
		return ErrProductIsInactive
	}
	if quantity > p.stockQuantity {
		return errs.NewInsufficientStockError([]errs.StockShortage{{
			ProductID: p.id.String(),
			Requested: quantity,
			Available: p.stockQuantity,
		}})
	}

	p.stockQuantity -= quantity
	return nil
}

// ReleaseStock returns reserved units to stock, e.g. when an unshipped item is
// cancelled.
func (p *Product) ReleaseStock(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	p.stockQuantity += quantity
	return nil
}

// UpdatePrice changes the catalog price. Existing order items keep their
// snapshot; only future checkouts see the new price.
func (p *Product) UpdatePrice(price kernel.Money) {
	p.price = price
}

// Deactivate delists the product. Stock stays recorded but can no longer be
// reserved.
func (p *Product) Deactivate() {
	p.active = false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	p.unit = unit
	return nil
}

func (p *Product) setStock(quantity int) error {
	if quantity < 0 {
		return ErrStockIsNegative
	}
	p.stockQuantity = quantity
	return nil
}
