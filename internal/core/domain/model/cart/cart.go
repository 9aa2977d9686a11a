package cart

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/product"
	"constructmart/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrQuantityIsInvalid is returned for non-positive add quantities.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")
)

// Line is one product entry in a cart. It carries a price snapshot for
// display; checkout re-reads the catalog and recomputes everything
// server-side, so a stale cart price can never leak into an order.
type Line struct {
	ProductID   kernel.UUID
	ProductName string
	Unit        string
	UnitPrice   kernel.Money
	Quantity    int
}

// Total returns the line subtotal.
func (l Line) Total() kernel.Money {
	return l.UnitPrice.MulInt(l.Quantity)
}

// Cart is an in-memory shopping cart. Lines keep insertion order; adding a
// product already in the cart increments its line instead of appending a
// duplicate. The cart is a client-session convenience: it is never persisted
// server-side, and nothing it holds is authoritative.
type Cart struct {
	lines []Line

	isConstructed bool
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{isConstructed: true}
}

// Validate ensures the Cart was created through the constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts a quantity of a product into the cart. Adding a product already in
// the cart increments its line, and the resulting line quantity is checked
// against available stock: a request that exceeds stock is rejected with an
// InsufficientStockError naming the requested and available quantities, and
// the cart is left exactly as it was. Inactive products are refused.
func (c *Cart) Add(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	if !p.IsActive() {
		return product.ErrProductIsInactive
	}

	idx := c.lineIndex(p.ID())
	current := 0
	if idx >= 0 {
		current = c.lines[idx].Quantity
	}

	requested := current + quantity
	if requested > p.StockQuantity() {
		return errs.NewInsufficientStockError([]errs.StockShortage{{
			ProductID: p.ID().String(),
			Requested: requested,
			Available: p.StockQuantity(),
		}})
	}

	if idx >= 0 {
		c.lines[idx].Quantity = requested
		return nil
	}
	c.lines = append(c.lines, Line{
		ProductID:   p.ID(),
		ProductName: p.Name(),
		Unit:        p.Unit(),
		UnitPrice:   p.Price(),
		Quantity:    requested,
	})
	return nil
}

// UpdateQuantity sets a line's quantity. A zero or negative quantity removes
// the line; a quantity beyond available stock is rejected with an
// InsufficientStockError and the line keeps its previous quantity. Updating a
// product not in the cart is a not-found error.
func (c *Cart) UpdateQuantity(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	idx := c.lineIndex(p.ID())
	if idx < 0 {
		return errs.NewObjectNotFoundError("cartLine", p.ID().String())
	}

	if quantity <= 0 {
		c.removeAt(idx)
		return nil
	}

	if quantity > p.StockQuantity() {
		return errs.NewInsufficientStockError([]errs.StockShortage{{
			ProductID: p.ID().String(),
			Requested: quantity,
			Available: p.StockQuantity(),
		}})
	}

	c.lines[idx].Quantity = quantity
	return nil
}

// Remove deletes a product's line from the cart. Removing a product that is
// not in the cart is a no-op.
func (c *Cart) Remove(productID kernel.UUID) {
	if idx := c.lineIndex(productID); idx >= 0 {
		c.removeAt(idx)
	}
}

// Subtotal returns the sum of line totals. Pure: same lines, same result.
func (c *Cart) Subtotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.Total())
	}
	return total
}

func (c *Cart) lineIndex(productID kernel.UUID) int {
	for i, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}
