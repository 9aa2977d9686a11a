package ports

import (
	"context"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new catalog product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists price and stock changes. Stock decrements during
	// checkout run inside the checkout transaction so concurrent orders
	// cannot oversell.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBatch retrieves products for the given identifiers, locking the rows
	// for update when called inside a transaction. Missing identifiers are
	// reported as ObjectNotFoundError.
	GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
