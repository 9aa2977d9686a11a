package ports

import (
	"context"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Read-side listings use dedicated query handlers; this interface carries only
// what commands need.
type OrderRepository interface {
	// Add persists a new order aggregate with its items, status history, and
	// lifecycle log. Fails on a duplicate order number or idempotency key.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, fully
	// rehydrated including items, history, and lifecycle entries.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIdempotencyKey retrieves the order a customer previously created
	// with the given idempotency key. Returns ObjectNotFoundError when the key
	// was never used.
	GetByIdempotencyKey(ctx context.Context, customerID kernel.UUID, key string) (*order.Order, error)

	// ClaimItem atomically assigns a pending, unassigned item to a merchant
	// using a guarded update. Exactly one concurrent caller wins; the rest get
	// a ConflictError. The aggregate-level Assign must already have been
	// applied in memory so history and lifecycle rows are written alongside.
	ClaimItem(ctx context.Context, orderID, itemID, merchantID kernel.UUID) error
}
