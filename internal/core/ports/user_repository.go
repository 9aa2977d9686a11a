package ports

import (
	"context"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for marketplace accounts.
type UserRepository interface {
	// Add persists a new account. Fails on a duplicate email.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an account by its login email.
	// Returns ObjectNotFoundError when no account uses the email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
