package queries

import (
	"errors"
	"time"

	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var ErrGetStaleItemsQueryIsNotConstructed = errors.New(
	"GetStaleItemsQuery must be created via NewGetStaleItemsQuery constructor",
)

// GetStaleItemsQuery finds pending items no merchant has claimed within the
// given age. The background sweep uses it to surface orders going nowhere.
type GetStaleItemsQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleItemsQuery creates a stale item query for the given age threshold.
func NewGetStaleItemsQuery(olderThan time.Duration) (GetStaleItemsQuery, error) {
	if olderThan <= 0 {
		return GetStaleItemsQuery{}, errs.NewValueIsInvalidError("olderThan must be positive")
	}

	return GetStaleItemsQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleItemsQueryIsNotConstructed)
}

// OlderThan returns the minimum age for an item to count as stale.
func (q GetStaleItemsQuery) OlderThan() time.Duration {
	return q.olderThan
}
