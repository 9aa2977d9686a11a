package queries

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// maxPageSize bounds how many orders one page may return.
const maxPageSize = 100

// defaultPageSize is used when the client does not ask for a size.
const defaultPageSize = 20

// ListOrdersQuery retrieves a page of order summaries scoped to the actor:
// customers get their own orders, merchants get orders containing items they
// hold, admins get all orders.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	actorRole string
	page      int
	pageSize  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. Page numbers start at 1;
// a zero pageSize falls back to the default.
func NewListOrdersQuery(actorID kernel.UUID, actorRole string, page, pageSize int) (ListOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return ListOrdersQuery{
		actorID:   actorID,
		actorRole: actorRole,
		page:      page,
		pageSize:  pageSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ActorID returns the requesting principal.
func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the requesting principal's role.
func (q ListOrdersQuery) ActorRole() string {
	return q.actorRole
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the row offset for the page.
func (q ListOrdersQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}
