package queries

import (
	"errors"

	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves a page of active catalog products, optionally
// filtered by category.
type ListProductsQuery struct { //nolint:recvcheck //using for validation
	category string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a catalog listing query. An empty category
// means all categories.
func NewListProductsQuery(category string, page, pageSize int) (ListProductsQuery, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return ListProductsQuery{
		category: category,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Category returns the optional category filter.
func (q ListProductsQuery) Category() string {
	return q.category
}

// Page returns the 1-based page number.
func (q ListProductsQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListProductsQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the row offset for the page.
func (q ListProductsQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}
