package queries

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var ErrGetUnassignedItemsQueryIsNotConstructed = errors.New(
	"GetUnassignedItemsQuery must be created via NewGetUnassignedItemsQuery constructor",
)

// GetUnassignedItemsQuery retrieves the claimable item queue for a merchant:
// pending items with no assigned merchant, excluding items this merchant
// previously rejected. Oldest orders first, so long-waiting items surface.
type GetUnassignedItemsQuery struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewGetUnassignedItemsQuery creates a claimable queue query for a merchant.
func NewGetUnassignedItemsQuery(merchantID kernel.UUID, page, pageSize int) (GetUnassignedItemsQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetUnassignedItemsQuery{}, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		return GetUnassignedItemsQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return GetUnassignedItemsQuery{
		merchantID: merchantID,
		page:       page,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedItemsQueryIsNotConstructed)
}

// MerchantID returns the merchant whose queue is requested.
func (q GetUnassignedItemsQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// Page returns the 1-based page number.
func (q GetUnassignedItemsQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetUnassignedItemsQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the row offset for the page.
func (q GetUnassignedItemsQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}
