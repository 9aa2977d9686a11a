package queries

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var ErrCalculatePricingQueryIsNotConstructed = errors.New(
	"CalculatePricingQuery must be created via NewCalculatePricingQuery constructor",
)

// PricingLine is one product/quantity pair to price.
type PricingLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CalculatePricingQuery prices a prospective order without creating anything.
// Clients call this to show cart totals; the amounts are computed by the same
// pricing policy checkout uses, so the preview can never disagree with the
// eventual order.
type CalculatePricingQuery struct { //nolint:recvcheck //using for validation
	lines []PricingLine

	guard guard.ConstructorGuard
}

// NewCalculatePricingQuery creates a pricing preview query.
func NewCalculatePricingQuery(lines []PricingLine) (CalculatePricingQuery, error) {
	if len(lines) == 0 {
		return CalculatePricingQuery{}, errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return CalculatePricingQuery{}, err
		}
		if line.Quantity <= 0 {
			return CalculatePricingQuery{}, errs.NewValueIsInvalidError("quantity must be greater than 0")
		}
	}

	return CalculatePricingQuery{
		lines: lines,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculatePricingQuery) Validate() error {
	return q.guard.Validate(ErrCalculatePricingQueryIsNotConstructed)
}

// Lines returns the product/quantity pairs to price.
func (q CalculatePricingQuery) Lines() []PricingLine {
	return q.lines
}
