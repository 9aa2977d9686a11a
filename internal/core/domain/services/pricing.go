package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/core/domain/model/settings"
	"constructmart/internal/pkg/errs"
)

// ErrPricingPolicyIsNotConstructed is returned when a PricingPolicy was not
// created via NewPricingPolicy.
var ErrPricingPolicyIsNotConstructed = errors.New(
	"PricingPolicy must be created via NewPricingPolicy constructor")

// ErrTaxRateIsInvalid is returned for tax rates outside [0, 1).
var ErrTaxRateIsInvalid = errs.NewValueIsInvalidError("tax rate must be in [0, 1)")

// Quote is a server-computed monetary breakdown. All amounts are rounded to
// currency precision; Total is always exactly the sum of the other four.
type Quote struct {
	Subtotal       kernel.Money
	Tax            kernel.Money
	DeliveryCharge kernel.Money
	PlatformFee    kernel.Money
	Total          kernel.Money
}

// Totals converts the quote into order totals. Cannot fail: the quote is
// built sum-first, so the composition invariant holds by construction.
func (q Quote) Totals() (order.Totals, error) {
	return order.NewTotals(q.Subtotal, q.Tax, q.DeliveryCharge, q.PlatformFee, q.Total)
}

// PricingPolicy is the domain service that computes all order amounts.
// It is the only place prices are composed: checkout, the quote endpoint, and
// tests all go through Quote, so client-supplied amounts can never influence
// what an order costs.
//
// The policy values come from platform settings:
//   - taxRate: fraction applied to the subtotal, e.g. 0.18
//   - deliveryFee: flat charge, waived at or above freeDeliveryThreshold
//   - platformFee: flat marketplace charge per order
//   - minimumOrderValue: smallest accepted subtotal
type PricingPolicy struct {
	taxRate               decimal.Decimal
	deliveryFee           kernel.Money
	freeDeliveryThreshold kernel.Money
	platformFee           kernel.Money
	minimumOrderValue     kernel.Money

	isConstructed bool
}

// NewPricingPolicy creates a pricing policy from platform settings.
func NewPricingPolicy(
	taxRate decimal.Decimal,
	deliveryFee kernel.Money,
	freeDeliveryThreshold kernel.Money,
	platformFee kernel.Money,
	minimumOrderValue kernel.Money,
) (PricingPolicy, error) {
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return PricingPolicy{}, ErrTaxRateIsInvalid
	}

	return PricingPolicy{
		taxRate:               taxRate,
		deliveryFee:           deliveryFee,
		freeDeliveryThreshold: freeDeliveryThreshold,
		platformFee:           platformFee,
		minimumOrderValue:     minimumOrderValue,
		isConstructed:         true,
	}, nil
}

// PolicyFromSettings builds the pricing policy from the platform settings row.
func PolicyFromSettings(s settings.Settings) (PricingPolicy, error) {
	if err := s.Validate(); err != nil {
		return PricingPolicy{}, err
	}
	return NewPricingPolicy(
		s.TaxRate(), s.DeliveryFee(), s.FreeDeliveryThreshold(), s.PlatformFee(), s.MinimumOrderValue())
}

// Validate ensures the policy was created through the constructor.
func (p PricingPolicy) Validate() error {
	if !p.isConstructed {
		return ErrPricingPolicyIsNotConstructed
	}
	return nil
}

// MinimumOrderValue returns the smallest accepted subtotal.
func (p PricingPolicy) MinimumOrderValue() kernel.Money {
	return p.minimumOrderValue
}

// Quote computes the full breakdown for a subtotal:
//
//	tax            = subtotal * taxRate, rounded to currency precision
//	deliveryCharge = deliveryFee, or zero at/above the free-delivery threshold
//	platformFee    = flat
//	total          = subtotal + tax + deliveryCharge + platformFee
//
// Quote is pure. It does not check the minimum order value; checkout calls
// ValidateMinimum separately so the quote endpoint can still price a
// below-minimum cart for display.
func (p PricingPolicy) Quote(subtotal kernel.Money) (Quote, error) {
	if err := p.Validate(); err != nil {
		return Quote{}, err
	}

	tax := subtotal.MulRate(p.taxRate)

	deliveryCharge := p.deliveryFee
	if !subtotal.IsLessThan(p.freeDeliveryThreshold) {
		deliveryCharge = kernel.ZeroMoney()
	}

	total := subtotal.Add(tax).Add(deliveryCharge).Add(p.platformFee)

	return Quote{
		Subtotal:       subtotal,
		Tax:            tax,
		DeliveryCharge: deliveryCharge,
		PlatformFee:    p.platformFee,
		Total:          total,
	}, nil
}

// ValidateMinimum checks the subtotal against the minimum order value.
// A subtotal exactly at the minimum passes; one cent below fails with a
// MinimumOrderNotMetError carrying both amounts.
func (p PricingPolicy) ValidateMinimum(subtotal kernel.Money) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if subtotal.IsLessThan(p.minimumOrderValue) {
		return errs.NewMinimumOrderNotMetError(subtotal.String(), p.minimumOrderValue.String())
	}
	return nil
}

// SubtotalOf sums item line totals using their price snapshots. Pure.
func SubtotalOf(items []*order.Item) kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice())
	}
	return subtotal
}
