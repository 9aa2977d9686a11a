package kernel

import (
	"constructmart/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyPrecision is the number of decimal places every monetary amount is
// rounded to. All arithmetic rounds at each step, so composed totals never
// accumulate sub-cent drift.
const moneyPrecision = 2

// ErrMoneyIsNegative is returned when constructing a Money from a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object for monetary amounts. It wraps shopspring/decimal
// so order totals obey exact decimal arithmetic instead of float rounding.
//
// Money is immutable: every operation returns a new value rounded to two
// decimal places. The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are rejected: nothing in the order model owes the customer.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount.Round(moneyPrecision)}, nil
}

// MoneyFromString parses a Money from its decimal string form, e.g. "99.90".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(moneyPrecision)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(moneyPrecision)}
}

// MulRate returns the amount multiplied by a fractional rate (e.g. a tax rate
// of 0.18), rounded to currency precision.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(moneyPrecision)}
}

// IsLessThan reports whether m is strictly below other.
func (m Money) IsLessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount with exactly two decimal places, e.g. "100.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPrecision)
}
