package order

import (
	"fmt"

	"constructmart/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for the order.
// Only the method is recorded; payment capture is outside the order core.
type PaymentMethod string

const (
	// PaymentCashOnDelivery settles in cash when the last item is delivered.
	PaymentCashOnDelivery PaymentMethod = "cod"

	// PaymentOnline settles through the online payment flow.
	PaymentOnline PaymentMethod = "online"
)

// PaymentMethodFromString parses a wire-format payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCashOnDelivery, PaymentOnline:
		return PaymentMethod(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid", fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks the payment method is one of the known values.
func (p PaymentMethod) Validate() error {
	_, err := PaymentMethodFromString(string(p))
	return err
}

// String returns the wire-format name.
func (p PaymentMethod) String() string {
	return string(p)
}
