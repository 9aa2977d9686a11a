package order

import (
	"errors"

	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery address snapshot taken at order time. It is a copy,
// not a live reference: if the customer later edits their saved address, the
// order's destination must not change retroactively.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	postalCode string
	phone      string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated address snapshot.
// Street, city, and phone are required; postal code is optional because rural
// construction sites frequently have none.
func NewAddress(street, city, postalCode, phone string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if phone == "" {
		return Address{}, errs.NewValueIsRequiredError("phone")
	}

	return Address{
		street:     street,
		city:       city,
		postalCode: postalCode,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the snapshot.
func (a Address) Street() string { return a.street }

// City returns the city of the snapshot.
func (a Address) City() string { return a.city }

// PostalCode returns the postal code, possibly empty.
func (a Address) PostalCode() string { return a.postalCode }

// Phone returns the contact phone for the delivery.
func (a Address) Phone() string { return a.phone }
