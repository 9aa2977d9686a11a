package commands

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLinesAreRequired  = errs.NewValueIsRequiredError("lines")
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")
)

// OrderLine is one requested product/quantity pair at checkout. The client
// sends only these two values; names and prices come from the catalog
// server-side.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a checkout request. The command validates the
// request shape only; stock, minimum order value, and the delivery address
// are checked by the handler in the documented order so clients get the
// highest-priority failure first.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.UUID
	lines          []OrderLine
	street         string
	city           string
	postalCode     string
	phone          string
	paymentMethod  order.PaymentMethod
	deliveryNotes  string
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command.
// Validates that the customer ID is set, at least one line is present, every
// line has a valid product ID and a positive quantity, and the payment method
// parses. Address content is deliberately not validated here.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	lines []OrderLine,
	street, city, postalCode, phone string,
	paymentMethod string,
	deliveryNotes string,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.street = street
	cmd.city = city
	cmd.postalCode = postalCode
	cmd.phone = phone
	cmd.deliveryNotes = deliveryNotes
	cmd.idempotencyKey = idempotencyKey

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested product/quantity pairs.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

// Street returns the delivery street line.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// City returns the delivery city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// PostalCode returns the delivery postal code, possibly empty.
func (c CreateOrderCommand) PostalCode() string {
	return c.postalCode
}

// Phone returns the delivery contact phone.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// PaymentMethod returns the parsed payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// DeliveryNotes returns the optional delivery instructions.
func (c CreateOrderCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

// IdempotencyKey returns the client-supplied replay key, possibly empty.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	parsed, err := order.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return err
	}

	c.paymentMethod = parsed
	return nil
}
