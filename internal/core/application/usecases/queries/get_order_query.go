package queries

import (
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items, status history, and
// lifecycle log. The requesting actor scopes visibility: customers see only
// their own orders, merchants see orders containing items they hold or
// pending items they could claim, admins see everything.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order on behalf of an actor.
func NewGetOrderQuery(orderID, actorID kernel.UUID, actorRole string) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:   orderID,
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the requesting principal.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the requesting principal's role.
func (q GetOrderQuery) ActorRole() string {
	return q.actorRole
}
