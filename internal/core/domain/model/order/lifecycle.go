package order

import (
	"time"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
)

// ActorRole identifies the kind of principal that triggered a lifecycle event.
type ActorRole string

const (
	ActorRoleCustomer ActorRole = "customer"
	ActorRoleMerchant ActorRole = "merchant"
	ActorRoleAdmin    ActorRole = "admin"
	ActorRoleSystem   ActorRole = "system"
)

// Actor is the principal performing an order mutation. It is recorded on every
// lifecycle entry and used for authorization checks on item transitions.
type Actor struct {
	ID   kernel.UUID
	Role ActorRole
}

// NewActor creates an actor with a validated identity.
func NewActor(id kernel.UUID, role ActorRole) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	switch role {
	case ActorRoleCustomer, ActorRoleMerchant, ActorRoleAdmin, ActorRoleSystem:
	default:
		return Actor{}, errs.NewValueIsInvalidError("actor role")
	}
	return Actor{ID: id, Role: role}, nil
}

// IsAdmin reports whether the actor may bypass merchant ownership checks.
func (a Actor) IsAdmin() bool {
	return a.Role == ActorRoleAdmin
}

// Lifecycle event types. These are stable wire values: clients and the
// order-changed Kafka topic both key off them.
const (
	EventOrderCreated      = "order_created"
	EventItemAssigned      = "item_assigned"
	EventItemRejected      = "item_rejected"
	EventItemStatusChanged = "item_status_changed"
	EventItemCancelled     = "item_cancelled"
)

// StatusHistoryEntry is one append-only record of an item status change.
// Entries are ordered by timestamp, ties broken by insertion order.
type StatusHistoryEntry struct {
	ItemID    kernel.UUID
	Status    ItemStatus
	Timestamp time.Time
	Note      string
}

// LifecycleEvent is one append-only audit record of who did what to the order.
type LifecycleEvent struct {
	EventType        string
	Timestamp        time.Time
	EventDescription string
	TriggeredBy      Actor
}
