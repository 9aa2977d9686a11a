package order

import (
	"fmt"

	"constructmart/internal/pkg/errs"
)

// ItemStatus represents the fulfillment state of a single order item.
// Items carry their own status independent of sibling items because different
// items in one order may be fulfilled by different merchants.
//
// State transitions:
//
//	Pending ──┬──> Assigned ──> Processing ──> Shipped ──> Delivered
//	          │        │             │  │
//	          │        └──> Cancelled <─┘  └──> Delivered
//	          └──> Rejected
//
// Delivered, Cancelled, and Rejected are terminal. Any transition outside the
// table is rejected with no state mutation.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized ItemStatus values.
	ItemStatusUnknown ItemStatus = iota

	// ItemStatusPending is the initial status at order creation.
	// Pending items have no merchant and appear in the unassigned queue.
	ItemStatusPending

	// ItemStatusAssigned indicates a merchant has claimed the item.
	ItemStatusAssigned

	// ItemStatusProcessing indicates the merchant is preparing the item.
	ItemStatusProcessing

	// ItemStatusShipped indicates the item has left the merchant.
	// Shipped items can no longer be cancelled.
	ItemStatusShipped

	// ItemStatusDelivered indicates the item reached the customer. Terminal.
	ItemStatusDelivered

	// ItemStatusCancelled indicates the item was cancelled before shipping. Terminal.
	ItemStatusCancelled

	// ItemStatusRejected indicates a merchant declined the item. Terminal for
	// the transition table; the item itself stays claimable by other merchants.
	ItemStatusRejected
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown:    "unknown",
		ItemStatusPending:    "pending",
		ItemStatusAssigned:   "assigned",
		ItemStatusProcessing: "processing",
		ItemStatusShipped:    "shipped",
		ItemStatusDelivered:  "delivered",
		ItemStatusCancelled:  "cancelled",
		ItemStatusRejected:   "rejected",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemStatusPending:    "pending",
		ItemStatusAssigned:   "assigned",
		ItemStatusProcessing: "processing",
		ItemStatusShipped:    "shipped",
		ItemStatusDelivered:  "delivered",
		ItemStatusCancelled:  "cancelled",
		ItemStatusRejected:   "rejected",
	}
}

// itemStatusTransitions is the complete transition table. A transition is
// allowed if and only if the target appears under the current status.
func itemStatusTransitions() map[ItemStatus][]ItemStatus {
	return map[ItemStatus][]ItemStatus{
		ItemStatusPending:    {ItemStatusAssigned, ItemStatusRejected},
		ItemStatusAssigned:   {ItemStatusProcessing, ItemStatusCancelled},
		ItemStatusProcessing: {ItemStatusShipped, ItemStatusDelivered, ItemStatusCancelled},
		ItemStatusShipped:    {ItemStatusDelivered},
	}
}

// ItemStatusFromString parses a wire-format status name ("pending", "shipped", ...).
// Returns an error for unknown names.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, name := range getValidItemStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status is invalid", fmt.Errorf("%q is not a valid item status", s))
}

// Validate checks if the ItemStatus value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s ItemStatus) IsTerminal() bool {
	return s == ItemStatusDelivered || s == ItemStatusCancelled || s == ItemStatusRejected
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to target.
func (s ItemStatus) CanTransitionTo(target ItemStatus) bool {
	for _, allowed := range itemStatusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target if the transition table allows it.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This is the single gate every item mutation goes through; Item and Order
// never change status any other way.
func (s ItemStatus) TransitionTo(target ItemStatus) (ItemStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"item status transition is invalid",
			fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()),
		)
	}
	return target, nil
}

// ValidateAssign checks if the status allows a merchant claim without
// performing the transition. Only pending items are claimable.
func (s ItemStatus) ValidateAssign() error {
	if s != ItemStatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCancel checks whether cancellation is still possible.
// Shipped and later statuses cannot be cancelled: delivery is already
// physically committed.
func (s ItemStatus) ValidateCancel() error {
	if !s.CanTransitionTo(ItemStatusCancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return nil
}
