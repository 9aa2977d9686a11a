package order

import (
	"constructmart/internal/pkg/errs"
)

// OrderStatus is the display-level aggregate status of an order. It is never
// stored: it is always derived from item statuses by DeriveOrderStatus, so the
// aggregate can never drift from its items.
type OrderStatus int

const (
	// OrderStatusUnknown represents an invalid or undefined aggregate status.
	OrderStatusUnknown OrderStatus = iota

	// OrderStatusPending means every item is still waiting for a merchant.
	OrderStatusPending

	// OrderStatusProcessing means all active items are claimed and being worked.
	OrderStatusProcessing

	// OrderStatusShipped means every active item has shipped.
	OrderStatusShipped

	// OrderStatusPartial means item statuses are mixed.
	OrderStatusPartial

	// OrderStatusDelivered means every item reached a terminal state and at
	// least one was delivered.
	OrderStatusDelivered

	// OrderStatusCancelled means every item was cancelled or rejected.
	OrderStatusCancelled
)

func getOrderStatusStrings() map[OrderStatus]string {
	return map[OrderStatus]string{
		OrderStatusUnknown:    "unknown",
		OrderStatusPending:    "pending",
		OrderStatusProcessing: "processing",
		OrderStatusShipped:    "shipped",
		OrderStatusPartial:    "partial",
		OrderStatusDelivered:  "delivered",
		OrderStatusCancelled:  "cancelled",
	}
}

// String returns the wire-format name of the aggregate status.
func (s OrderStatus) String() string {
	if str, ok := getOrderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// DeriveOrderStatus computes the aggregate order status as a pure function of
// item statuses. Every surface that displays an order status must go through
// this function; there is deliberately no other mapping anywhere.
//
// The mapping, applied top to bottom:
//  1. no items                                         -> error
//  2. every item cancelled or rejected                 -> Cancelled
//  3. every item terminal, at least one delivered      -> Delivered
//  4. every item pending                               -> Pending
//  5. every non-terminal item shipped                  -> Shipped
//  6. every non-terminal item assigned or processing   -> Processing
//  7. anything else (statuses mixed)                   -> Partial
func DeriveOrderStatus(items []*Item) (OrderStatus, error) {
	statuses := make([]ItemStatus, 0, len(items))
	for _, item := range items {
		statuses = append(statuses, item.Status())
	}
	return DeriveOrderStatusFromStatuses(statuses)
}

// DeriveOrderStatusFromStatuses is the status-level form of DeriveOrderStatus,
// for read paths that have item statuses but no rehydrated items.
func DeriveOrderStatusFromStatuses(statuses []ItemStatus) (OrderStatus, error) {
	if len(statuses) == 0 {
		return OrderStatusUnknown, errs.NewValueIsRequiredError("items")
	}

	var (
		pending, assigned, processing, shipped, delivered, negative int
	)
	for _, status := range statuses {
		switch status {
		case ItemStatusPending:
			pending++
		case ItemStatusAssigned:
			assigned++
		case ItemStatusProcessing:
			processing++
		case ItemStatusShipped:
			shipped++
		case ItemStatusDelivered:
			delivered++
		case ItemStatusCancelled, ItemStatusRejected:
			negative++
		default:
			return OrderStatusUnknown, errs.NewValueIsInvalidError("item status")
		}
	}

	total := len(statuses)
	active := total - delivered - negative

	switch {
	case negative == total:
		return OrderStatusCancelled, nil
	case delivered+negative == total:
		return OrderStatusDelivered, nil
	case pending == total:
		return OrderStatusPending, nil
	case active > 0 && shipped == active && delivered == 0 && negative == 0 && pending == 0:
		return OrderStatusShipped, nil
	case active > 0 && assigned+processing == active && delivered == 0 && negative == 0 && pending == 0:
		return OrderStatusProcessing, nil
	default:
		return OrderStatusPartial, nil
	}
}
