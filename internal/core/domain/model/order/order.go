package order

import (
	"errors"
	"fmt"
	"time"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTotalsMismatch is returned when the monetary fields do not satisfy
	// totalAmount = subtotal + tax + deliveryCharge + platformFee.
	ErrTotalsMismatch = errs.NewValueIsInvalidError(
		"totalAmount must equal subtotal + tax + deliveryCharge + platformFee")

	// ErrItemsAreRequired is returned when creating an order with no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrNotItemOwner is returned when a merchant tries to advance an item
	// another merchant holds.
	ErrNotItemOwner = errs.NewConflictError("orderItem", "item is held by another merchant")

	// ErrActorNotAllowed is returned when the actor's role cannot perform the
	// requested transition.
	ErrActorNotAllowed = errs.NewValueIsInvalidError("actor is not allowed to perform this transition")
)

// Totals carries the server-computed monetary breakdown of an order.
// NewTotals enforces the composition invariant, so an Order can never be
// constructed with drifting amounts.
type Totals struct {
	Subtotal       kernel.Money
	Tax            kernel.Money
	DeliveryCharge kernel.Money
	PlatformFee    kernel.Money
	TotalAmount    kernel.Money
}

// NewTotals validates that TotalAmount is exactly the sum of its parts.
func NewTotals(subtotal, tax, deliveryCharge, platformFee, totalAmount kernel.Money) (Totals, error) {
	sum := subtotal.Add(tax).Add(deliveryCharge).Add(platformFee)
	if !sum.IsEqual(totalAmount) {
		return Totals{}, ErrTotalsMismatch
	}
	return Totals{
		Subtotal:       subtotal,
		Tax:            tax,
		DeliveryCharge: deliveryCharge,
		PlatformFee:    platformFee,
		TotalAmount:    totalAmount,
	}, nil
}

// ItemChange records one accepted item transition made on the aggregate since
// it was loaded. FromStatus is the status the persisted row must still hold
// for the write to apply; the persistence layer turns each change into a
// guarded update and treats a non-matching row as a lost race.
type ItemChange struct {
	ItemID             kernel.UUID
	FromStatus         ItemStatus
	ToStatus           ItemStatus
	AssignedMerchantID *kernel.UUID
}

// Order is a customer's purchase request and the aggregate root of the order
// model. It owns its items exclusively: every item mutation goes through the
// aggregate so status history and lifecycle entries are appended exactly once
// per accepted transition and never for a rejected one.
//
// Orders are never deleted; they only reach soft terminal states through their
// items. The aggregate status is always derived (see DeriveOrderStatus), never
// stored independently.
//
// The aggregate tracks what changed since it was loaded: item transitions as
// ItemChange records and audit entries past the persisted high-water marks.
// Repositories persist exactly those deltas and call MarkPersisted afterwards.
type Order struct {
	id             kernel.UUID
	orderNumber    string
	customerID     kernel.UUID
	address        Address
	items          []*Item
	totals         Totals
	paymentMethod  PaymentMethod
	deliveryNotes  string
	idempotencyKey string
	createdAt      time.Time

	statusHistory []StatusHistoryEntry
	lifecycle     []LifecycleEvent

	itemChanges        []ItemChange
	persistedHistory   int
	persistedLifecycle int

	isConstructed bool
}

// NewOrder creates an order from validated parts. All items start pending; the
// order_created lifecycle event and one pending history entry per item are
// appended immediately so the audit trail has no gap before the first claim.
//
// The idempotencyKey may be empty; when present it is persisted under a unique
// index so a retried checkout returns the original order instead of creating a
// duplicate.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	address Address,
	items []*Item,
	totals Totals,
	paymentMethod PaymentMethod,
	deliveryNotes string,
	idempotencyKey string,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.totals = totals
	o.deliveryNotes = deliveryNotes
	o.idempotencyKey = idempotencyKey
	o.createdAt = time.Now().UTC()

	customer := Actor{ID: customerID, Role: ActorRoleCustomer}
	o.lifecycle = append(o.lifecycle, LifecycleEvent{
		EventType:        EventOrderCreated,
		Timestamp:        o.createdAt,
		EventDescription: fmt.Sprintf("order %s created with %d items", orderNumber, len(items)),
		TriggeredBy:      customer,
	})
	for _, item := range items {
		o.statusHistory = append(o.statusHistory, StatusHistoryEntry{
			ItemID:    item.ID(),
			Status:    ItemStatusPending,
			Timestamp: o.createdAt,
		})
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-appending
// creation audit entries.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	address Address,
	items []*Item,
	totals Totals,
	paymentMethod PaymentMethod,
	deliveryNotes string,
	idempotencyKey string,
	createdAt time.Time,
	statusHistory []StatusHistoryEntry,
	lifecycle []LifecycleEvent,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.totals = totals
	o.deliveryNotes = deliveryNotes
	o.idempotencyKey = idempotencyKey
	o.createdAt = createdAt
	o.statusHistory = statusHistory
	o.lifecycle = lifecycle
	o.persistedHistory = len(statusHistory)
	o.persistedLifecycle = len(lifecycle)
	return o, nil
}

// Validate ensures the Order was constructed through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-readable unique order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// CustomerID returns the placing customer, immutable after creation.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Address returns the delivery address snapshot.
func (o *Order) Address() Address { return o.address }

// Items returns the order's items in request order.
func (o *Order) Items() []*Item { return o.items }

// Totals returns the monetary breakdown computed at creation.
func (o *Order) Totals() Totals { return o.totals }

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// DeliveryNotes returns the optional free-text delivery instructions.
func (o *Order) DeliveryNotes() string { return o.deliveryNotes }

// IdempotencyKey returns the client-supplied checkout key, possibly empty.
func (o *Order) IdempotencyKey() string { return o.idempotencyKey }

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// StatusHistory returns the append-only item status history.
func (o *Order) StatusHistory() []StatusHistoryEntry { return o.statusHistory }

// Lifecycle returns the append-only audit log.
func (o *Order) Lifecycle() []LifecycleEvent { return o.lifecycle }

// ItemChanges returns the item transitions accepted since the aggregate was
// loaded or last persisted, in the order they happened.
func (o *Order) ItemChanges() []ItemChange { return o.itemChanges }

// NewStatusHistory returns the history entries appended since the aggregate
// was loaded or last persisted.
func (o *Order) NewStatusHistory() []StatusHistoryEntry {
	return o.statusHistory[o.persistedHistory:]
}

// NewLifecycle returns the lifecycle entries appended since the aggregate was
// loaded or last persisted.
func (o *Order) NewLifecycle() []LifecycleEvent {
	return o.lifecycle[o.persistedLifecycle:]
}

// MarkPersisted resets the change tracking. Repositories call it after a
// successful write so a later write from the same aggregate does not replay
// transitions or duplicate audit rows.
func (o *Order) MarkPersisted() {
	o.itemChanges = nil
	o.persistedHistory = len(o.statusHistory)
	o.persistedLifecycle = len(o.lifecycle)
}

// Status derives the aggregate order status from the current item statuses.
func (o *Order) Status() (OrderStatus, error) {
	return DeriveOrderStatus(o.items)
}

// Item finds an item by ID. Returns ObjectNotFoundError when the order has no
// such item.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// AssignItem claims a pending item for the acting merchant.
//
// On success the item moves pending -> assigned, the merchant is recorded, and
// one status history entry plus one item_assigned lifecycle entry are
// appended. A claim on an item another merchant holds fails with a Conflict
// and mutates nothing.
func (o *Order) AssignItem(itemID kernel.UUID, by Actor) error {
	if by.Role != ActorRoleMerchant && !by.IsAdmin() {
		return ErrActorNotAllowed
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	from := item.Status()
	if err = item.Assign(by.ID); err != nil {
		return err
	}

	o.recordChange(item, from)
	o.appendAudit(item, "", EventItemAssigned,
		fmt.Sprintf("item %s assigned to merchant %s", item.ID(), by.ID), by)
	return nil
}

// RejectItem records that the acting merchant declines a pending item. The
// item stays pending and claimable by others; only the per-merchant rejection
// and an item_rejected lifecycle entry are recorded. There is no cap on how
// often an item can be declined and re-surfaced.
func (o *Order) RejectItem(itemID kernel.UUID, by Actor) error {
	if by.Role != ActorRoleMerchant && !by.IsAdmin() {
		return ErrActorNotAllowed
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.RecordRejection(by.ID); err != nil {
		return err
	}

	o.lifecycle = append(o.lifecycle, LifecycleEvent{
		EventType:        EventItemRejected,
		Timestamp:        time.Now().UTC(),
		EventDescription: fmt.Sprintf("item %s rejected by merchant %s", item.ID(), by.ID),
		TriggeredBy:      by,
	})
	return nil
}

// MarkItemRejected moves a pending item to the terminal rejected status.
// Admin only: this is the "no merchant will take it" escape hatch.
func (o *Order) MarkItemRejected(itemID kernel.UUID, by Actor) error {
	if !by.IsAdmin() {
		return ErrActorNotAllowed
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	from := item.Status()
	if err = item.MarkRejected(); err != nil {
		return err
	}

	o.recordChange(item, from)
	o.appendAudit(item, "", EventItemRejected,
		fmt.Sprintf("item %s marked rejected", item.ID()), by)
	return nil
}

// AdvanceItem moves an item forward through fulfillment or cancels it.
//
// Authorization:
//   - forward transitions (processing, shipped, delivered) require the acting
//     merchant to hold the item, or an admin
//   - cancellation additionally allows the order's customer, but only while
//     the item has not shipped
//
// Every accepted transition appends one status history entry (with the
// optional note) and one lifecycle entry; a rejected transition appends
// nothing.
func (o *Order) AdvanceItem(itemID kernel.UUID, target ItemStatus, note string, by Actor) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err = o.authorizeTransition(item, target, by); err != nil {
		return err
	}

	from := item.Status()
	if err = item.AdvanceTo(target); err != nil {
		return err
	}

	o.recordChange(item, from)
	eventType := EventItemStatusChanged
	if target == ItemStatusCancelled {
		eventType = EventItemCancelled
	}
	o.appendAudit(item, note, eventType,
		fmt.Sprintf("item %s moved to %s", item.ID(), target), by)
	return nil
}

func (o *Order) authorizeTransition(item *Item, target ItemStatus, by Actor) error {
	if by.IsAdmin() {
		return nil
	}

	if target == ItemStatusCancelled {
		if by.Role == ActorRoleCustomer && by.ID.IsEqual(o.customerID) {
			return nil
		}
		if by.Role == ActorRoleMerchant && item.IsOwnedBy(by.ID) {
			return nil
		}
		return ErrActorNotAllowed
	}

	if by.Role != ActorRoleMerchant {
		return ErrActorNotAllowed
	}
	if !item.IsOwnedBy(by.ID) {
		return ErrNotItemOwner
	}
	return nil
}

// recordChange captures an accepted item transition for guarded persistence.
// from is the item's status before the transition.
func (o *Order) recordChange(item *Item, from ItemStatus) {
	o.itemChanges = append(o.itemChanges, ItemChange{
		ItemID:             item.ID(),
		FromStatus:         from,
		ToStatus:           item.Status(),
		AssignedMerchantID: item.AssignedMerchant(),
	})
}

// appendAudit appends the paired status history and lifecycle entries for an
// accepted transition. Both sequences share one timestamp so ties keep
// insertion order.
func (o *Order) appendAudit(item *Item, note, eventType, description string, by Actor) {
	now := time.Now().UTC()
	o.statusHistory = append(o.statusHistory, StatusHistoryEntry{
		ItemID:    item.ID(),
		Status:    item.Status(),
		Timestamp: now,
		Note:      note,
	})
	o.lifecycle = append(o.lifecycle, LifecycleEvent{
		EventType:        eventType,
		Timestamp:        now,
		EventDescription: description,
		TriggeredBy:      by,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}
