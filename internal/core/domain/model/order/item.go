package order

import (
	"errors"
	"fmt"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrItemAlreadyAssigned is returned when a merchant tries to claim an item
	// another merchant already holds. Maps to HTTP 409.
	ErrItemAlreadyAssigned = errs.NewConflictError("orderItem", "already assigned")

	// ErrMerchantRejectedItem is returned when a merchant tries to claim an
	// item they previously rejected.
	ErrMerchantRejectedItem = errs.NewConflictError("orderItem", "merchant rejected this item")

	// ErrQuantityIsInvalid is returned for non-positive quantities.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")
)

// Item is one product line within an order. It snapshots the product's name,
// unit, and price at order time: the price must never re-fetch from the live
// catalog after creation, so totals stay exactly what the customer agreed to.
//
// Item invariants:
//   - totalPrice == unitPrice * quantity, fixed at construction
//   - assignedMerchantID is nil exactly while status is pending or rejected
//   - status only moves along the ItemStatus transition table
//
// Items are exclusively owned by their parent Order; all mutations go through
// the aggregate so audit entries are never skipped.
type Item struct {
	id                 kernel.UUID
	productID          kernel.UUID
	productName        string
	unit               string
	unitPrice          kernel.Money
	quantity           int
	totalPrice         kernel.Money
	status             ItemStatus
	assignedMerchantID *kernel.UUID
	rejectedBy         []kernel.UUID

	isConstructed bool
}

// NewItem creates a pending order item from a product snapshot.
// The line total is computed here once and never recomputed.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	unit string,
	unitPrice kernel.Money,
	quantity int,
) (*Item, error) {
	item := &Item{
		status:        ItemStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(productID, productName, unit),
		item.setPricing(unitPrice, quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence, including its status,
// merchant assignment, and rejection record. It re-checks the consistency
// between status and assignment so corrupted rows never become live items.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	unit string,
	unitPrice kernel.Money,
	quantity int,
	status ItemStatus,
	assignedMerchantID *kernel.UUID,
	rejectedBy []kernel.UUID,
) (*Item, error) {
	item, err := NewItem(id, productID, productName, unit, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = validateStatusAssignment(status, assignedMerchantID != nil); err != nil {
		return nil, err
	}
	if assignedMerchantID != nil {
		if err = assignedMerchantID.Validate(); err != nil {
			return nil, err
		}
	}

	item.status = status
	item.assignedMerchantID = assignedMerchantID
	item.rejectedBy = rejectedBy
	return item, nil
}

// validateStatusAssignment enforces the coherence rule between item status and
// merchant assignment: pending and rejected items must have no merchant, every
// other status must have one.
func validateStatusAssignment(status ItemStatus, hasMerchant bool) error {
	merchantless := status == ItemStatusPending || status == ItemStatusRejected
	if merchantless && hasMerchant {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("%s item must not have an assigned merchant", status.String()),
		)
	}
	if !merchantless && !hasMerchant {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("%s item must have an assigned merchant", status.String()),
		)
	}
	return nil
}

// Validate ensures the Item was constructed through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier, unique within its parent order.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog product this line snapshots.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshot taken at order time.
func (i *Item) ProductName() string {
	return i.productName
}

// Unit returns the sales unit snapshot, e.g. "bag" or "ton".
func (i *Item) Unit() string {
	return i.unit
}

// UnitPrice returns the price snapshot taken at order time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// TotalPrice returns unitPrice * quantity, fixed at construction.
func (i *Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

// Status returns the item's current fulfillment status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// AssignedMerchant returns the claiming merchant's ID, or nil while unassigned.
func (i *Item) AssignedMerchant() *kernel.UUID {
	return i.assignedMerchantID
}

// RejectedBy returns the merchants that declined this item.
func (i *Item) RejectedBy() []kernel.UUID {
	return i.rejectedBy
}

// HasRejected reports whether the given merchant previously declined this item.
func (i *Item) HasRejected(merchantID kernel.UUID) bool {
	for _, id := range i.rejectedBy {
		if id.IsEqual(merchantID) {
			return true
		}
	}
	return false
}

// Assign claims the item for a merchant.
//
// Preconditions: the item is pending, has no merchant, and the claiming
// merchant has not previously rejected it. A claim on an item someone else
// holds returns ErrItemAlreadyAssigned so the losing side of a race gets a
// Conflict, never a silent overwrite. The persistence layer backs this with an
// atomic guarded update; this method is the in-memory half of the contract.
func (i *Item) Assign(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	if i.assignedMerchantID != nil {
		return ErrItemAlreadyAssigned
	}
	if i.HasRejected(merchantID) {
		return ErrMerchantRejectedItem
	}

	newStatus, err := i.status.TransitionTo(ItemStatusAssigned)
	if err != nil {
		return err
	}

	i.status = newStatus
	i.assignedMerchantID = &merchantID
	return nil
}

// RecordRejection notes that a merchant declined the item. The item stays
// pending and claimable by other merchants; only the per-merchant rejection is
// recorded. Declining twice is a no-op error.
func (i *Item) RecordRejection(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	if err := i.status.ValidateAssign(); err != nil {
		return err
	}
	if i.HasRejected(merchantID) {
		return errs.NewConflictError("orderItem", "already rejected by this merchant")
	}

	i.rejectedBy = append(i.rejectedBy, merchantID)
	return nil
}

// MarkRejected moves a pending item to the terminal rejected status.
// Used by administrators to pull an item no merchant will fulfill.
func (i *Item) MarkRejected() error {
	newStatus, err := i.status.TransitionTo(ItemStatusRejected)
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// AdvanceTo moves the item forward through the fulfillment statuses
// (processing, shipped, delivered) or cancels it, per the transition table.
// Authorization (owning merchant or admin) is the aggregate's concern.
func (i *Item) AdvanceTo(target ItemStatus) error {
	newStatus, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// IsOwnedBy reports whether the given merchant currently holds the item.
func (i *Item) IsOwnedBy(merchantID kernel.UUID) bool {
	return i.assignedMerchantID != nil && i.assignedMerchantID.IsEqual(merchantID)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProduct(productID kernel.UUID, name, unit string) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productID = productID
	i.productName = name
	i.unit = unit
	return nil
}

func (i *Item) setPricing(unitPrice kernel.Money, quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	i.unitPrice = unitPrice
	i.quantity = quantity
	i.totalPrice = unitPrice.MulInt(quantity)
	return nil
}
