// Package order contains the order aggregate: the Order root, its Items,
// the per-item fulfillment state machine, and the derived aggregate status.
//
// Design rules the package enforces:
//
//   - Items snapshot product name, unit, and price at creation; prices are
//     never re-read from the catalog afterwards.
//   - Item status changes only through the ItemStatus transition table, and
//     only via the Order aggregate, which appends exactly one status history
//     entry and one lifecycle entry per accepted transition.
//   - The order-level status is never stored. DeriveOrderStatus is the single
//     mapping from item statuses to the aggregate status.
//   - At most one merchant ever holds an item. The aggregate rejects claims on
//     held items with a conflict; the persistence layer backs this with an
//     atomic guarded update.
//
// All types follow the value-object conventions of the kernel package:
// private fields, factory constructors, and Validate methods that catch
// zero-value instances.
package order
