// Package queries contains read-side operations. Handlers read the database
// directly and build flat response models; they never load or mutate
// aggregates. The aggregate order status is still computed through
// order.DeriveOrderStatus so the read side can never disagree with the
// write side about what an order's status is.
package queries
