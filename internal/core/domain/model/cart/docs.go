// Package cart contains the in-memory shopping cart. It is a client-session
// convenience only: prices it shows are display snapshots, and checkout
// recomputes everything from the catalog.
package cart
