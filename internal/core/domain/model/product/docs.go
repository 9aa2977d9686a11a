// Package product contains the catalog model. Products carry the
// authoritative price and stock; orders snapshot from here at checkout and
// never read back.
package product
