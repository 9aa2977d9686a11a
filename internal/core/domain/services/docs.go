// Package services contains stateless domain services. PricingPolicy is the
// single place order amounts are composed; nothing else in the system adds
// money together.
package services
