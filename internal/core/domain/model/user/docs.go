// Package user contains marketplace accounts and their roles. Customers place
// orders, merchants claim and fulfill items, admins bypass ownership checks.
package user
