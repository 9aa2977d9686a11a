package queries

import (
	"errors"

	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery authenticates an account by email and password.
// Authentication is a read: nothing about the account changes on login.
type LoginQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	if email == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the login email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to check. It never leaves the
// process; only the bcrypt hash is stored.
func (q LoginQuery) Password() string {
	return q.password
}
