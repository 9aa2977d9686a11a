package user

import (
	"errors"
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrPasswordTooShort is returned for passwords under the minimum length.
	ErrPasswordTooShort = errs.NewValueIsInvalidError("password must be at least 8 characters")

	// ErrInvalidCredentials is returned when a password check fails. It
	// deliberately carries no detail about which part was wrong.
	ErrInvalidCredentials = errs.NewUnauthorizedError("invalid credentials")
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// Role is the account role. It decides which order operations the principal
// may perform: customers place and cancel orders, merchants claim and fulfill
// items, admins may do anything.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

// RoleFromString parses a wire-format role name.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleMerchant, RoleAdmin:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks the role is one of the known values.
func (r Role) Validate() error {
	_, err := RoleFromString(string(r))
	return err
}

// String returns the wire-format name.
func (r Role) String() string {
	return string(r)
}

// User is an account on the marketplace: a customer, a merchant, or an admin.
// Passwords are stored only as bcrypt hashes.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	role         Role
	passwordHash []byte

	isConstructed bool
}

// NewUser creates a user, hashing the plaintext password with bcrypt.
func NewUser(id kernel.UUID, name, email, password string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.passwordHash = hash

	return u, nil
}

// RestoreUser reconstructs a user from persistence with an existing hash.
func RestoreUser(id kernel.UUID, name, email string, role Role, passwordHash []byte) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return u, nil
}

// Validate ensures the User was constructed through a factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the login email.
func (u *User) Email() string { return u.email }

// Role returns the account role.
func (u *User) Role() Role { return u.role }

// PasswordHash returns the bcrypt hash for persistence.
func (u *User) PasswordHash() []byte { return u.passwordHash }

// CheckPassword verifies a plaintext password against the stored hash.
// Returns ErrInvalidCredentials on mismatch.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
