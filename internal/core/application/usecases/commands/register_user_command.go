package commands

import (
	"errors"

	"constructmart/internal/core/domain/model/user"
	"constructmart/internal/pkg/errs"
	"constructmart/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a sign-up request for a customer or merchant
// account. Admin accounts are provisioned out of band, never through this
// command.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a sign-up command.
// Only customer and merchant roles are accepted.
func NewRegisterUserCommand(name, email, password, role string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password; it is hashed by the user
// constructor and never stored.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role string) error {
	parsed, err := user.RoleFromString(role)
	if err != nil {
		return err
	}
	if parsed == user.RoleAdmin {
		return errs.NewValueIsInvalidError("admin accounts cannot be self-registered")
	}

	c.role = parsed
	return nil
}
