package queries

import (
	"context"

	"gorm.io/gorm"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/user"
)

// LoginQueryHandler checks credentials against the users table and returns the
// account on success. Wrong email and wrong password are indistinguishable to
// the caller.
type LoginQueryHandler struct {
	db *gorm.DB
}

// NewLoginQueryHandler creates a handler for login queries.
func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle executes the login query.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row struct {
		ID           string
		Name         string
		Email        string
		Role         string
		PasswordHash []byte
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, role, password_hash
		FROM users
		WHERE email = ?
	`, query.Email()).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		// no such account: same answer as a wrong password
		return nil, user.ErrInvalidCredentials
	}

	id, err := kernel.UUIDFromString(row.ID)
	if err != nil {
		return nil, err
	}
	role, err := user.RoleFromString(row.Role)
	if err != nil {
		return nil, err
	}
	account, err := user.RestoreUser(id, row.Name, row.Email, role, row.PasswordHash)
	if err != nil {
		return nil, err
	}

	if err := account.CheckPassword(query.Password()); err != nil {
		return nil, err
	}
	return account, nil
}

// GetUserByID loads a single account, used by token refresh to re-issue a pair
// for a still-existing user.
func (h LoginQueryHandler) GetUserByID(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row struct {
		ID           string
		Name         string
		Email        string
		Role         string
		PasswordHash []byte
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, role, password_hash
		FROM users
		WHERE id = ?
	`, id.String()).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, user.ErrInvalidCredentials
	}

	role, err := user.RoleFromString(row.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, row.Name, row.Email, role, row.PasswordHash)
}
