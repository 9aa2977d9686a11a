package queries

import (
	"errors"

	"constructmart/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery retrieves the current platform pricing settings.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSettingsQuery creates a parameterless settings query.
func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}
