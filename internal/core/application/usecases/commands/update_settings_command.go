package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/settings"
	"constructmart/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand represents an admin changing the platform pricing
// settings. Existing orders keep their computed amounts; only future
// checkouts see the new values.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	settings settings.Settings

	guard guard.ConstructorGuard
}

// NewUpdateSettingsCommand creates a settings change command.
// The settings themselves validate the tax rate bounds.
func NewUpdateSettingsCommand(
	taxRate decimal.Decimal,
	deliveryFee kernel.Money,
	freeDeliveryThreshold kernel.Money,
	platformFee kernel.Money,
	minimumOrderValue kernel.Money,
) (UpdateSettingsCommand, error) {
	s, err := settings.NewSettings(taxRate, deliveryFee, freeDeliveryThreshold, platformFee, minimumOrderValue)
	if err != nil {
		return UpdateSettingsCommand{}, err
	}

	return UpdateSettingsCommand{
		settings: s,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

// Settings returns the validated new settings.
func (c UpdateSettingsCommand) Settings() settings.Settings {
	return c.settings
}
