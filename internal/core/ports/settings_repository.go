package ports

import (
	"context"

	"constructmart/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the single
// platform-settings row.
type SettingsRepository interface {
	// Get retrieves the current platform settings.
	Get(ctx context.Context) (settings.Settings, error)

	// Update replaces the platform settings. Admin only; takes effect for the
	// next checkout, existing orders keep their computed amounts.
	Update(ctx context.Context, s settings.Settings) error
}
