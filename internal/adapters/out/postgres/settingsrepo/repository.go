// Package settingsrepo persists the single platform-settings row that drives
// server-side pricing.
package settingsrepo

import (
	"context"
	"errors"
	"time"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/settings"
	"constructmart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRowID pins the table to one row; there is exactly one set of
// platform settings.
const settingsRowID = 1

// SettingsDTO represents the database structure for platform pricing settings.
type SettingsDTO struct {
	ID                    int             `gorm:"primaryKey"`
	TaxRate               decimal.Decimal `gorm:"type:numeric(5,4)"`
	DeliveryFee           decimal.Decimal `gorm:"type:numeric(12,2)"`
	FreeDeliveryThreshold decimal.Decimal `gorm:"type:numeric(12,2)"`
	PlatformFee           decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinimumOrderValue     decimal.Decimal `gorm:"type:numeric(12,2)"`
	UpdatedAt             time.Time
}

// TableName specifies the database table name for the settings row.
func (SettingsDTO) TableName() string {
	return "platform_settings"
}

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the current platform settings.
func (r *GormSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	var dto SettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.Settings{}, errs.NewObjectNotFoundError("settings", "platform")
		}
		return settings.Settings{}, err
	}

	return toDomain(dto)
}

// Update replaces the platform settings, creating the row if the platform was
// never configured. Takes effect for the next checkout only.
func (r *GormSettingsRepository) Update(ctx context.Context, s settings.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

func fromDomain(s settings.Settings) SettingsDTO {
	return SettingsDTO{
		ID:                    settingsRowID,
		TaxRate:               s.TaxRate(),
		DeliveryFee:           s.DeliveryFee().Decimal(),
		FreeDeliveryThreshold: s.FreeDeliveryThreshold().Decimal(),
		PlatformFee:           s.PlatformFee().Decimal(),
		MinimumOrderValue:     s.MinimumOrderValue().Decimal(),
	}
}

func toDomain(dto SettingsDTO) (settings.Settings, error) {
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return settings.Settings{}, err
	}
	freeThreshold, err := kernel.NewMoney(dto.FreeDeliveryThreshold)
	if err != nil {
		return settings.Settings{}, err
	}
	platformFee, err := kernel.NewMoney(dto.PlatformFee)
	if err != nil {
		return settings.Settings{}, err
	}
	minimumOrderValue, err := kernel.NewMoney(dto.MinimumOrderValue)
	if err != nil {
		return settings.Settings{}, err
	}

	return settings.NewSettings(dto.TaxRate, deliveryFee, freeThreshold, platformFee, minimumOrderValue)
}
