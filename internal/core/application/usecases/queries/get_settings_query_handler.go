package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/settings"
)

// GetSettingsQueryResponse is the read model for platform pricing settings.
type GetSettingsQueryResponse struct {
	TaxRate               string
	DeliveryFee           string
	FreeDeliveryThreshold string
	PlatformFee           string
	MinimumOrderValue     string
}

// GetSettingsQueryHandler retrieves the settings row from the database.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingsQueryHandler creates a handler for settings queries.
func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

// Handle executes the settings query.
func (h GetSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetSettingsQuery,
) (GetSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingsQueryResponse{}, err
	}

	s, err := loadSettings(ctx, h.db)
	if err != nil {
		return GetSettingsQueryResponse{}, err
	}

	return GetSettingsQueryResponse{
		TaxRate:               s.TaxRate().String(),
		DeliveryFee:           s.DeliveryFee().String(),
		FreeDeliveryThreshold: s.FreeDeliveryThreshold().String(),
		PlatformFee:           s.PlatformFee().String(),
		MinimumOrderValue:     s.MinimumOrderValue().String(),
	}, nil
}

// loadSettings reads the single platform settings row.
func loadSettings(ctx context.Context, db *gorm.DB) (settings.Settings, error) {
	var (
		taxRateStr           string
		deliveryFeeStr       string
		freeThresholdStr     string
		platformFeeStr       string
		minimumOrderValueStr string
	)

	row := db.WithContext(ctx).Raw(`
		SELECT tax_rate, delivery_fee, free_delivery_threshold, platform_fee, minimum_order_value
		FROM platform_settings
		WHERE id = 1
	`).Row()
	if err := row.Scan(
		&taxRateStr, &deliveryFeeStr, &freeThresholdStr, &platformFeeStr, &minimumOrderValueStr,
	); err != nil {
		return settings.Settings{}, err
	}

	taxRate, err := decimal.NewFromString(taxRateStr)
	if err != nil {
		return settings.Settings{}, err
	}
	deliveryFee, err := kernel.MoneyFromString(deliveryFeeStr)
	if err != nil {
		return settings.Settings{}, err
	}
	freeThreshold, err := kernel.MoneyFromString(freeThresholdStr)
	if err != nil {
		return settings.Settings{}, err
	}
	platformFee, err := kernel.MoneyFromString(platformFeeStr)
	if err != nil {
		return settings.Settings{}, err
	}
	minimumOrderValue, err := kernel.MoneyFromString(minimumOrderValueStr)
	if err != nil {
		return settings.Settings{}, err
	}

	return settings.NewSettings(taxRate, deliveryFee, freeThreshold, platformFee, minimumOrderValue)
}
