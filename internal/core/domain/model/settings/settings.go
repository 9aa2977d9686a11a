package settings

import (
	"errors"

	"github.com/shopspring/decimal"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/pkg/errs"
)

// ErrSettingsAreNotConstructed is returned when Settings were not created via
// NewSettings.
var ErrSettingsAreNotConstructed = errors.New("Settings must be created via NewSettings constructor")

// Settings are the platform-wide pricing knobs, stored as a single row and
// editable by admins. Orders snapshot nothing from here: amounts are computed
// at checkout from the settings current at that moment, then frozen on the
// order itself.
type Settings struct {
	taxRate               decimal.Decimal
	deliveryFee           kernel.Money
	freeDeliveryThreshold kernel.Money
	platformFee           kernel.Money
	minimumOrderValue     kernel.Money

	isConstructed bool
}

// NewSettings creates validated platform settings.
func NewSettings(
	taxRate decimal.Decimal,
	deliveryFee kernel.Money,
	freeDeliveryThreshold kernel.Money,
	platformFee kernel.Money,
	minimumOrderValue kernel.Money,
) (Settings, error) {
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Settings{}, errs.NewValueIsInvalidError("tax rate must be in [0, 1)")
	}

	return Settings{
		taxRate:               taxRate,
		deliveryFee:           deliveryFee,
		freeDeliveryThreshold: freeDeliveryThreshold,
		platformFee:           platformFee,
		minimumOrderValue:     minimumOrderValue,
		isConstructed:         true,
	}, nil
}

// Validate ensures the settings were created through the constructor.
func (s Settings) Validate() error {
	if !s.isConstructed {
		return ErrSettingsAreNotConstructed
	}
	return nil
}

// TaxRate returns the tax fraction applied to subtotals, e.g. 0.18.
func (s Settings) TaxRate() decimal.Decimal { return s.taxRate }

// DeliveryFee returns the flat delivery charge.
func (s Settings) DeliveryFee() kernel.Money { return s.deliveryFee }

// FreeDeliveryThreshold returns the subtotal at which delivery becomes free.
func (s Settings) FreeDeliveryThreshold() kernel.Money { return s.freeDeliveryThreshold }

// PlatformFee returns the flat marketplace charge per order.
func (s Settings) PlatformFee() kernel.Money { return s.platformFee }

// MinimumOrderValue returns the smallest accepted order subtotal.
func (s Settings) MinimumOrderValue() kernel.Money { return s.minimumOrderValue }
