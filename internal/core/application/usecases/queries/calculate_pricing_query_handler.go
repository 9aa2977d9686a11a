package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"constructmart/internal/core/domain/model/cart"
	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/product"
	"constructmart/internal/core/domain/services"
	"constructmart/internal/pkg/errs"
)

// CalculatePricingQueryResponse is the priced preview of a prospective order.
type CalculatePricingQueryResponse struct {
	Subtotal          string
	Tax               string
	DeliveryCharge    string
	PlatformFee       string
	Total             string
	MinimumOrderValue string
	MinimumOrderMet   bool
}

// CalculatePricingQueryHandler prices carts using live catalog prices and the
// current platform settings.
type CalculatePricingQueryHandler struct {
	db *gorm.DB
}

// NewCalculatePricingQueryHandler creates a handler for pricing previews.
func NewCalculatePricingQueryHandler(db *gorm.DB) CalculatePricingQueryHandler {
	return CalculatePricingQueryHandler{db: db}
}

// Handle executes the preview. A below-minimum cart is still priced, with
// MinimumOrderMet false, so clients can show the shortfall instead of an
// error page.
func (h CalculatePricingQueryHandler) Handle(
	ctx context.Context,
	query CalculatePricingQuery,
) (CalculatePricingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculatePricingQueryResponse{}, err
	}

	policy, err := loadPricingPolicy(ctx, h.db)
	if err != nil {
		return CalculatePricingQueryResponse{}, err
	}

	subtotal, err := h.subtotalFor(ctx, query.Lines())
	if err != nil {
		return CalculatePricingQueryResponse{}, err
	}

	quote, err := policy.Quote(subtotal)
	if err != nil {
		return CalculatePricingQueryResponse{}, err
	}

	return CalculatePricingQueryResponse{
		Subtotal:          quote.Subtotal.String(),
		Tax:               quote.Tax.String(),
		DeliveryCharge:    quote.DeliveryCharge.String(),
		PlatformFee:       quote.PlatformFee.String(),
		Total:             quote.Total.String(),
		MinimumOrderValue: policy.MinimumOrderValue().String(),
		MinimumOrderMet:   policy.ValidateMinimum(subtotal) == nil,
	}, nil
}

// subtotalFor builds an in-memory cart from live catalog snapshots and sums
// it. The cart rejects a line that exceeds available stock; a rejected line
// here means checkout would fail the same way, so the preview collects every
// shortage and reports them together instead of quoting a price the customer
// cannot pay.
func (h CalculatePricingQueryHandler) subtotalFor(
	ctx context.Context,
	lines []PricingLine,
) (kernel.Money, error) {
	basket := cart.NewCart()
	var shortages []errs.StockShortage

	for _, line := range lines {
		snapshot, err := h.loadProductSnapshot(ctx, line.ProductID)
		if err != nil {
			return kernel.Money{}, err
		}

		if err = basket.Add(snapshot, line.Quantity); err != nil {
			var stockErr *errs.InsufficientStockError
			if errors.As(err, &stockErr) {
				shortages = append(shortages, stockErr.Shortages...)
				continue
			}
			return kernel.Money{}, err
		}
	}

	if len(shortages) > 0 {
		return kernel.Money{}, errs.NewInsufficientStockError(shortages)
	}
	return basket.Subtotal(), nil
}

// loadProductSnapshot reads one active catalog row into a domain product.
func (h CalculatePricingQueryHandler) loadProductSnapshot(
	ctx context.Context,
	productID kernel.UUID,
) (*product.Product, error) {
	var (
		name          string
		description   string
		category      string
		unit          string
		priceStr      string
		stockQuantity int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT name, description, category, unit, price, stock_quantity
		FROM products
		WHERE id = ? AND active
	`, productID.Bytes()).Row()
	if err := row.Scan(&name, &description, &category, &unit, &priceStr, &stockQuantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("product", productID.String())
		}
		return nil, err
	}

	price, err := kernel.MoneyFromString(priceStr)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(productID, name, description, category, unit, price, stockQuantity, true)
}

// loadPricingPolicy reads the platform settings row and builds the shared
// pricing policy from it.
func loadPricingPolicy(ctx context.Context, db *gorm.DB) (services.PricingPolicy, error) {
	s, err := loadSettings(ctx, db)
	if err != nil {
		return services.PricingPolicy{}, err
	}
	return services.PolicyFromSettings(s)
}
