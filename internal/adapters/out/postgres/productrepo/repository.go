package productrepo

import (
	"context"
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/product"
	"constructmart/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves price, stock, and activation changes to an existing product.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":           dto.Name,
			"description":    dto.Description,
			"category":       dto.Category,
			"unit":           dto.Unit,
			"price":          dto.Price,
			"stock_quantity": dto.StockQuantity,
			"active":         dto.Active,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBatch retrieves products for the given identifiers with FOR UPDATE row
// locks, so concurrent checkouts serialize on the stock they compete for.
// Results come back in request order; a missing identifier fails the whole
// batch with ObjectNotFoundError.
func (r *GormProductRepository) GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "id IN ?", rawIDs).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]ProductDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	products := make([]*product.Product, 0, len(ids))
	for i, id := range ids {
		dto, ok := byID[rawIDs[i]]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		p, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		products = append(products, p)
	}

	return products, nil
}
