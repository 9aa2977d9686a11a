// Package productrepo provides data transfer objects and mapping functions for
// catalog product persistence.
package productrepo

import (
	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog products.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Description   string
	Category      string `gorm:"index"`
	Unit          string
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	StockQuantity int
	Active        bool `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		Category:      aggregate.Category(),
		Unit:          aggregate.Unit(),
		Price:         aggregate.Price().Decimal(),
		StockQuantity: aggregate.StockQuantity(),
		Active:        aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.Name, dto.Description, dto.Category, dto.Unit,
		price, dto.StockQuantity, dto.Active,
	)
}
