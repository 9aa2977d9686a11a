package queries

import (
	"context"

	"gorm.io/gorm"
)

// ProductResponse is the read model for one catalog product.
type ProductResponse struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Unit          string
	Price         string
	StockQuantity int
}

// ListProductsQueryResponse is one page of catalog products.
type ListProductsQueryResponse struct {
	Products   []ProductResponse
	Page       int
	PageSize   int
	TotalCount int64
}

// ListProductsQueryHandler retrieves catalog pages from the database.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for catalog listing queries.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the catalog query. Only active products are listed.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	where := "active"
	args := []any{}
	if query.Category() != "" {
		where += " AND category = ?"
		args = append(args, query.Category())
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM products WHERE `+where, args...,
	).Scan(&total).Error; err != nil {
		return ListProductsQueryResponse{}, err
	}

	listArgs := append(append([]any{}, args...), query.PageSize(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, category, unit, price, stock_quantity
		FROM products
		WHERE `+where+`
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return ListProductsQueryResponse{}, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0, query.PageSize())
	for rows.Next() {
		var p ProductResponse
		if err = rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Category, &p.Unit, &p.Price, &p.StockQuantity,
		); err != nil {
			return ListProductsQueryResponse{}, err
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	return ListProductsQueryResponse{
		Products:   products,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalCount: total,
	}, nil
}
