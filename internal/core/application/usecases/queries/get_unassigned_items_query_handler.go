package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// UnassignedItemResponse is one claimable item in a merchant's queue,
// carrying enough order context to decide without another round trip.
type UnassignedItemResponse struct {
	ItemID         string
	OrderID        string
	OrderNumber    string
	ProductID      string
	ProductName    string
	Unit           string
	UnitPrice      string
	Quantity       int
	TotalPrice     string
	City           string
	OrderCreatedAt time.Time
}

// GetUnassignedItemsQueryResponse is one page of claimable items.
type GetUnassignedItemsQueryResponse struct {
	Items      []UnassignedItemResponse
	Page       int
	PageSize   int
	TotalCount int64
}

// GetUnassignedItemsQueryHandler retrieves the claimable item queue from the
// database.
type GetUnassignedItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedItemsQueryHandler creates a handler for claim queue queries.
func NewGetUnassignedItemsQueryHandler(db *gorm.DB) GetUnassignedItemsQueryHandler {
	return GetUnassignedItemsQueryHandler{db: db}
}

// Handle executes the queue query. The queue is advisory: a claim may still
// lose the race to another merchant between listing and claiming.
func (h GetUnassignedItemsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedItemsQuery,
) (GetUnassignedItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUnassignedItemsQueryResponse{}, err
	}

	const claimableWhere = `
		i.status = 'pending'
		AND i.assigned_merchant_id IS NULL
		AND NOT EXISTS (
			SELECT 1 FROM order_item_rejections r
			WHERE r.item_id = i.id AND r.merchant_id = ?
		)`

	var total int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM order_items i WHERE `+claimableWhere,
		query.MerchantID().Bytes(),
	).Scan(&total).Error; err != nil {
		return GetUnassignedItemsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id, o.id, o.order_number,
			i.product_id, i.product_name, i.unit,
			i.unit_price, i.quantity, i.total_price,
			o.city, o.created_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE `+claimableWhere+`
		ORDER BY o.created_at, i.position
		LIMIT ? OFFSET ?
	`, query.MerchantID().Bytes(), query.PageSize(), query.Offset()).Rows()
	if err != nil {
		return GetUnassignedItemsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]UnassignedItemResponse, 0, query.PageSize())
	for rows.Next() {
		var item UnassignedItemResponse
		if err = rows.Scan(
			&item.ItemID, &item.OrderID, &item.OrderNumber,
			&item.ProductID, &item.ProductName, &item.Unit,
			&item.UnitPrice, &item.Quantity, &item.TotalPrice,
			&item.City, &item.OrderCreatedAt,
		); err != nil {
			return GetUnassignedItemsQueryResponse{}, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return GetUnassignedItemsQueryResponse{}, err
	}

	return GetUnassignedItemsQueryResponse{
		Items:      items,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalCount: total,
	}, nil
}
