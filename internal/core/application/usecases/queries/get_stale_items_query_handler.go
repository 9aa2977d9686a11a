package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// StaleItemResponse is one pending item that has sat unclaimed too long.
type StaleItemResponse struct {
	ItemID         string
	OrderID        string
	OrderNumber    string
	ProductName    string
	City           string
	OrderCreatedAt time.Time
}

// GetStaleItemsQueryHandler retrieves long-unclaimed pending items from the
// database.
type GetStaleItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleItemsQueryHandler creates a handler for stale item queries.
func NewGetStaleItemsQueryHandler(db *gorm.DB) GetStaleItemsQueryHandler {
	return GetStaleItemsQueryHandler{db: db}
}

// Handle executes the stale item query.
func (h GetStaleItemsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleItemsQuery,
) ([]StaleItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT i.id, o.id AS order_id, o.order_number, i.product_name, o.city, o.created_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE i.status = 'pending'
		  AND i.assigned_merchant_id IS NULL
		  AND o.created_at < ?
		ORDER BY o.created_at
	`, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stale []StaleItemResponse
	for rows.Next() {
		var item StaleItemResponse
		if err := rows.Scan(
			&item.ItemID, &item.OrderID, &item.OrderNumber,
			&item.ProductName, &item.City, &item.OrderCreatedAt,
		); err != nil {
			return nil, err
		}
		stale = append(stale, item)
	}
	return stale, rows.Err()
}
