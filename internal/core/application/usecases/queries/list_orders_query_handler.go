package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryResponse is one page of order summaries.
type ListOrdersQueryResponse struct {
	Orders     []OrderSummaryResponse
	Page       int
	PageSize   int
	TotalCount int64
}

// ListOrdersQueryHandler retrieves order summary pages from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Orders are returned newest first; the
// aggregate status of each is derived from its item statuses.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	scope, args := h.scopeFor(query)

	var total int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM orders o WHERE `+scope, args...,
	).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	listArgs := append(append([]any{}, args...), query.PageSize(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id, o.order_number, o.customer_id, o.city, o.total_amount, o.created_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id)
		FROM orders o
		WHERE `+scope+`
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0, query.PageSize())
	for rows.Next() {
		var summary OrderSummaryResponse
		if err = rows.Scan(
			&summary.ID, &summary.OrderNumber, &summary.CustomerID,
			&summary.City, &summary.TotalAmount, &summary.CreatedAt, &summary.ItemCount,
		); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		orders = append(orders, summary)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if err = h.attachStatuses(ctx, orders); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:     orders,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalCount: total,
	}, nil
}

// scopeFor builds the role-based WHERE clause.
func (h ListOrdersQueryHandler) scopeFor(query ListOrdersQuery) (string, []any) {
	switch query.ActorRole() {
	case "merchant":
		return `EXISTS (
			SELECT 1 FROM order_items i
			WHERE i.order_id = o.id AND i.assigned_merchant_id = ?
		)`, []any{query.ActorID().Bytes()}
	case "admin":
		return "TRUE", nil
	default:
		return "o.customer_id = ?", []any{query.ActorID().Bytes()}
	}
}

// attachStatuses derives each order's aggregate status from its item statuses.
func (h ListOrdersQueryHandler) attachStatuses(ctx context.Context, orders []OrderSummaryResponse) error {
	for i := range orders {
		var statuses []string
		if err := h.db.WithContext(ctx).Raw(
			`SELECT status FROM order_items WHERE order_id = ?`, orders[i].ID,
		).Scan(&statuses).Error; err != nil {
			return err
		}

		derived, err := deriveStatusFromStrings(statuses)
		if err != nil {
			return err
		}
		orders[i].Status = derived
	}
	return nil
}
