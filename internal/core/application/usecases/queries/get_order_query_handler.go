package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"constructmart/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order does
// not exist or the actor is not allowed to see it; the two cases are
// indistinguishable on purpose.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.Items, err = h.loadItems(ctx, query); err != nil {
		return OrderResponse{}, err
	}
	if len(resp.Items) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	statuses := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		statuses = append(statuses, item.Status)
	}
	if resp.Status, err = deriveStatusFromStrings(statuses); err != nil {
		return OrderResponse{}, err
	}

	if resp.StatusHistory, err = h.loadHistory(ctx, query); err != nil {
		return OrderResponse{}, err
	}
	if resp.Lifecycle, err = h.loadLifecycle(ctx, query); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	var resp OrderResponse
	var deliveryNotes, postalCode sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_number, customer_id,
			street, city, postal_code, phone,
			subtotal, tax, delivery_charge, platform_fee, total_amount,
			payment_method, delivery_notes, created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&resp.ID, &resp.OrderNumber, &resp.CustomerID,
		&resp.Street, &resp.City, &postalCode, &resp.Phone,
		&resp.Subtotal, &resp.Tax, &resp.DeliveryCharge, &resp.PlatformFee, &resp.TotalAmount,
		&resp.PaymentMethod, &deliveryNotes, &resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	resp.PostalCode = postalCode.String
	resp.DeliveryNotes = deliveryNotes.String

	if query.ActorRole() == "customer" && resp.CustomerID != query.ActorID().String() {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, query GetOrderQuery) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, product_id, product_name, unit,
			unit_price, quantity, total_price, status, assigned_merchant_id
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var merchantID sql.NullString

		if err = rows.Scan(
			&item.ID, &item.ProductID, &item.ProductName, &item.Unit,
			&item.UnitPrice, &item.Quantity, &item.TotalPrice, &item.Status, &merchantID,
		); err != nil {
			return nil, err
		}
		item.AssignedMerchantID = merchantID.String
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) loadHistory(ctx context.Context, query GetOrderQuery) ([]StatusHistoryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT item_id, status, note, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]StatusHistoryResponse, 0)
	for rows.Next() {
		var entry StatusHistoryResponse
		var note sql.NullString

		if err = rows.Scan(&entry.ItemID, &entry.Status, &note, &entry.Timestamp); err != nil {
			return nil, err
		}
		entry.Note = note.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (h GetOrderQueryHandler) loadLifecycle(ctx context.Context, query GetOrderQuery) ([]LifecycleEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT event_type, description, actor_id, actor_role, created_at
		FROM order_lifecycle_events
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]LifecycleEventResponse, 0)
	for rows.Next() {
		var event LifecycleEventResponse

		if err = rows.Scan(
			&event.EventType, &event.Description, &event.ActorID, &event.ActorRole, &event.Timestamp,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
