package queries

import (
	"time"

	"constructmart/internal/core/domain/model/order"
)

// OrderItemResponse is the read model for one order item.
type OrderItemResponse struct {
	ID                 string
	ProductID          string
	ProductName        string
	Unit               string
	UnitPrice          string
	Quantity           int
	TotalPrice         string
	Status             string
	AssignedMerchantID string
}

// StatusHistoryResponse is the read model for one status history entry.
type StatusHistoryResponse struct {
	ItemID    string
	Status    string
	Note      string
	Timestamp time.Time
}

// LifecycleEventResponse is the read model for one lifecycle audit entry.
type LifecycleEventResponse struct {
	EventType   string
	Description string
	ActorID     string
	ActorRole   string
	Timestamp   time.Time
}

// OrderResponse is the full read model for a single order.
type OrderResponse struct {
	ID             string
	OrderNumber    string
	CustomerID     string
	Status         string
	Street         string
	City           string
	PostalCode     string
	Phone          string
	Subtotal       string
	Tax            string
	DeliveryCharge string
	PlatformFee    string
	TotalAmount    string
	PaymentMethod  string
	DeliveryNotes  string
	CreatedAt      time.Time
	Items          []OrderItemResponse
	StatusHistory  []StatusHistoryResponse
	Lifecycle      []LifecycleEventResponse
}

// OrderSummaryResponse is the read model for order listings: the full order
// minus history and audit entries.
type OrderSummaryResponse struct {
	ID          string
	OrderNumber string
	CustomerID  string
	Status      string
	City        string
	TotalAmount string
	ItemCount   int
	CreatedAt   time.Time
}

// deriveStatusFromStrings computes the aggregate status from stored item
// status names, reusing the single domain mapping.
func deriveStatusFromStrings(statuses []string) (string, error) {
	parsed := make([]order.ItemStatus, 0, len(statuses))
	for _, s := range statuses {
		status, err := order.ItemStatusFromString(s)
		if err != nil {
			return "", err
		}
		parsed = append(parsed, status)
	}

	derived, err := order.DeriveOrderStatusFromStatuses(parsed)
	if err != nil {
		return "", err
	}
	return derived.String(), nil
}
