// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The header row is immutable after checkout: address, totals, and payment
// terms are snapshots the customer agreed to. Only child rows change.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber    string    `gorm:"uniqueIndex"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index;index:idx_orders_idempotency,unique,where:idempotency_key <> ''"`
	Street         string
	City           string
	PostalCode     string
	Phone          string
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax            decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryCharge decimal.Decimal `gorm:"type:numeric(12,2)"`
	PlatformFee    decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod  string
	DeliveryNotes  string
	IdempotencyKey string `gorm:"index:idx_orders_idempotency,unique,where:idempotency_key <> ''"`
	CreatedAt      time.Time

	Items     []ItemDTO           `gorm:"foreignKey:OrderID"`
	History   []StatusHistoryDTO  `gorm:"foreignKey:OrderID"`
	Lifecycle []LifecycleEventDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order item row. Status is stored as its wire-format
// name so the claim queue and read queries can filter without decoding enums.
type ItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index"`
	ProductID          uuid.UUID `gorm:"type:uuid"`
	ProductName        string
	Unit               string
	UnitPrice          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity           int
	TotalPrice         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status             string          `gorm:"index"`
	AssignedMerchantID *uuid.UUID      `gorm:"type:uuid;index"`
	Position           int

	Rejections []ItemRejectionDTO `gorm:"foreignKey:ItemID"`
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// ItemRejectionDTO records that a merchant declined an item. The composite key
// makes a repeated decline by the same merchant a no-op at the database level.
type ItemRejectionDTO struct {
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for item rejection entities.
func (ItemRejectionDTO) TableName() string {
	return "order_item_rejections"
}

// StatusHistoryDTO is one append-only item status change row. The serial id
// breaks timestamp ties so replays keep insertion order.
type StatusHistoryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ItemID    uuid.UUID `gorm:"type:uuid"`
	Status    string
	Note      string
	CreatedAt time.Time
}

// TableName specifies the database table name for status history entities.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// LifecycleEventDTO is one append-only audit row recording who did what.
type LifecycleEventDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	EventType   string
	Description string
	ActorID     uuid.UUID `gorm:"type:uuid"`
	ActorRole   string
	CreatedAt   time.Time
}

// TableName specifies the database table name for lifecycle event entities.
func (LifecycleEventDTO) TableName() string {
	return "order_lifecycle_events"
}

// fromDomain converts an order domain aggregate to its database representation,
// including items, rejections, and both audit sequences.
func fromDomain(aggregate *order.Order) OrderDTO {
	totals := aggregate.Totals()
	address := aggregate.Address()

	dto := OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderNumber:    aggregate.OrderNumber(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		Street:         address.Street(),
		City:           address.City(),
		PostalCode:     address.PostalCode(),
		Phone:          address.Phone(),
		Subtotal:       totals.Subtotal.Decimal(),
		Tax:            totals.Tax.Decimal(),
		DeliveryCharge: totals.DeliveryCharge.Decimal(),
		PlatformFee:    totals.PlatformFee.Decimal(),
		TotalAmount:    totals.TotalAmount.Decimal(),
		PaymentMethod:  aggregate.PaymentMethod().String(),
		DeliveryNotes:  aggregate.DeliveryNotes(),
		IdempotencyKey: aggregate.IdempotencyKey(),
		CreatedAt:      aggregate.CreatedAt(),
	}

	for position, item := range aggregate.Items() {
		dto.Items = append(dto.Items, itemFromDomain(aggregate.ID(), item, position))
	}
	dto.History = historyRowsFromDomain(aggregate.ID(), aggregate.StatusHistory())
	dto.Lifecycle = lifecycleRowsFromDomain(aggregate.ID(), aggregate.Lifecycle())

	return dto
}

// historyRowsFromDomain converts status history entries to rows for one order.
func historyRowsFromDomain(orderID kernel.UUID, entries []order.StatusHistoryEntry) []StatusHistoryDTO {
	rows := make([]StatusHistoryDTO, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, StatusHistoryDTO{
			OrderID:   orderID.Bytes(),
			ItemID:    entry.ItemID.Bytes(),
			Status:    entry.Status.String(),
			Note:      entry.Note,
			CreatedAt: entry.Timestamp,
		})
	}
	return rows
}

// lifecycleRowsFromDomain converts lifecycle events to rows for one order.
func lifecycleRowsFromDomain(orderID kernel.UUID, events []order.LifecycleEvent) []LifecycleEventDTO {
	rows := make([]LifecycleEventDTO, 0, len(events))
	for _, event := range events {
		rows = append(rows, LifecycleEventDTO{
			OrderID:     orderID.Bytes(),
			EventType:   event.EventType,
			Description: event.EventDescription,
			ActorID:     event.TriggeredBy.ID.Bytes(),
			ActorRole:   string(event.TriggeredBy.Role),
			CreatedAt:   event.Timestamp,
		})
	}
	return rows
}

// rejectionRowsFromDomain collects every per-merchant rejection across the
// aggregate's items. The composite primary key plus ON CONFLICT DO NOTHING
// keeps re-inserting existing rows harmless.
func rejectionRowsFromDomain(aggregate *order.Order) []ItemRejectionDTO {
	rows := make([]ItemRejectionDTO, 0)
	for _, item := range aggregate.Items() {
		for _, merchant := range item.RejectedBy() {
			rows = append(rows, ItemRejectionDTO{
				ItemID:     item.ID().Bytes(),
				MerchantID: merchant.Bytes(),
			})
		}
	}
	return rows
}

// itemFromDomain converts one order item to its database representation.
func itemFromDomain(orderID kernel.UUID, item *order.Item, position int) ItemDTO {
	var merchantID *uuid.UUID
	if id := item.AssignedMerchant(); id != nil {
		raw := id.Bytes()
		merchantID = &raw
	}

	dto := ItemDTO{
		ID:                 item.ID().Bytes(),
		OrderID:            orderID.Bytes(),
		ProductID:          item.ProductID().Bytes(),
		ProductName:        item.ProductName(),
		Unit:               item.Unit(),
		UnitPrice:          item.UnitPrice().Decimal(),
		Quantity:           item.Quantity(),
		TotalPrice:         item.TotalPrice().Decimal(),
		Status:             item.Status().String(),
		AssignedMerchantID: merchantID,
		Position:           position,
	}

	for _, merchant := range item.RejectedBy() {
		dto.Rejections = append(dto.Rejections, ItemRejectionDTO{
			ItemID:     item.ID().Bytes(),
			MerchantID: merchant.Bytes(),
		})
	}

	return dto
}

// toDomain converts a fully loaded DTO tree back to an order domain aggregate
// using RestoreOrder, so no creation audit entries are re-appended.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Street, dto.City, dto.PostalCode, dto.Phone)
	if err != nil {
		return nil, err
	}

	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history, err := historyToDomain(dto.History)
	if err != nil {
		return nil, err
	}
	lifecycle, err := lifecycleToDomain(dto.Lifecycle)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		address,
		items,
		totals,
		order.PaymentMethod(dto.PaymentMethod),
		dto.DeliveryNotes,
		dto.IdempotencyKey,
		dto.CreatedAt,
		history,
		lifecycle,
	)
}

func totalsToDomain(dto OrderDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return order.Totals{}, err
	}
	deliveryCharge, err := kernel.NewMoney(dto.DeliveryCharge)
	if err != nil {
		return order.Totals{}, err
	}
	platformFee, err := kernel.NewMoney(dto.PlatformFee)
	if err != nil {
		return order.Totals{}, err
	}
	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return order.Totals{}, err
	}

	return order.NewTotals(subtotal, tax, deliveryCharge, platformFee, totalAmount)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	status, err := order.ItemStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var merchantID *kernel.UUID
	if dto.AssignedMerchantID != nil {
		mID, merchantErr := kernel.UUIDFromBytes((*dto.AssignedMerchantID)[:])
		if merchantErr != nil {
			return nil, merchantErr
		}
		merchantID = &mID
	}

	rejectedBy := make([]kernel.UUID, 0, len(dto.Rejections))
	for _, rejection := range dto.Rejections {
		merchant, rejectionErr := kernel.UUIDFromBytes(rejection.MerchantID[:])
		if rejectionErr != nil {
			return nil, rejectionErr
		}
		rejectedBy = append(rejectedBy, merchant)
	}

	return order.RestoreItem(
		id, productID, dto.ProductName, dto.Unit, unitPrice, dto.Quantity,
		status, merchantID, rejectedBy,
	)
}

func historyToDomain(dtos []StatusHistoryDTO) ([]order.StatusHistoryEntry, error) {
	entries := make([]order.StatusHistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
		if err != nil {
			return nil, err
		}
		status, err := order.ItemStatusFromString(dto.Status)
		if err != nil {
			return nil, err
		}
		entries = append(entries, order.StatusHistoryEntry{
			ItemID:    itemID,
			Status:    status,
			Timestamp: dto.CreatedAt,
			Note:      dto.Note,
		})
	}
	return entries, nil
}

func lifecycleToDomain(dtos []LifecycleEventDTO) ([]order.LifecycleEvent, error) {
	events := make([]order.LifecycleEvent, 0, len(dtos))
	for _, dto := range dtos {
		actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
		if err != nil {
			return nil, err
		}
		events = append(events, order.LifecycleEvent{
			EventType:        dto.EventType,
			Timestamp:        dto.CreatedAt,
			EventDescription: dto.Description,
			TriggeredBy: order.Actor{
				ID:   actorID,
				Role: order.ActorRole(dto.ActorRole),
			},
		})
	}
	return events, nil
}
