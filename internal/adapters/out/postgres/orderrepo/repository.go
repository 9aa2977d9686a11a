package orderrepo

import (
	"context"
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key error.
const uniqueViolation = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items, rejections, and audit rows.
//
// Unique-index violations are translated into ConflictErrors naming the
// colliding field, so the checkout handler can tell a random order-number
// collision (regenerate and retry) from a concurrent idempotent replay
// (re-read the winner).
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err, dto)
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// translateUniqueViolation maps a Postgres duplicate-key error on one of the
// order unique indexes to a ConflictError; anything else passes through.
func translateUniqueViolation(err error, dto OrderDTO) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "idx_orders_order_number":
		return errs.NewConflictErrorWithCause("orderNumber", dto.OrderNumber, err)
	case "idx_orders_idempotency":
		return errs.NewConflictErrorWithCause("idempotencyKey", dto.IdempotencyKey, err)
	}
	return err
}

// Update persists changes to an existing order.
//
// The order header is immutable after checkout, so only child rows are
// written, and only the ones the aggregate actually changed:
//
//   - each accepted item transition becomes one guarded UPDATE that requires
//     the row to still hold the transition's from-status. A row some other
//     transaction moved in the meantime matches nothing, and the whole update
//     fails with a ConflictError instead of silently overwriting the winner.
//     A row already holding the target state is accepted, because ClaimItem
//     applies the pending->assigned write inside the same transaction.
//   - rejections and audit rows are insert-only; committed rows are never
//     rewritten or deleted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&OrderDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	for _, change := range aggregate.ItemChanges() {
		if err := r.applyItemChange(db, aggregate.ID(), change); err != nil {
			return err
		}
	}

	rejections := rejectionRowsFromDomain(aggregate)
	if len(rejections) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rejections).Error
		if err != nil {
			return err
		}
	}

	if err := r.appendAudit(db, aggregate); err != nil {
		return err
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// applyItemChange writes one item transition with its from-status as the
// guard. Zero matched rows means a concurrent transaction got there first.
func (r *GormOrderRepository) applyItemChange(db *gorm.DB, orderID kernel.UUID, change order.ItemChange) error {
	var merchant *uuid.UUID
	if id := change.AssignedMerchantID; id != nil {
		raw := id.Bytes()
		merchant = &raw
	}

	result := db.Model(&ItemDTO{}).
		Where(
			"id = ? AND order_id = ? AND (status = ? OR (status = ? AND assigned_merchant_id IS NOT DISTINCT FROM ?))",
			change.ItemID.Bytes(), orderID.Bytes(),
			change.FromStatus.String(), change.ToStatus.String(), merchant,
		).
		Updates(map[string]any{
			"status":               change.ToStatus.String(),
			"assigned_merchant_id": merchant,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("orderItem", change.ItemID.String())
	}
	return nil
}

// appendAudit inserts only the history and lifecycle rows appended since the
// aggregate was loaded. Both tables are append-only.
func (r *GormOrderRepository) appendAudit(db *gorm.DB, aggregate *order.Order) error {
	history := historyRowsFromDomain(aggregate.ID(), aggregate.NewStatusHistory())
	if len(history) > 0 {
		if err := db.Create(&history).Error; err != nil {
			return err
		}
	}

	lifecycle := lifecycleRowsFromDomain(aggregate.ID(), aggregate.NewLifecycle())
	if len(lifecycle) > 0 {
		if err := db.Create(&lifecycle).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a fully rehydrated order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.loadScope(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIdempotencyKey retrieves the order a customer previously created with
// the given key, enabling checkout retries to return the original order.
func (r *GormOrderRepository) GetByIdempotencyKey(
	ctx context.Context,
	customerID kernel.UUID,
	key string,
) (*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, errs.NewValueIsRequiredError("idempotencyKey")
	}

	var dto OrderDTO
	err := r.loadScope(ctx).
		First(&dto, "customer_id = ? AND idempotency_key = ?", customerID.Bytes(), key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", key)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimItem atomically assigns a pending, unassigned item to a merchant.
//
// The guarded update is the race gate behind AssignItem: whatever the
// in-memory aggregate saw, only the caller whose UPDATE matches the
// still-pending row wins. Everyone else gets a ConflictError and their
// transaction rolls back without touching the winner's claim.
func (r *GormOrderRepository) ClaimItem(ctx context.Context, orderID, itemID, merchantID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), itemID.Validate(), merchantID.Validate()); err != nil {
		return err
	}

	merchant := merchantID.Bytes()
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where(
			"id = ? AND order_id = ? AND status = ? AND assigned_merchant_id IS NULL",
			itemID.Bytes(), orderID.Bytes(), order.ItemStatusPending.String(),
		).
		Updates(map[string]any{
			"status":               order.ItemStatusAssigned.String(),
			"assigned_merchant_id": merchant,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("orderItem", "already assigned")
	}

	return nil
}

// loadScope preloads the full DTO tree in deterministic order.
func (r *GormOrderRepository) loadScope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Items.Rejections").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		Preload("Lifecycle", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		})
}
