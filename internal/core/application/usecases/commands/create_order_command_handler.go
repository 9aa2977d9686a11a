package commands

import (
	"context"
	"errors"
	"log/slog"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/core/domain/model/product"
	"constructmart/internal/core/domain/services"
	"constructmart/internal/core/ports"
	"constructmart/internal/pkg/errs"
)

// CreateOrderCommandHandler handles checkout: it recomputes every amount
// server-side, decrements stock, and creates the order atomically.
//
// Validation order, so clients get the highest-priority failure first:
//  1. request shape (done by the command constructor)
//  2. minimum order value against the recomputed subtotal
//  3. stock for every line, reporting all shortages together
//  4. delivery address
//
// Checkout is all-or-nothing: any failure leaves stock and orders untouched.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.EventPublisher
	log        *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// The publisher may be nil when eventing is disabled.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	publisher ports.EventPublisher,
	log *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

// checkoutAttempts bounds the retry loop around order insertion. A retry only
// happens on a unique-index collision, so one retry is almost always enough.
const checkoutAttempts = 3

// Handle processes the checkout command and returns the created order.
//
// When the command carries an idempotency key the customer already used, the
// original order is returned unchanged and nothing else happens; a retried
// request can never create a duplicate order or decrement stock twice.
//
// The whole attempt runs in one transaction and is retried, with a fresh
// transaction and a fresh order number, when the insert collides on a unique
// index: a random order-number collision gets a new number, and a concurrent
// submit of the same idempotency key finds the winner on the re-read.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < checkoutAttempts; attempt++ {
		created, err := h.checkout(ctx, cmd)
		if err == nil {
			return created, nil
		}
		if !isUniqueCollision(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// isUniqueCollision reports whether checkout failed on one of the order
// table's unique indexes, which a fresh attempt can resolve.
func isUniqueCollision(err error) bool {
	var conflictErr *errs.ConflictError
	if !errors.As(err, &conflictErr) {
		return false
	}
	return conflictErr.ParamName == "orderNumber" || conflictErr.ParamName == "idempotencyKey"
}

// checkout runs one full checkout attempt in its own transaction.
func (h *CreateOrderCommandHandler) checkout(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if cmd.IdempotencyKey() != "" {
		existing, err := orderRepo.GetByIdempotencyKey(ctx, cmd.CustomerID(), cmd.IdempotencyKey())
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	platformSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	policy, err := services.PolicyFromSettings(platformSettings)
	if err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	products, err := h.loadProducts(ctx, productRepo, cmd.Lines())
	if err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Lines(), products)
	if err != nil {
		return nil, err
	}

	subtotal := services.SubtotalOf(items)
	if err = policy.ValidateMinimum(subtotal); err != nil {
		return nil, err
	}

	if err = reserveStock(cmd.Lines(), products); err != nil {
		return nil, err
	}

	address, err := order.NewAddress(cmd.Street(), cmd.City(), cmd.PostalCode(), cmd.Phone())
	if err != nil {
		return nil, err
	}

	quote, err := policy.Quote(subtotal)
	if err != nil {
		return nil, err
	}
	totals, err := quote.Totals()
	if err != nil {
		return nil, err
	}

	orderNumber, err := order.GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(), orderNumber, cmd.CustomerID(), address,
		items, totals, cmd.PaymentMethod(), cmd.DeliveryNotes(), cmd.IdempotencyKey(),
	)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishOrderChanged(ctx, h.publisher, h.log, newOrder, order.EventOrderCreated, nil,
		order.Actor{ID: cmd.CustomerID(), Role: order.ActorRoleCustomer})

	return newOrder, nil
}

// loadProducts fetches every requested product in one batch. A missing or
// unknown product fails the whole checkout.
func (h *CreateOrderCommandHandler) loadProducts(
	ctx context.Context,
	productRepo ports.ProductRepository,
	lines []OrderLine,
) (map[kernel.UUID]*product.Product, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	fetched, err := productRepo.GetBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product, len(fetched))
	for _, p := range fetched {
		products[p.ID()] = p
	}
	for _, line := range lines {
		if _, ok := products[line.ProductID]; !ok {
			return nil, errs.NewObjectNotFoundError("product", line.ProductID.String())
		}
	}
	return products, nil
}

// buildItems snapshots name, unit, and price from the catalog into order items.
func buildItems(lines []OrderLine, products map[kernel.UUID]*product.Product) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		p := products[line.ProductID]
		item, err := order.NewItem(
			kernel.NewUUID(), p.ID(), p.Name(), p.Unit(), p.Price(), line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// reserveStock checks every line first so the error reports all shortages at
// once, then decrements. The surrounding transaction holds row locks, so a
// concurrent checkout cannot interleave between check and decrement.
func reserveStock(lines []OrderLine, products map[kernel.UUID]*product.Product) error {
	var shortages []errs.StockShortage
	for _, line := range lines {
		p := products[line.ProductID]
		if !p.IsActive() || !p.HasStock(line.Quantity) {
			shortages = append(shortages, errs.StockShortage{
				ProductID: p.ID().String(),
				Requested: line.Quantity,
				Available: p.StockQuantity(),
			})
		}
	}
	if len(shortages) > 0 {
		return errs.NewInsufficientStockError(shortages)
	}

	for _, line := range lines {
		if err := products[line.ProductID].ReserveStock(line.Quantity); err != nil {
			return err
		}
	}
	return nil
}
