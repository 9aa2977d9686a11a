package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"constructmart/internal/core/application/usecases/commands"
	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/core/domain/model/product"
)

func assignedOrder(t *testing.T, p *product.Product) (*order.Order, kernel.UUID, kernel.UUID) {
	t.Helper()
	aggregate, customerID := buildExistingOrder(t, p)
	merchantID := kernel.NewUUID()
	require.NoError(t, aggregate.AssignItem(
		aggregate.Items()[0].ID(), order.Actor{ID: merchantID, Role: order.ActorRoleMerchant}))
	return aggregate, customerID, merchantID
}

func TestUpdateItemStatusCommandHandler_Handle_Forward(t *testing.T) {
	ctx := t.Context()
	p := testCatalogProduct(t, "350.00", 100)
	aggregate, _, merchantID := assignedOrder(t, p)
	item := aggregate.Items()[0]

	cmd, err := commands.NewUpdateItemStatusCommand(
		aggregate.ID(), item.ID(), "processing", "", merchantID, "merchant")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemStatusCommandHandler(factory, nil, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.ItemStatusProcessing, item.Status())
	repo.AssertExpectations(t)
}

func TestUpdateItemStatusCommandHandler_Handle_CancelReleasesStock(t *testing.T) {
	ctx := t.Context()
	p := testCatalogProduct(t, "350.00", 98)
	aggregate, customerID, _ := assignedOrder(t, p)
	item := aggregate.Items()[0]

	cmd, err := commands.NewUpdateItemStatusCommand(
		aggregate.ID(), item.ID(), "cancelled", "site closed", customerID, "customer")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	productRepo.On("Update", ctx, p).Return(nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemStatusCommandHandler(factory, nil, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.ItemStatusCancelled, item.Status())
	assert.Equal(t, 100, p.StockQuantity(), "cancelled units go back to stock")
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestUpdateItemStatusCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	p := testCatalogProduct(t, "350.00", 100)
	aggregate, _, _ := assignedOrder(t, p)
	item := aggregate.Items()[0]

	cmd, err := commands.NewUpdateItemStatusCommand(
		aggregate.ID(), item.ID(), "processing", "", kernel.NewUUID(), "merchant")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemStatusCommandHandler(factory, nil, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.ItemStatusAssigned, item.Status(), "status must not change")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateItemStatusCommandHandler_Handle_AdminTerminalReject(t *testing.T) {
	ctx := t.Context()
	p := testCatalogProduct(t, "350.00", 100)
	aggregate, _ := buildExistingOrder(t, p)
	item := aggregate.Items()[0]

	cmd, err := commands.NewUpdateItemStatusCommand(
		aggregate.ID(), item.ID(), "rejected", "", kernel.NewUUID(), "admin")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemStatusCommandHandler(factory, nil, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.ItemStatusRejected, item.Status())
}
