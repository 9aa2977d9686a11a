package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"constructmart/internal/adapters/out/postgres/orderrepo"
	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/order"
	"constructmart/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance, including the claim race gate.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.ItemRejectionDTO{},
		&orderrepo.StatusHistoryDTO{},
		&orderrepo.LifecycleEventDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_lifecycle_events, order_status_history, order_item_rejections, order_items, orders",
	).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_Roundtrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("key-roundtrip")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.OrderNumber(), retrieved.OrderNumber())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal(testOrder.Address().Street(), retrieved.Address().Street())
	suite.Equal(testOrder.Totals().TotalAmount.String(), retrieved.Totals().TotalAmount.String())
	suite.Equal(testOrder.PaymentMethod(), retrieved.PaymentMethod())
	suite.Equal("key-roundtrip", retrieved.IdempotencyKey())

	suite.Require().Len(retrieved.Items(), 2)
	for i, item := range retrieved.Items() {
		suite.Equal(testOrder.Items()[i].ID(), item.ID())
		suite.Equal(testOrder.Items()[i].ProductName(), item.ProductName())
		suite.Equal(order.ItemStatusPending, item.Status())
		suite.Nil(item.AssignedMerchant())
	}

	// one creation lifecycle entry, one pending history entry per item
	suite.Len(retrieved.Lifecycle(), 1)
	suite.Len(retrieved.StatusHistory(), 2)

	status, err := retrieved.Status()
	suite.Require().NoError(err)
	suite.Equal(order.OrderStatusPending, status)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByIdempotencyKey() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("key-42")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.GetByIdempotencyKey(ctx, testOrder.CustomerID(), "key-42")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	// same key, different customer
	_, err = suite.repository.GetByIdempotencyKey(ctx, kernel.NewUUID(), "key-42")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// unknown key
	_, err = suite.repository.GetByIdempotencyKey(ctx, testOrder.CustomerID(), "never-used")
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimItem_FirstClaimWins() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("")
	itemID := testOrder.Items()[0].ID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	winner := kernel.NewUUID()
	loser := kernel.NewUUID()

	suite.Require().NoError(suite.repository.ClaimItem(ctx, testOrder.ID(), itemID, winner))

	err := suite.repository.ClaimItem(ctx, testOrder.ID(), itemID, loser)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	// sync the aggregate and persist its audit rows the way the handler does
	actor, err := order.NewActor(winner, order.ActorRoleMerchant)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AssignItem(itemID, actor))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	item, err := retrieved.Item(itemID)
	suite.Require().NoError(err)
	suite.Equal(order.ItemStatusAssigned, item.Status())
	suite.Require().NotNil(item.AssignedMerchant())
	suite.True(item.AssignedMerchant().IsEqual(winner))

	// the sibling item stays claimable
	sibling := retrieved.Items()[1]
	suite.Equal(order.ItemStatusPending, sibling.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimItem_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("")
	itemID := testOrder.Items()[0].ID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	const merchants = 8
	results := make([]error, merchants)
	start := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < merchants; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			<-start
			results[slot] = suite.repository.ClaimItem(ctx, testOrder.ID(), itemID, kernel.NewUUID())
		}(i)
	}
	close(start)
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		suite.ErrorIs(err, errs.ErrConflict)
	}
	suite.Equal(1, winners, "exactly one concurrent claim must win")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleAggregate_PreservesCommittedClaims() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("")
	firstItemID := testOrder.Items()[0].ID()
	secondItemID := testOrder.Items()[1].ID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// both merchants load the order before either claim lands
	firstView, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	secondView, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	firstMerchant, err := order.NewActor(kernel.NewUUID(), order.ActorRoleMerchant)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ClaimItem(ctx, testOrder.ID(), firstItemID, firstMerchant.ID))
	suite.Require().NoError(firstView.AssignItem(firstItemID, firstMerchant))
	suite.Require().NoError(suite.repository.Update(ctx, firstView))

	// the second merchant's view still shows the first item as pending; its
	// update must only touch the item it actually claimed
	secondMerchant, err := order.NewActor(kernel.NewUUID(), order.ActorRoleMerchant)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ClaimItem(ctx, testOrder.ID(), secondItemID, secondMerchant.ID))
	suite.Require().NoError(secondView.AssignItem(secondItemID, secondMerchant))
	suite.Require().NoError(suite.repository.Update(ctx, secondView))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	firstItem, err := retrieved.Item(firstItemID)
	suite.Require().NoError(err)
	suite.Equal(order.ItemStatusAssigned, firstItem.Status())
	suite.Require().NotNil(firstItem.AssignedMerchant())
	suite.True(firstItem.AssignedMerchant().IsEqual(firstMerchant.ID),
		"a stale aggregate must not revert a committed claim")

	secondItem, err := retrieved.Item(secondItemID)
	suite.Require().NoError(err)
	suite.Require().NotNil(secondItem.AssignedMerchant())
	suite.True(secondItem.AssignedMerchant().IsEqual(secondMerchant.ID))

	// two creation entries plus one per claim; nothing deleted or rewritten
	suite.Len(retrieved.StatusHistory(), 4)
	suite.Len(retrieved.Lifecycle(), 3)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConcurrentTransition_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("")
	itemID := testOrder.Items()[0].ID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	merchant, err := order.NewActor(kernel.NewUUID(), order.ActorRoleMerchant)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ClaimItem(ctx, testOrder.ID(), itemID, merchant.ID))
	suite.Require().NoError(testOrder.AssignItem(itemID, merchant))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Require().NoError(testOrder.AdvanceItem(itemID, order.ItemStatusProcessing, "", merchant))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// two views of the processing item race toward different targets
	shipView, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	cancelView, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(shipView.AdvanceItem(itemID, order.ItemStatusShipped, "", merchant))
	suite.Require().NoError(suite.repository.Update(ctx, shipView))

	suite.Require().NoError(cancelView.AdvanceItem(itemID, order.ItemStatusCancelled, "", merchant))
	err = suite.repository.Update(ctx, cancelView)
	suite.Require().ErrorIs(err, errs.ErrConflict, "the second writer must lose, not overwrite")

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	item, err := retrieved.Item(itemID)
	suite.Require().NoError(err)
	suite.Equal(order.ItemStatusShipped, item.Status(), "the first committed transition must stand")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimItem_NonPendingItem_ReturnsConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("")
	itemID := testOrder.Items()[0].ID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	merchant := kernel.NewUUID()
	suite.Require().NoError(suite.repository.ClaimItem(ctx, testOrder.ID(), itemID, merchant))

	// the same merchant claiming again still conflicts: the row is no longer pending
	err := suite.repository.ClaimItem(ctx, testOrder.ID(), itemID, merchant)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsRejectionsAndAudit() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("")
	itemID := testOrder.Items()[0].ID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	merchant, err := order.NewActor(kernel.NewUUID(), order.ActorRoleMerchant)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.RejectItem(itemID, merchant))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	item, err := retrieved.Item(itemID)
	suite.Require().NoError(err)
	suite.Equal(order.ItemStatusPending, item.Status())
	suite.True(item.HasRejected(merchant.ID))

	// decline adds a lifecycle entry but no status history entry
	suite.Len(retrieved.Lifecycle(), 2)
	suite.Len(retrieved.StatusHistory(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder(""))
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestOrder builds a two-item order with consistent totals.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(idempotencyKey string) *order.Order {
	address, err := order.NewAddress("12 Depot Road", "Pune", "411001", "+91-9000000000")
	suite.Require().NoError(err)

	unitPrice, err := kernel.MoneyFromString("100.00")
	suite.Require().NoError(err)

	items := make([]*order.Item, 0, 2)
	for _, name := range []string{"Cement OPC 53", "River Sand"} {
		item, itemErr := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), name, "bag", unitPrice, 1)
		suite.Require().NoError(itemErr)
		items = append(items, item)
	}

	totals := suite.createTestTotals("200.00", "36.00", "50.00", "5.00", "291.00")

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"CM-"+kernel.NewUUID().String()[:8],
		kernel.NewUUID(),
		address,
		items,
		totals,
		order.PaymentCashOnDelivery,
		"unload at gate 2",
		idempotencyKey,
	)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestTotals(
	subtotal, tax, delivery, fee, total string,
) order.Totals {
	parse := func(s string) kernel.Money {
		m, err := kernel.MoneyFromString(s)
		suite.Require().NoError(err)
		return m
	}

	totals, err := order.NewTotals(parse(subtotal), parse(tax), parse(delivery), parse(fee), parse(total))
	suite.Require().NoError(err)
	return totals
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
