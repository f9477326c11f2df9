package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"shopadmin/internal/adapters/out/postgres/orderrepo"
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	// Payment methods are reference data seeded by migrations in production.
	suite.Require().NoError(db.Exec(
		"INSERT INTO payment_methods (id, name) VALUES (1, 'COD'), (2, 'Bank transfer')").Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Nguyen Van A", retrieved.CustomerName())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
	suite.True(retrieved.PaymentMethod().IsCod())
	suite.Nil(retrieved.Shipper())
	suite.Len(retrieved.Items(), 1)
	suite.Equal(int64(90000), retrieved.TotalCents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	testCases := []struct {
		name          string
		initialStatus order.Status
		setupShipper  bool
		mutate        func(*order.Order)
		verify        func(*order.Order)
	}{
		{
			name:          "pending to confirmed",
			initialStatus: order.Pending,
			mutate: func(o *order.Order) {
				_, err := o.ChangeStatus(order.Confirmed)
				suite.Require().NoError(err)
			},
			verify: func(o *order.Order) {
				suite.Equal(order.Confirmed, o.Status())
			},
		},
		{
			name:          "shipping to delivered keeps shipper",
			initialStatus: order.Shipping,
			setupShipper:  true,
			mutate: func(o *order.Order) {
				_, err := o.ChangeStatus(order.Delivered)
				suite.Require().NoError(err)
			},
			verify: func(o *order.Order) {
				suite.Equal(order.Delivered, o.Status())
				suite.NotNil(o.Shipper())
			},
		},
		{
			name:          "cancellation persists the reason",
			initialStatus: order.Pending,
			mutate: func(o *order.Order) {
				_, err := o.Cancel("customer request")
				suite.Require().NoError(err)
			},
			verify: func(o *order.Order) {
				suite.Equal(order.Cancelled, o.Status())
				suite.Require().NotNil(o.CancellationReason())
				suite.Equal("customer request", *o.CancellationReason())
			},
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			var shipperID *kernel.UUID
			if tc.setupShipper {
				sid := kernel.NewUUID()
				shipperID = &sid
			}

			testOrder := suite.createTestOrderWithStatus(tc.initialStatus, shipperID)
			suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
			suite.Require().NoError(suite.repository.Add(ctx, testOrder))

			tc.mutate(testOrder)
			suite.Require().NoError(suite.repository.Update(ctx, testOrder))

			retrieved, err := suite.repository.Get(ctx, testOrder.ID())
			suite.Require().NoError(err)
			tc.verify(retrieved)

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CodConfirmationPersistsPaymentStatus() {
	ctx := context.Background()

	sid := kernel.NewUUID()
	testOrder := suite.createTestOrderWithStatus(order.Delivered, &sid)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ConfirmCodPayment())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PaymentPaid, retrieved.PaymentStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestOrder()

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "record not found")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingOlderThan_FiltersByStatusAndAge() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate",
		mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	stalePending := suite.createTestOrderAt(order.Pending, time.Now().UTC().Add(-72*time.Hour))
	freshPending := suite.createTestOrderAt(order.Pending, time.Now().UTC().Add(-time.Hour))
	staleConfirmed := suite.createTestOrderAt(order.Confirmed, time.Now().UTC().Add(-72*time.Hour))

	suite.Require().NoError(suite.repository.Add(ctx, stalePending))
	suite.Require().NoError(suite.repository.Add(ctx, freshPending))
	suite.Require().NoError(suite.repository.Add(ctx, staleConfirmed))

	stale, err := suite.repository.GetAllPendingOlderThan(ctx, time.Now().UTC().Add(-48*time.Hour))
	suite.Require().NoError(err)

	suite.Require().Len(stale, 1)
	suite.Equal(stalePending.ID(), stale[0].ID())
	suite.Equal(order.Pending, stale[0].Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingOlderThan_NoStaleOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate",
		mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	fresh := suite.createTestOrderAt(order.Pending, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	stale, err := suite.repository.GetAllPendingOlderThan(ctx, time.Now().UTC().Add(-48*time.Hour))
	suite.Require().NoError(err)
	suite.Empty(stale)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) testItems() []order.Item {
	item, err := order.NewItem(kernel.NewUUID(), 2, 45000)
	suite.Require().NoError(err)
	return []order.Item{item}
}

func (suite *OrderRepositoryIntegrationTestSuite) codMethod() order.PaymentMethod {
	method, err := order.NewPaymentMethod(1, "COD")
	suite.Require().NoError(err)
	return method
}

// createTestOrder creates a fresh Pending COD order.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "Nguyen Van A", suite.testItems(), suite.codMethod())
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	status order.Status, shipperID *kernel.UUID,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), "Nguyen Van A", suite.testItems(),
		status, shipperID, suite.codMethod(), order.PaymentPending,
		nil, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderAt(
	status order.Status, createdAt time.Time,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), "Nguyen Van A", suite.testItems(),
		status, nil, suite.codMethod(), order.PaymentPending,
		nil, createdAt)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
