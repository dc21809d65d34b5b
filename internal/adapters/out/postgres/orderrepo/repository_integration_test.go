package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL database, including the conditional item writes that make
// claims race-safe.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	stored := suite.createTestOrder(2)

	suite.Require().NoError(suite.repository.Add(ctx, stored))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(stored.ID()))
	suite.True(loaded.ClientID().IsEqual(stored.ClientID()))
	suite.Equal(stored.TotalAmount().Amount(), loaded.TotalAmount().Amount())
	suite.Equal("mobile_money", loaded.PaymentMethod())
	suite.False(loaded.PaymentProcessed())
	suite.Len(loaded.Items(), 2)
	for _, item := range loaded.Items() {
		suite.Equal(order.StatusCreated, item.Status())
		suite.Nil(item.ClaimedBy())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID_ReturnsOwningOrder() {
	ctx := context.Background()
	stored := suite.createTestOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	itemID := stored.Items()[1].ID()
	loaded, err := suite.repository.GetByItemID(ctx, itemID)
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(stored.ID()))

	_, err = loaded.Item(itemID)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID_NotFound() {
	_, err := suite.repository.GetByItemID(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsPaymentProcessed() {
	ctx := context.Background()
	stored := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	suite.Require().NoError(stored.MarkPaymentProcessed())
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.True(loaded.PaymentProcessed())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItem_ClaimPersists() {
	ctx := context.Background()
	stored := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	travelerID := kernel.NewUUID()
	item := stored.Items()[0]
	suite.Require().NoError(item.Claim(travelerID))

	suite.Require().NoError(suite.repository.UpdateItem(ctx, item, order.StatusCreated))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	loadedItem := loaded.Items()[0]
	suite.Equal(order.StatusAssigned, loadedItem.Status())
	suite.Require().NotNil(loadedItem.ClaimedBy())
	suite.True(loadedItem.ClaimedBy().IsEqual(travelerID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItem_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()
	stored := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, stored))
	itemID := stored.Items()[0].ID()

	// Two travelers load independent copies of the same unclaimed item.
	firstOrder, err := suite.repository.GetByItemID(ctx, itemID)
	suite.Require().NoError(err)
	firstItem, err := firstOrder.Item(itemID)
	suite.Require().NoError(err)

	secondOrder, err := suite.repository.GetByItemID(ctx, itemID)
	suite.Require().NoError(err)
	secondItem, err := secondOrder.Item(itemID)
	suite.Require().NoError(err)

	winner := kernel.NewUUID()
	loser := kernel.NewUUID()
	suite.Require().NoError(firstItem.Claim(winner))
	suite.Require().NoError(secondItem.Claim(loser))

	suite.Require().NoError(suite.repository.UpdateItem(ctx, firstItem, order.StatusCreated))

	err = suite.repository.UpdateItem(ctx, secondItem, order.StatusCreated)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	loaded, err := suite.repository.GetByItemID(ctx, itemID)
	suite.Require().NoError(err)
	loadedItem, err := loaded.Item(itemID)
	suite.Require().NoError(err)
	suite.Require().NotNil(loadedItem.ClaimedBy())
	suite.True(loadedItem.ClaimedBy().IsEqual(winner))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItem_StaleStatus_Conflict() {
	ctx := context.Background()
	stored := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	travelerID := kernel.NewUUID()
	item := stored.Items()[0]
	suite.Require().NoError(item.Claim(travelerID))
	suite.Require().NoError(suite.repository.UpdateItem(ctx, item, order.StatusCreated))

	suite.Require().NoError(item.MarkShipped(travelerID))
	// Writer expects the row to still be in Assigned, but it already moved on.
	suite.Require().NoError(suite.repository.UpdateItem(ctx, item, order.StatusAssigned))

	err := suite.repository.UpdateItem(ctx, item, order.StatusAssigned)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItem_MissingRow_NotFound() {
	ctx := context.Background()
	stored := suite.createTestOrder(1)

	item := stored.Items()[0]
	suite.Require().NoError(item.Claim(kernel.NewUUID()))

	err := suite.repository.UpdateItem(ctx, item, order.StatusCreated)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItem_FullDeliveryLifecyclePersists() {
	ctx := context.Background()
	stored := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	travelerID := kernel.NewUUID()
	item := stored.Items()[0]

	suite.Require().NoError(item.Claim(travelerID))
	suite.Require().NoError(suite.repository.UpdateItem(ctx, item, order.StatusCreated))

	suite.Require().NoError(item.MarkShipped(travelerID))
	suite.Require().NoError(suite.repository.UpdateItem(ctx, item, order.StatusAssigned))

	suite.Require().NoError(item.ConfirmByTraveler(travelerID))
	suite.Require().NoError(suite.repository.UpdateItem(ctx, item, order.StatusShipped))

	suite.Require().NoError(item.ConfirmByClient())
	suite.Require().NoError(suite.repository.UpdateItem(ctx, item, order.StatusTravelerConfirmed))

	suite.Require().NoError(item.AttachProof(travelerID, "https://proofs.example.com/receipt.jpg"))
	suite.Require().NoError(suite.repository.UpdateItem(ctx, item, order.StatusClientConfirmed))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	loadedItem := loaded.Items()[0]
	suite.Equal(order.StatusCompleted, loadedItem.Status())
	suite.Equal("https://proofs.example.com/receipt.jpg", loadedItem.ProofURL())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(itemCount int) *order.Order {
	orderID := kernel.NewUUID()
	destination, err := kernel.NewDestination("Kenya", "", "Nairobi")
	suite.Require().NoError(err)

	items := make([]*order.Item, 0, itemCount)
	for range itemCount {
		price, moneyErr := kernel.NewMoney(5000)
		suite.Require().NoError(moneyErr)
		reward, moneyErr := kernel.NewMoney(1000)
		suite.Require().NoError(moneyErr)

		item, itemErr := order.NewItem(
			kernel.NewUUID(),
			orderID,
			kernel.NewUUID(),
			destination,
			time.Now().AddDate(0, 0, 14),
			price,
			reward,
		)
		suite.Require().NoError(itemErr)
		items = append(items, item)
	}

	stored, err := order.NewOrder(orderID, kernel.NewUUID(), "mobile_money", items)
	suite.Require().NoError(err)
	return stored
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
