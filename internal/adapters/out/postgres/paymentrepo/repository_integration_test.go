package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/disputerepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
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

// PaymentRepositoryIntegrationTestSuite verifies escrow persistence against a
// real PostgreSQL database, including the status-guarded writes and the
// releasable-payment scan used by the payout job.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	repository  *paymentrepo.GormPaymentRepository
	orderRepo   *orderrepo.GormOrderRepository
	disputeRepo *disputerepo.GormDisputeRepository
	tracker     *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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
		&paymentrepo.PaymentDTO{},
		&disputerepo.DisputeDTO{},
	))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE disputes, payments, order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.disputeRepo = disputerepo.NewGormDisputeRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	stored := suite.createTestPayment()

	suite.Require().NoError(suite.repository.Add(ctx, stored))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(stored.ID()))
	suite.True(loaded.OrderID().IsEqual(stored.OrderID()))
	suite.True(loaded.ItemID().IsEqual(stored.ItemID()))
	suite.Equal(int64(5000), loaded.ProductAmount().Amount())
	suite.Equal(int64(1000), loaded.MarkupAmount().Amount())
	suite.Equal(int64(6000), loaded.TotalAmount().Amount())
	suite.Equal(payment.StatusPending, loaded.Status())
	suite.Nil(loaded.TravelerID())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByItemID() {
	ctx := context.Background()
	stored := suite.createTestPayment()
	suite.Require().NoError(suite.repository.Add(ctx, stored))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPayment()))

	loaded, err := suite.repository.GetByItemID(ctx, stored.ItemID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(stored.ID()))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetAllByOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	first := suite.createTestPaymentFor(orderID, clientID)
	second := suite.createTestPaymentFor(orderID, clientID)
	other := suite.createTestPayment()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	payments, err := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Len(payments, 2)
	for _, p := range payments {
		suite.True(p.OrderID().IsEqual(orderID))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_ReleasePersists() {
	ctx := context.Background()
	stored := suite.createTestPayment()
	suite.Require().NoError(stored.MoveToEscrow())
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	travelerID := kernel.NewUUID()
	suite.Require().NoError(stored.Release(travelerID))
	suite.Require().NoError(suite.repository.Update(ctx, stored, payment.StatusEscrow))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.StatusReleased, loaded.Status())
	suite.Require().NotNil(loaded.TravelerID())
	suite.True(loaded.TravelerID().IsEqual(travelerID))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_ConcurrentSettlement_OneWinner() {
	ctx := context.Background()
	stored := suite.createTestPayment()
	suite.Require().NoError(stored.MoveToEscrow())
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	// A release and a refund race on independent copies of the same escrow.
	releasing, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	refunding, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(releasing.Release(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, releasing, payment.StatusEscrow))

	suite.Require().NoError(refunding.Refund())
	err = suite.repository.Update(ctx, refunding, payment.StatusEscrow)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.StatusReleased, loaded.Status())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_MissingRow_NotFound() {
	ctx := context.Background()
	stored := suite.createTestPayment()
	suite.Require().NoError(stored.MoveToEscrow())

	err := suite.repository.Update(ctx, stored, payment.StatusPending)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetFirstReleasable_FindsCompletedEscrow() {
	ctx := context.Background()
	stored := suite.seedEscrowedDelivery(order.StatusCompleted)

	found, err := suite.repository.GetFirstReleasable(ctx)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(stored.ID()))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetFirstReleasable_SkipsUnfinishedDelivery() {
	suite.seedEscrowedDelivery(order.StatusShipped)

	_, err := suite.repository.GetFirstReleasable(context.Background())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetFirstReleasable_SkipsDisputedPayment() {
	ctx := context.Background()
	stored := suite.seedEscrowedDelivery(order.StatusCompleted)

	blocking, err := dispute.NewDispute(
		kernel.NewUUID(),
		stored.ID(),
		stored.ClientID(),
		kernel.NewUUID(),
		dispute.ReasonItemDamaged,
		nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.disputeRepo.Add(ctx, blocking))

	_, err = suite.repository.GetFirstReleasable(ctx)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetFirstReleasable_EmptyDatabase() {
	_, err := suite.repository.GetFirstReleasable(context.Background())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) createTestPayment() *payment.Payment {
	return suite.createTestPaymentFor(kernel.NewUUID(), kernel.NewUUID())
}

func (suite *PaymentRepositoryIntegrationTestSuite) createTestPaymentFor(
	orderID kernel.UUID,
	clientID kernel.UUID,
) *payment.Payment {
	productAmount, err := kernel.NewMoney(5000)
	suite.Require().NoError(err)
	markupAmount, err := kernel.NewMoney(1000)
	suite.Require().NoError(err)

	stored, err := payment.NewPayment(
		kernel.NewUUID(),
		orderID,
		kernel.NewUUID(),
		clientID,
		kernel.NewUUID(),
		productAmount,
		markupAmount,
	)
	suite.Require().NoError(err)
	return stored
}

// seedEscrowedDelivery persists an order whose single item sits in the given
// status alongside its escrowed payment, wired together by item ID.
func (suite *PaymentRepositoryIntegrationTestSuite) seedEscrowedDelivery(
	itemStatus order.DeliveryStatus,
) *payment.Payment {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	destination, err := kernel.NewDestination("Kenya", "", "Nairobi")
	suite.Require().NoError(err)
	price, err := kernel.NewMoney(5000)
	suite.Require().NoError(err)
	reward, err := kernel.NewMoney(1000)
	suite.Require().NoError(err)

	item, err := order.NewItem(
		kernel.NewUUID(),
		orderID,
		kernel.NewUUID(),
		destination,
		time.Now().AddDate(0, 0, 14),
		price,
		reward,
	)
	suite.Require().NoError(err)

	stored, err := order.NewOrder(orderID, clientID, "mobile_money", []*order.Item{item})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, stored))

	travelerID := kernel.NewUUID()
	if itemStatus != order.StatusCreated {
		suite.Require().NoError(item.Claim(travelerID))
	}
	if itemStatus >= order.StatusShipped {
		suite.Require().NoError(item.MarkShipped(travelerID))
	}
	if itemStatus >= order.StatusTravelerConfirmed {
		suite.Require().NoError(item.ConfirmByTraveler(travelerID))
	}
	if itemStatus >= order.StatusClientConfirmed {
		suite.Require().NoError(item.ConfirmByClient())
	}
	if itemStatus == order.StatusCompleted {
		suite.Require().NoError(item.AttachProof(travelerID, "https://proofs.example.com/receipt.jpg"))
	}
	if itemStatus != order.StatusCreated {
		suite.Require().NoError(suite.orderRepo.UpdateItem(ctx, item, order.StatusCreated))
	}

	escrowed, err := payment.NewPayment(
		kernel.NewUUID(),
		orderID,
		item.ID(),
		clientID,
		item.ProductID(),
		price,
		reward,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(escrowed.MoveToEscrow())
	suite.Require().NoError(suite.repository.Add(ctx, escrowed))

	return escrowed
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
