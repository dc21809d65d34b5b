package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) UpdateItem(
	ctx context.Context, item *order.Item, expectedStatus order.DeliveryStatus,
) error {
	args := m.Called(ctx, item, expectedStatus)
	return args.Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(
	ctx context.Context, p *payment.Payment, expectedStatus payment.Status,
) error {
	args := m.Called(ctx, p, expectedStatus)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetFirstReleasable(ctx context.Context) (*payment.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDisputeRepository) Update(
	ctx context.Context, d *dispute.Dispute, expectedStatus dispute.Status,
) error {
	args := m.Called(ctx, d, expectedStatus)
	return args.Error(0)
}
func (m *MockDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}
func (m *MockDisputeRepository) GetBlockingByPayment(
	ctx context.Context, paymentID kernel.UUID,
) (*dispute.Dispute, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}
func (m *MockDisputeRepository) GetFirstOpen(ctx context.Context) (*dispute.Dispute, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCheckoutUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockDisputeUoW struct{ mock.Mock }

func (m *MockDisputeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDisputeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDisputeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDisputeUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}
func (m *MockDisputeUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockDisputeUoWFactory struct{ mock.Mock }

func (m *MockDisputeUoWFactory) Create() commands.DisputeUoW {
	args := m.Called()
	return args.Get(0).(commands.DisputeUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPayoutClient struct{ mock.Mock }

func (m *MockPayoutClient) Payout(
	ctx context.Context, destinationAccount string, amount kernel.Money,
) (string, error) {
	args := m.Called(ctx, destinationAccount, amount)
	return args.String(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(
	ctx context.Context, template string, recipient kernel.UUID, data map[string]any,
) error {
	args := m.Called(ctx, template, recipient, data)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustActor(t *testing.T, role kernel.Role) kernel.ActorContext {
	t.Helper()
	actor, err := kernel.NewActorContext(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func mustDestination(t *testing.T) kernel.Destination {
	t.Helper()
	d, err := kernel.NewDestination("Kenya", "", "Nairobi")
	require.NoError(t, err)
	return d
}

// storedFixture is an order with one item plus the payment escrowing it,
// restored the way the repositories would hand them to a handler.
type storedFixture struct {
	clientID   kernel.UUID
	travelerID kernel.UUID
	orderID    kernel.UUID
	itemID     kernel.UUID
	order      *order.Order
	payment    *payment.Payment
}

// newStoredFixture builds an order/item/payment triple in the given states.
// The item carries a 5000 product price and a 1000 markup (6000 charge);
// post-claim statuses are claimed by the fixture's traveler.
func newStoredFixture(
	t *testing.T,
	itemStatus order.DeliveryStatus,
	paymentStatus payment.Status,
) storedFixture {
	t.Helper()

	f := storedFixture{
		clientID:   kernel.NewUUID(),
		travelerID: kernel.NewUUID(),
		orderID:    kernel.NewUUID(),
		itemID:     kernel.NewUUID(),
	}
	productID := kernel.NewUUID()
	price := mustMoney(t, 5000)
	reward := mustMoney(t, 1000)
	deliveryDate := time.Now().AddDate(0, 0, 14)

	var claimedBy *kernel.UUID
	proofURL := ""
	if itemStatus != order.StatusCreated {
		claimedBy = &f.travelerID
	}
	if itemStatus == order.StatusCompleted {
		proofURL = "https://proofs.example.com/receipt.jpg"
	}

	item, err := order.RestoreItem(
		f.itemID, f.orderID, productID, mustDestination(t), deliveryDate,
		price, reward, claimedBy, itemStatus, proofURL,
	)
	require.NoError(t, err)

	f.order, err = order.RestoreOrder(
		f.orderID, f.clientID, "mobile_money", []*order.Item{item},
		mustMoney(t, 6000), paymentStatus != payment.StatusPending, time.Now(),
	)
	require.NoError(t, err)

	var payee *kernel.UUID
	if paymentStatus == payment.StatusReleased {
		payee = &f.travelerID
	}
	f.payment, err = payment.RestorePayment(
		kernel.NewUUID(), f.orderID, f.itemID, f.clientID, productID,
		payee, price, reward, mustMoney(t, 6000), paymentStatus, time.Now(),
	)
	require.NoError(t, err)

	return f
}

func newOpenDispute(t *testing.T, paymentID, raisedBy, against kernel.UUID) *dispute.Dispute {
	t.Helper()
	d, err := dispute.NewDispute(
		kernel.NewUUID(), paymentID, raisedBy, against,
		dispute.ReasonNotDelivered, nil,
	)
	require.NoError(t, err)
	return d
}
