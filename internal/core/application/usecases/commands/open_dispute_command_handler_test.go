package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenDisputeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newStoredFixture(t, order.StatusCompleted, payment.StatusEscrow)
	client, err := kernel.NewActorContext(f.clientID, kernel.RoleClient)
	require.NoError(t, err)
	cmd, err := commands.NewOpenDisputeCommand(
		client, f.payment.ID(), f.travelerID, dispute.ReasonItemDamaged,
		[]string{"https://evidence.example.com/photo.jpg"})
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	disputeRepo := new(MockDisputeRepository)
	uow := new(MockDisputeUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Get", ctx, f.payment.ID()).Return(f.payment, nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("GetBlockingByPayment", ctx, f.payment.ID()).Return(nil, nil).Once(),
		disputeRepo.On("Add", mock.Anything, mock.AnythingOfType("*dispute.Dispute")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, commands.TemplateDisputeOpened, f.travelerID, mock.Anything).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenDisputeCommandHandler(factory, notifier, newTestLogger())
	opened, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, dispute.StatusOpen, opened.Status())
	assert.Equal(t, dispute.ReasonItemDamaged, opened.Reason())
	assert.True(t, opened.RaisedBy().IsEqual(f.clientID))
	assert.True(t, opened.Against().IsEqual(f.travelerID))
	paymentRepo.AssertExpectations(t)
	disputeRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOpenDisputeCommandHandler_Handle_DisputeExists(t *testing.T) {
	ctx := t.Context()
	f := newStoredFixture(t, order.StatusCompleted, payment.StatusEscrow)
	existing := newOpenDispute(t, f.payment.ID(), f.clientID, f.travelerID)
	client, err := kernel.NewActorContext(f.clientID, kernel.RoleClient)
	require.NoError(t, err)
	cmd, err := commands.NewOpenDisputeCommand(
		client, f.payment.ID(), f.travelerID, dispute.ReasonNotDelivered, nil)
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	disputeRepo := new(MockDisputeRepository)
	uow := new(MockDisputeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Get", ctx, f.payment.ID()).Return(f.payment, nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("GetBlockingByPayment", ctx, f.payment.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenDisputeCommandHandler(factory, new(MockNotifier), newTestLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDisputeExists)
	disputeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOpenDisputeCommandHandler_Handle_PaymentIsSettled(t *testing.T) {
	ctx := t.Context()
	f := newStoredFixture(t, order.StatusCompleted, payment.StatusReleased)
	client, err := kernel.NewActorContext(f.clientID, kernel.RoleClient)
	require.NoError(t, err)
	cmd, err := commands.NewOpenDisputeCommand(
		client, f.payment.ID(), f.travelerID, dispute.ReasonLateDelivery, nil)
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockDisputeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Get", ctx, f.payment.ID()).Return(f.payment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenDisputeCommandHandler(factory, new(MockNotifier), newTestLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPaymentIsSettled)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewOpenDisputeCommand_AdminCannotDispute(t *testing.T) {
	_, err := commands.NewOpenDisputeCommand(
		mustActor(t, kernel.RoleAdmin), kernel.NewUUID(), kernel.NewUUID(),
		dispute.ReasonWrongItem, nil)
	require.ErrorIs(t, err, commands.ErrActorCannotDispute)
}

func TestOpenDisputeCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.OpenDisputeCommand{} // not constructed properly
	h := commands.NewOpenDisputeCommandHandler(
		new(MockDisputeUoWFactory), new(MockNotifier), newTestLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOpenDisputeCommandIsNotConstructed)
}
