package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessOrderPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newStoredFixture(t, order.StatusCreated, payment.StatusPending)
	cmd, err := commands.NewProcessOrderPaymentCommand(mustActor(t, kernel.RoleSystem), f.orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockCheckoutUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetAllByOrder", ctx, f.orderID).Return([]*payment.Payment{f.payment}, nil).Once(),
		paymentRepo.On("Update", ctx, f.payment, payment.StatusPending).Return(nil).Once(),
		orderRepo.On("Update", ctx, f.order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Notify", ctx, commands.TemplatePaymentReceived, f.clientID, mock.Anything).
		Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderPaymentCommandHandler(factory, notifier, newTestLogger())
	captured, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, captured.PaymentProcessed())
	assert.Equal(t, payment.StatusEscrow, f.payment.Status())
	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessOrderPaymentCommandHandler_Handle_AlreadyProcessed(t *testing.T) {
	ctx := t.Context()
	f := newStoredFixture(t, order.StatusCreated, payment.StatusEscrow)
	cmd, err := commands.NewProcessOrderPaymentCommand(mustActor(t, kernel.RoleSystem), f.orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderPaymentCommandHandler(factory, new(MockNotifier), newTestLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrPaymentAlreadyProcessed)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessOrderPaymentCommandHandler_Handle_NotifyFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	f := newStoredFixture(t, order.StatusCreated, payment.StatusPending)
	cmd, err := commands.NewProcessOrderPaymentCommand(mustActor(t, kernel.RoleSystem), f.orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockCheckoutUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.orderID).Return(f.order, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetAllByOrder", ctx, f.orderID).Return([]*payment.Payment{f.payment}, nil).Once(),
		paymentRepo.On("Update", ctx, f.payment, payment.StatusPending).Return(nil).Once(),
		orderRepo.On("Update", ctx, f.order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Notify", ctx, commands.TemplatePaymentReceived, f.clientID, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderPaymentCommandHandler(factory, notifier, newTestLogger())
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestProcessOrderPaymentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ProcessOrderPaymentCommand{} // not constructed properly
	h := commands.NewProcessOrderPaymentCommandHandler(
		new(MockCheckoutUoWFactory), new(MockNotifier), newTestLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrProcessOrderPaymentCommandIsNotConstructed)
}
