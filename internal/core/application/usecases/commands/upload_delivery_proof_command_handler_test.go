package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadDeliveryProofCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newStoredFixture(t, order.StatusClientConfirmed, payment.StatusEscrow)
	claimant, err := kernel.NewActorContext(f.travelerID, kernel.RoleTraveler)
	require.NoError(t, err)
	cmd, err := commands.NewUploadDeliveryProofCommand(claimant, f.itemID, "https://proofs.example.com/receipt.jpg")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByItemID", ctx, f.itemID).Return(f.order, nil).Once(),
		repo.On("UpdateItem", ctx, mock.AnythingOfType("*order.Item"), order.StatusClientConfirmed).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUploadDeliveryProofCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, item.Status())
	assert.Equal(t, "https://proofs.example.com/receipt.jpg", item.ProofURL())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUploadDeliveryProofCommandHandler_Handle_PrematureUpload(t *testing.T) {
	ctx := t.Context()
	f := newStoredFixture(t, order.StatusShipped, payment.StatusEscrow)
	claimant, err := kernel.NewActorContext(f.travelerID, kernel.RoleTraveler)
	require.NoError(t, err)
	cmd, err := commands.NewUploadDeliveryProofCommand(claimant, f.itemID, "https://proofs.example.com/receipt.jpg")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByItemID", ctx, f.itemID).Return(f.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUploadDeliveryProofCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUploadDeliveryProofCommand_EmptyProofURL(t *testing.T) {
	_, err := commands.NewUploadDeliveryProofCommand(
		mustActor(t, kernel.RoleTraveler), kernel.NewUUID(), "")
	require.ErrorIs(t, err, order.ErrProofIsRequired)
}

func TestUploadDeliveryProofCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UploadDeliveryProofCommand{} // not constructed properly
	h := commands.NewUploadDeliveryProofCommandHandler(new(MockOrderUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrUploadDeliveryProofCommandIsNotConstructed)
}
