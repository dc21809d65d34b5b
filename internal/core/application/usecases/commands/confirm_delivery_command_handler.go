package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler applies one side of the two-party delivery
// handshake. The traveler's confirmation must land before the client's;
// the status machine on the item enforces the ordering.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Returns the item with its updated delivery status.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*order.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	owner, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	item, err := owner.Item(cmd.ItemID())
	if err != nil {
		return nil, err
	}

	var expected order.DeliveryStatus
	switch {
	case cmd.Actor().HasRole(kernel.RoleTraveler):
		expected = order.StatusShipped
		err = item.ConfirmByTraveler(cmd.Actor().ID())
	case owner.IsOwnedBy(cmd.Actor().ID()):
		expected = order.StatusTravelerConfirmed
		err = item.ConfirmByClient()
	default:
		return nil, ErrActorCannotConfirm
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateItem(ctx, item, expected); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, order.ErrInvalidTransition
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
