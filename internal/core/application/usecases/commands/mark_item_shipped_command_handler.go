package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// MarkItemShippedCommandHandler moves a claimed item into transit.
// Only the traveler who claimed the item may ship it.
type MarkItemShippedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkItemShippedCommandHandler creates a handler for shipping operations.
func NewMarkItemShippedCommandHandler(uowFactory OrderUoWFactory) MarkItemShippedCommandHandler {
	return MarkItemShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipping command.
// Returns the shipped item on success.
func (h MarkItemShippedCommandHandler) Handle(ctx context.Context, cmd MarkItemShippedCommand) (*order.Item, error) {
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

	if err = item.MarkShipped(cmd.Actor().ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateItem(ctx, item, order.StatusAssigned); err != nil {
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
