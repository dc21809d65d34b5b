package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ClaimItemCommandHandler orchestrates the exclusive claim of an order item.
//
// Exclusivity is enforced twice: the aggregate rejects claims on an item it
// already sees as claimed, and the repository's conditional write rejects the
// loser of a race between two fresh aggregates. Both paths surface
// order.ErrAlreadyClaimed. The claim never touches the item's payment.
type ClaimItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimItemCommandHandler creates a handler for claim operations.
func NewClaimItemCommandHandler(uowFactory OrderUoWFactory) ClaimItemCommandHandler {
	return ClaimItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
// Returns the claimed item on success.
func (h ClaimItemCommandHandler) Handle(ctx context.Context, cmd ClaimItemCommand) (*order.Item, error) {
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

	if err = item.Claim(cmd.Actor().ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateItem(ctx, item, order.StatusCreated); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, order.ErrAlreadyClaimed
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
