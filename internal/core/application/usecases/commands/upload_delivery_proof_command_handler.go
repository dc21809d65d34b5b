package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// UploadDeliveryProofCommandHandler stores delivery proof and completes the
// item. Completion is the gate the escrow release checks before paying out.
type UploadDeliveryProofCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUploadDeliveryProofCommandHandler creates a handler for proof uploads.
func NewUploadDeliveryProofCommandHandler(uowFactory OrderUoWFactory) UploadDeliveryProofCommandHandler {
	return UploadDeliveryProofCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the proof upload command.
// Returns the completed item on success.
func (h UploadDeliveryProofCommandHandler) Handle(
	ctx context.Context,
	cmd UploadDeliveryProofCommand,
) (*order.Item, error) {
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

	if err = item.AttachProof(cmd.Actor().ID(), cmd.ProofURL()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateItem(ctx, item, order.StatusClientConfirmed); err != nil {
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
