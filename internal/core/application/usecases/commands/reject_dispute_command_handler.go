package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/pkg/errs"
)

// RejectDisputeCommandHandler dismisses a dispute as unfounded. The payment
// keeps its escrow status; only the release block disappears.
type RejectDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewRejectDisputeCommandHandler creates a handler for dispute rejections.
func NewRejectDisputeCommandHandler(uowFactory DisputeUoWFactory) RejectDisputeCommandHandler {
	return RejectDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
// Returns the rejected dispute.
func (h RejectDisputeCommandHandler) Handle(ctx context.Context, cmd RejectDisputeCommand) (*dispute.Dispute, error) {
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

	disputeRepo := uow.DisputeRepository()
	decided, err := disputeRepo.Get(ctx, cmd.DisputeID())
	if err != nil {
		return nil, err
	}
	statusBefore := decided.Status()

	if err = decided.Reject(); err != nil {
		return nil, err
	}

	if err = disputeRepo.Update(ctx, decided, statusBefore); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, dispute.ErrDisputeAlreadyResolved
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return decided, nil
}
