package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/pkg/errs"
)

// EscalateDisputeCommandHandler feeds the admin review queue: it picks the
// oldest open dispute and moves it to under_review. One dispute per run;
// the scheduler drives the drain rate.
type EscalateDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewEscalateDisputeCommandHandler creates a handler for escalation sweeps.
func NewEscalateDisputeCommandHandler(uowFactory DisputeUoWFactory) EscalateDisputeCommandHandler {
	return EscalateDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the escalation command.
// Returns ErrNoOpenDisputes when the queue is empty.
func (h EscalateDisputeCommandHandler) Handle(ctx context.Context, cmd EscalateDisputeCommand) (*dispute.Dispute, error) {
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
	open, err := disputeRepo.GetFirstOpen(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrNoOpenDisputes
		}
		return nil, err
	}

	if err = open.StartReview(); err != nil {
		return nil, err
	}

	if err = disputeRepo.Update(ctx, open, dispute.StatusOpen); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return open, nil
}
