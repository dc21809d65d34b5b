package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// OpenDisputeCommandHandler opens a dispute on a payment, freezing its escrow
// until the dispute resolves. A payment carries at most one active dispute.
type OpenDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewOpenDisputeCommandHandler creates a handler for dispute opening.
func NewOpenDisputeCommandHandler(
	uowFactory DisputeUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "open_dispute"),
	}
}

// Handle processes the dispute opening command.
// Returns the newly opened dispute.
func (h OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) (*dispute.Dispute, error) {
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

	disputed, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}
	if disputed.Status().IsTerminal() {
		return nil, ErrPaymentIsSettled
	}

	disputeRepo := uow.DisputeRepository()
	existing, err := disputeRepo.GetBlockingByPayment(ctx, disputed.ID())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDisputeExists
	}

	opened, err := dispute.NewDispute(
		kernel.NewUUID(),
		disputed.ID(),
		cmd.Actor().ID(),
		cmd.Against(),
		cmd.Reason(),
		cmd.Evidence(),
	)
	if err != nil {
		return nil, err
	}

	if err = disputeRepo.Add(ctx, opened); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.Notify(ctx, TemplateDisputeOpened, cmd.Against(), map[string]any{
		"disputeId": opened.ID().String(),
		"paymentId": disputed.ID().String(),
		"reason":    opened.Reason().String(),
	}); err != nil {
		h.logger.WarnContext(ctx, "dispute opened notification failed", "error", err)
	}

	return opened, nil
}
