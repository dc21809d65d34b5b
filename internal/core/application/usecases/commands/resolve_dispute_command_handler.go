package commands

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ResolveDisputeCommandHandler applies an admin's resolution to a dispute.
//
// Each action is a different side effect on the frozen payment:
//   - release_funds pays the traveler, bypassing the dispute block;
//   - full_refund and partial_refund divert funds back to the client;
//   - redelivery resets the item for another attempt by the same traveler.
//
// The dispute's own transition to resolved is CAS-guarded so two admins
// deciding concurrently produce exactly one recorded outcome.
type ResolveDisputeCommandHandler struct {
	uowFactory     UoWFactory
	releaseHandler ReleasePaymentCommandHandler
	payoutClient   ports.PayoutClient
	notifier       ports.Notifier
	logger         *slog.Logger
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(
	uowFactory UoWFactory,
	releaseHandler ReleasePaymentCommandHandler,
	payoutClient ports.PayoutClient,
	notifier ports.Notifier,
	logger *slog.Logger,
) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory:     uowFactory,
		releaseHandler: releaseHandler,
		payoutClient:   payoutClient,
		notifier:       notifier,
		logger:         logger.With("component", "resolve_dispute"),
	}
}

// Handle processes the resolution command.
// Returns the resolved dispute.
func (h ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) (*dispute.Dispute, error) {
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

	disputed, err := uow.PaymentRepository().Get(ctx, decided.PaymentID())
	if err != nil {
		return nil, err
	}

	outcome, err := h.applyAction(ctx, uow, cmd, disputed)
	if err != nil {
		return nil, err
	}

	resolution, err := dispute.NewResolution(cmd.Action(), outcome.recordedAmount, cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err = decided.Resolve(resolution); err != nil {
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

	outcome.afterCommit(ctx)

	return decided, nil
}

// actionOutcome holds the amount to record on the resolution and the
// post-commit side effect of the chosen action.
type actionOutcome struct {
	recordedAmount kernel.Money
	afterCommit    func(ctx context.Context)
}

func (h ResolveDisputeCommandHandler) applyAction(
	ctx context.Context,
	uow UoW,
	cmd ResolveDisputeCommand,
	disputed *payment.Payment,
) (actionOutcome, error) {
	switch cmd.Action() {
	case dispute.ActionReleaseFunds:
		return h.releaseFunds(ctx, uow, disputed)
	case dispute.ActionFullRefund:
		return h.refund(ctx, uow, disputed, disputed.TotalAmount())
	case dispute.ActionPartialRefund:
		if cmd.Amount().Amount() > disputed.TotalAmount().Amount() {
			return actionOutcome{}, errs.NewValueIsOutOfRangeError(
				"amount", cmd.Amount().Amount(), 0, disputed.TotalAmount().Amount())
		}
		return h.refund(ctx, uow, disputed, cmd.Amount())
	case dispute.ActionRedelivery:
		return h.redeliver(ctx, uow, disputed)
	default:
		return actionOutcome{}, dispute.ErrInvalidAction
	}
}

// releaseFunds sides with the traveler: the normal release path runs inside
// the resolution's transaction, skipping the dispute block that this very
// dispute would otherwise impose.
func (h ResolveDisputeCommandHandler) releaseFunds(
	ctx context.Context,
	uow UoW,
	disputed *payment.Payment,
) (actionOutcome, error) {
	owner, err := uow.OrderRepository().GetByItemID(ctx, disputed.ItemID())
	if err != nil {
		return actionOutcome{}, err
	}
	item, err := owner.Item(disputed.ItemID())
	if err != nil {
		return actionOutcome{}, err
	}
	if item.ClaimedBy() == nil {
		return actionOutcome{}, ErrItemNotCompleted
	}

	released, err := h.releaseHandler.release(ctx, uow, disputed, *item.ClaimedBy())
	if err != nil {
		return actionOutcome{}, err
	}

	return actionOutcome{
		recordedAmount: released.TravelerReward,
		afterCommit: func(ctx context.Context) {
			h.releaseHandler.payOut(ctx, released.Payment, released.TravelerReward)
		},
	}, nil
}

// refund sides with the client: the payment moves to its terminal refunded
// state and the amount is pushed back toward the client after the commit.
func (h ResolveDisputeCommandHandler) refund(
	ctx context.Context,
	uow UoW,
	disputed *payment.Payment,
	amount kernel.Money,
) (actionOutcome, error) {
	if err := disputed.Refund(); err != nil {
		return actionOutcome{}, err
	}

	if err := uow.PaymentRepository().Update(ctx, disputed, payment.StatusEscrow); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return actionOutcome{}, payment.ErrAlreadyRefunded
		}
		return actionOutcome{}, err
	}

	return actionOutcome{
		recordedAmount: amount,
		afterCommit: func(ctx context.Context) {
			h.refundPayout(ctx, disputed, amount)
		},
	}, nil
}

// redeliver gives the same traveler another attempt: the item returns to
// Assigned with its proof cleared while the payment stays in escrow.
func (h ResolveDisputeCommandHandler) redeliver(
	ctx context.Context,
	uow UoW,
	disputed *payment.Payment,
) (actionOutcome, error) {
	orderRepo := uow.OrderRepository()
	owner, err := orderRepo.GetByItemID(ctx, disputed.ItemID())
	if err != nil {
		return actionOutcome{}, err
	}
	item, err := owner.Item(disputed.ItemID())
	if err != nil {
		return actionOutcome{}, err
	}

	statusBefore := item.Status()
	if err = item.ResetForRedelivery(); err != nil {
		return actionOutcome{}, err
	}

	if err = orderRepo.UpdateItem(ctx, item, statusBefore); err != nil {
		return actionOutcome{}, err
	}

	recorded, err := kernel.NewMoney(0)
	if err != nil {
		return actionOutcome{}, err
	}

	return actionOutcome{
		recordedAmount: recorded,
		afterCommit:    func(context.Context) {},
	}, nil
}

func (h ResolveDisputeCommandHandler) refundPayout(
	ctx context.Context,
	refunded *payment.Payment,
	amount kernel.Money,
) {
	if _, err := h.payoutClient.Payout(ctx, refunded.ClientID().String(), amount); err != nil {
		h.logger.WarnContext(ctx, "client refund payout failed, pending reconciliation",
			"paymentId", refunded.ID().String(), "error", err)
	}

	if err := h.notifier.Notify(ctx, TemplatePaymentRefunded, refunded.ClientID(), map[string]any{
		"paymentId": refunded.ID().String(),
		"amount":    amount.Amount(),
	}); err != nil {
		h.logger.WarnContext(ctx, "payment refunded notification failed", "error", err)
	}
}
