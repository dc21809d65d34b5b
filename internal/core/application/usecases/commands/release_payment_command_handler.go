package commands

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ReleasePaymentResult carries the outcome of an escrow release: the released
// payment, the split of its markup, and the payout rail's confirmation when
// the payout succeeded within the request.
type ReleasePaymentResult struct {
	Payment            *payment.Payment
	TravelerReward     kernel.Money
	CompanyFee         kernel.Money
	PayoutConfirmation string
}

// ReleasePaymentCommandHandler releases escrowed funds to a traveler.
//
// The status flip to released is the durability point and is CAS-guarded so
// that concurrent releases yield exactly one winner. The payout itself runs
// after the commit: a payout failure is logged for out-of-band reconciliation
// and never reverses the released status.
type ReleasePaymentCommandHandler struct {
	uowFactory   UoWFactory
	splitter     services.EscrowSplitter
	payoutClient ports.PayoutClient
	notifier     ports.Notifier
	logger       *slog.Logger
}

// NewReleasePaymentCommandHandler creates a handler for escrow releases.
func NewReleasePaymentCommandHandler(
	uowFactory UoWFactory,
	splitter services.EscrowSplitter,
	payoutClient ports.PayoutClient,
	notifier ports.Notifier,
	logger *slog.Logger,
) ReleasePaymentCommandHandler {
	return ReleasePaymentCommandHandler{
		uowFactory:   uowFactory,
		splitter:     splitter,
		payoutClient: payoutClient,
		notifier:     notifier,
		logger:       logger.With("component", "release_payment"),
	}
}

// Handle processes the release command.
func (h ReleasePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ReleasePaymentCommand,
) (ReleasePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReleasePaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReleasePaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	escrowed, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return ReleasePaymentResult{}, err
	}

	blocking, err := uow.DisputeRepository().GetBlockingByPayment(ctx, escrowed.ID())
	if err != nil {
		return ReleasePaymentResult{}, err
	}
	if blocking != nil {
		return ReleasePaymentResult{}, ErrDisputeBlocking
	}

	result, err := h.release(ctx, uow, escrowed, cmd.TravelerID())
	if err != nil {
		return ReleasePaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReleasePaymentResult{}, err
	}

	result.PayoutConfirmation = h.payOut(ctx, result.Payment, result.TravelerReward)

	return result, nil
}

// release applies the release inside the caller's open transaction. It is
// shared with dispute resolution, which releases while skipping the dispute
// block check.
func (h ReleasePaymentCommandHandler) release(
	ctx context.Context,
	uow UoW,
	escrowed *payment.Payment,
	travelerID kernel.UUID,
) (ReleasePaymentResult, error) {
	owner, err := uow.OrderRepository().GetByItemID(ctx, escrowed.ItemID())
	if err != nil {
		return ReleasePaymentResult{}, err
	}

	item, err := owner.Item(escrowed.ItemID())
	if err != nil {
		return ReleasePaymentResult{}, err
	}

	if item.Status() != order.StatusCompleted {
		return ReleasePaymentResult{}, ErrItemNotCompleted
	}
	if item.ClaimedBy() == nil || !item.ClaimedBy().IsEqual(travelerID) {
		return ReleasePaymentResult{}, payment.ErrTravelerMismatch
	}

	reward, fee, err := h.splitter.Split(escrowed.MarkupAmount())
	if err != nil {
		return ReleasePaymentResult{}, err
	}

	if err = escrowed.Release(travelerID); err != nil {
		return ReleasePaymentResult{}, err
	}

	if err = uow.PaymentRepository().Update(ctx, escrowed, payment.StatusEscrow); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return ReleasePaymentResult{}, payment.ErrAlreadyReleased
		}
		return ReleasePaymentResult{}, err
	}

	return ReleasePaymentResult{
		Payment:        escrowed,
		TravelerReward: reward,
		CompanyFee:     fee,
	}, nil
}

// payOut initiates the post-commit payout and notifies the traveler.
// Failures are logged only; reconciliation retries off the payment ID.
func (h ReleasePaymentCommandHandler) payOut(
	ctx context.Context,
	released *payment.Payment,
	reward kernel.Money,
) string {
	travelerID := *released.TravelerID()

	confirmationID, err := h.payoutClient.Payout(ctx, travelerID.String(), reward)
	if err != nil {
		h.logger.WarnContext(ctx, "traveler payout failed, pending reconciliation",
			"paymentId", released.ID().String(), "error", err)
	}

	if err = h.notifier.Notify(ctx, TemplatePaymentReleased, travelerID, map[string]any{
		"paymentId": released.ID().String(),
		"reward":    reward.Amount(),
	}); err != nil {
		h.logger.WarnContext(ctx, "payment released notification failed", "error", err)
	}

	return confirmationID
}
