package commands

import (
	"context"
	"errors"

	"marketplace/internal/pkg/errs"
)

// ReleaseNextPaymentCommandHandler drives the automatic escrow release: it
// picks the oldest releasable payment and pays the claiming traveler. One
// payment per run; the scheduler drives the drain rate.
//
// The releasable query already excludes disputed payments, and the release
// itself is CAS-guarded, so a payment disputed or released between the read
// and the write simply loses the race and is skipped.
type ReleaseNextPaymentCommandHandler struct {
	uowFactory     UoWFactory
	releaseHandler ReleasePaymentCommandHandler
}

// NewReleaseNextPaymentCommandHandler creates a handler for release sweeps.
func NewReleaseNextPaymentCommandHandler(
	uowFactory UoWFactory,
	releaseHandler ReleasePaymentCommandHandler,
) ReleaseNextPaymentCommandHandler {
	return ReleaseNextPaymentCommandHandler{
		uowFactory:     uowFactory,
		releaseHandler: releaseHandler,
	}
}

// Handle processes the release sweep command.
// Returns ErrNoReleasablePayments when nothing is ready to release.
func (h ReleaseNextPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseNextPaymentCommand,
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

	escrowed, err := uow.PaymentRepository().GetFirstReleasable(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ReleasePaymentResult{}, ErrNoReleasablePayments
		}
		return ReleasePaymentResult{}, err
	}

	owner, err := uow.OrderRepository().GetByItemID(ctx, escrowed.ItemID())
	if err != nil {
		return ReleasePaymentResult{}, err
	}
	item, err := owner.Item(escrowed.ItemID())
	if err != nil {
		return ReleasePaymentResult{}, err
	}
	if item.ClaimedBy() == nil {
		return ReleasePaymentResult{}, ErrItemNotCompleted
	}

	result, err := h.releaseHandler.release(ctx, uow, escrowed, *item.ClaimedBy())
	if err != nil {
		return ReleasePaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReleasePaymentResult{}, err
	}

	result.PayoutConfirmation = h.releaseHandler.payOut(ctx, result.Payment, result.TravelerReward)

	return result, nil
}
