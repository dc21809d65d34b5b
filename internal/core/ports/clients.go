package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// PayoutClient is the narrow interface to the external payment rail that
// moves funds to travelers (payouts) and back to clients (refunds).
//
// Payout initiation is best-effort with bounded retry and is never atomic
// with the payment's status write: the released/refunded status commit is the
// durability point, and a failed payout is reconciled by an out-of-band retry
// keyed on the payment ID (at-least-once delivery).
type PayoutClient interface {
	// Payout moves the amount to the destination account and returns the
	// rail's confirmation ID. Implementations retry transient failures a
	// bounded number of times before surfacing the error.
	Payout(ctx context.Context, destinationAccount string, amount kernel.Money) (string, error)
}

// Notifier delivers fire-and-forget notifications. A failure to notify must
// never block or reverse a state transition; callers log the error and move on.
type Notifier interface {
	// Notify sends the template to the recipient with the given payload.
	Notify(ctx context.Context, template string, recipient kernel.UUID, data map[string]any) error
}
