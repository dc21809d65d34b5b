package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
//
// Update is conditional on the previously loaded status so that two concurrent
// releases of one payment yield exactly one winner; the loser receives a
// ConflictError which the caller maps to payment.ErrAlreadyReleased.
type PaymentRepository interface {
	// Add persists a new payment aggregate.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes conditionally: the write applies only if the
	// stored status still equals expectedStatus. A failed condition returns
	// a ConflictError.
	Update(ctx context.Context, aggregate *payment.Payment, expectedStatus payment.Status) error

	// Get retrieves a payment aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByItemID retrieves the payment escrowing the given order item.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*payment.Payment, error)

	// GetAllByOrder retrieves all payments belonging to one order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	// GetFirstReleasable retrieves the first payment in escrow whose item has
	// reached Completed and which no open or under-review dispute references.
	// Used by the automatic release job.
	GetFirstReleasable(ctx context.Context) (*payment.Payment, error)
}
