package ports

import (
	"context"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
)

// DisputeRepository defines the persistence contract for dispute aggregates.
type DisputeRepository interface {
	// Add persists a new dispute aggregate.
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	// Update persists changes conditionally: the write applies only if the
	// stored status still equals expectedStatus. A failed condition returns
	// a ConflictError; resolution callers map it to
	// dispute.ErrDisputeAlreadyResolved.
	Update(ctx context.Context, aggregate *dispute.Dispute, expectedStatus dispute.Status) error

	// Get retrieves a dispute aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error)

	// GetBlockingByPayment retrieves the dispute in open or under_review
	// status referencing the given payment, if any. At most one such dispute
	// exists per payment.
	GetBlockingByPayment(ctx context.Context, paymentID kernel.UUID) (*dispute.Dispute, error)

	// GetFirstOpen retrieves the first dispute in open status.
	// Used by the review escalation job.
	GetFirstOpen(ctx context.Context) (*dispute.Dispute, error)
}
