package queries

import (
	"context"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDisputesByStatusQueryHandler lists disputes filtered by status.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetDisputesByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDisputesByStatusQueryHandler creates a handler for dispute listings.
// Requires a GORM database connection for query execution.
func NewGetDisputesByStatusQueryHandler(db *gorm.DB) GetDisputesByStatusQueryHandler {
	return GetDisputesByStatusQueryHandler{db: db}
}

// Handle executes the dispute listing query.
// Returns read models sorted by creation time, oldest first.
func (h GetDisputesByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDisputesByStatusQuery,
) ([]GetDisputesByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	disputes := make([]GetDisputesByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			payment_id,
			raised_by,
			against,
			reason,
			status,
			created_at
		FROM disputes
		WHERE status = ?
		ORDER BY created_at
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d GetDisputesByStatusQueryResponse
		var id, paymentID, raisedBy, against uuid.UUID
		var reason, status int

		err = rows.Scan(
			&id,
			&paymentID,
			&raisedBy,
			&against,
			&reason,
			&status,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if d.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if d.PaymentID, err = kernel.UUIDFromBytes(paymentID[:]); err != nil {
			return nil, err
		}
		if d.RaisedBy, err = kernel.UUIDFromBytes(raisedBy[:]); err != nil {
			return nil, err
		}
		if d.Against, err = kernel.UUIDFromBytes(against[:]); err != nil {
			return nil, err
		}
		d.Reason = dispute.Reason(reason)
		d.Status = dispute.Status(status)

		disputes = append(disputes, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return disputes, nil
}
