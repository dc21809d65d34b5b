package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetDisputesByStatusQueryIsNotConstructed = errors.New(
	"GetDisputesByStatusQuery must be created via NewGetDisputesByStatusQuery constructor",
)

// GetDisputesByStatusQuery retrieves disputes in a given lifecycle status.
// The admin work queue filters on under_review; open shows what the next
// escalation sweep will pick up.
type GetDisputesByStatusQuery struct { //nolint:recvcheck //using for validation
	status dispute.Status

	guard guard.ConstructorGuard
}

// NewGetDisputesByStatusQuery creates a dispute listing query for one status.
func NewGetDisputesByStatusQuery(status dispute.Status) (GetDisputesByStatusQuery, error) {
	query := GetDisputesByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetDisputesByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDisputesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDisputesByStatusQueryIsNotConstructed)
}

// Status returns the status filter.
func (q GetDisputesByStatusQuery) Status() dispute.Status {
	return q.status
}

func (q *GetDisputesByStatusQuery) setStatus(status dispute.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

// GetDisputesByStatusQueryResponse is the read model for one dispute.
type GetDisputesByStatusQueryResponse struct {
	ID        kernel.UUID
	PaymentID kernel.UUID
	RaisedBy  kernel.UUID
	Against   kernel.UUID
	Reason    dispute.Reason
	Status    dispute.Status
	CreatedAt time.Time
}
