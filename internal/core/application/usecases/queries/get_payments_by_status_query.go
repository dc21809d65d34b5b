package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/guard"
)

var ErrGetPaymentsByStatusQueryIsNotConstructed = errors.New(
	"GetPaymentsByStatusQuery must be created via NewGetPaymentsByStatusQuery constructor",
)

// GetPaymentsByStatusQuery retrieves payments in a given lifecycle status.
// Operational views filter on escrow for funds at rest and on released or
// refunded for settled history.
type GetPaymentsByStatusQuery struct { //nolint:recvcheck //using for validation
	status payment.Status

	guard guard.ConstructorGuard
}

// NewGetPaymentsByStatusQuery creates a payment listing query for one status.
func NewGetPaymentsByStatusQuery(status payment.Status) (GetPaymentsByStatusQuery, error) {
	query := GetPaymentsByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetPaymentsByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsByStatusQueryIsNotConstructed)
}

// Status returns the status filter.
func (q GetPaymentsByStatusQuery) Status() payment.Status {
	return q.status
}

func (q *GetPaymentsByStatusQuery) setStatus(status payment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

// GetPaymentsByStatusQueryResponse is the read model for one payment.
// TravelerID is set only after the payment has been released.
type GetPaymentsByStatusQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	ItemID       kernel.UUID
	ClientID     kernel.UUID
	TravelerID   *kernel.UUID
	TotalAmount  kernel.Money
	MarkupAmount kernel.Money
	Status       payment.Status
}
