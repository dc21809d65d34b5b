// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetUnclaimedItemsQueryIsNotConstructed = errors.New(
	"GetUnclaimedItemsQuery must be created via NewGetUnclaimedItemsQuery constructor",
)

// GetUnclaimedItemsQuery retrieves the marketplace feed: purchased items no
// traveler has claimed yet, ordered by delivery date so the most urgent
// deliveries surface first.
type GetUnclaimedItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnclaimedItemsQuery creates a query for the unclaimed item feed.
// This is a parameterless query.
func NewGetUnclaimedItemsQuery() GetUnclaimedItemsQuery {
	return GetUnclaimedItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnclaimedItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnclaimedItemsQueryIsNotConstructed)
}

// GetUnclaimedItemsQueryResponse is the read model for one claimable item.
// RewardAmount is what the claiming traveler earns on completion.
type GetUnclaimedItemsQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	ProductID    kernel.UUID
	Destination  kernel.Destination
	DeliveryDate time.Time
	ProductPrice kernel.Money
	RewardAmount kernel.Money
}
