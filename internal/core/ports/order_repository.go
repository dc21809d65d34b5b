package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their items.
//
// UpdateItem is the exclusivity primitive of the whole core: it must be a
// conditional write (check-and-set) so that two concurrent claims on one item
// yield exactly one winner.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to the order's own fields (not its items).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate, items included, by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order aggregate owning the given item.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// UpdateItem persists an item's new state conditionally: the write applies
	// only if the stored delivery status still equals expectedStatus, and, when
	// the transition is a claim (expectedStatus Created), only if the stored
	// claimedBy is still null. A failed condition returns a ConflictError;
	// for claims the caller maps it to order.ErrAlreadyClaimed.
	UpdateItem(ctx context.Context, item *order.Item, expectedStatus order.DeliveryStatus) error
}
