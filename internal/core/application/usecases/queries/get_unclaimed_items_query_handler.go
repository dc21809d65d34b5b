package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnclaimedItemsQueryHandler serves the traveler marketplace feed.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetUnclaimedItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnclaimedItemsQueryHandler creates a handler for feed queries.
// Requires a GORM database connection for query execution.
func NewGetUnclaimedItemsQueryHandler(db *gorm.DB) GetUnclaimedItemsQueryHandler {
	return GetUnclaimedItemsQueryHandler{db: db}
}

// Handle executes the query for all unclaimed items.
// Returns read models sorted by delivery date, most urgent first.
func (h GetUnclaimedItemsQueryHandler) Handle(
	ctx context.Context,
	query GetUnclaimedItemsQuery,
) ([]GetUnclaimedItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetUnclaimedItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			destination_country,
			destination_state,
			destination_city,
			delivery_date,
			product_price,
			reward_amount
		FROM order_items
		WHERE status = ? AND claimed_by IS NULL
		ORDER BY delivery_date
	`, int(order.StatusCreated)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetUnclaimedItemsQueryResponse
		var id, orderID, productID uuid.UUID
		var country, state, city string
		var productPrice, rewardAmount int64

		err = rows.Scan(
			&id,
			&orderID,
			&productID,
			&country,
			&state,
			&city,
			&item.DeliveryDate,
			&productPrice,
			&rewardAmount,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.Destination, err = kernel.NewDestination(country, state, city); err != nil {
			return nil, err
		}
		if item.ProductPrice, err = kernel.NewMoney(productPrice); err != nil {
			return nil, err
		}
		if item.RewardAmount, err = kernel.NewMoney(rewardAmount); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
