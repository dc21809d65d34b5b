package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentsByStatusQueryHandler lists payments filtered by status.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetPaymentsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsByStatusQueryHandler creates a handler for payment listings.
// Requires a GORM database connection for query execution.
func NewGetPaymentsByStatusQueryHandler(db *gorm.DB) GetPaymentsByStatusQueryHandler {
	return GetPaymentsByStatusQueryHandler{db: db}
}

// Handle executes the payment listing query.
// Returns read models sorted by creation time, oldest first.
func (h GetPaymentsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsByStatusQuery,
) ([]GetPaymentsByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]GetPaymentsByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			item_id,
			client_id,
			traveler_id,
			total_amount,
			markup_amount,
			status
		FROM payments
		WHERE status = ?
		ORDER BY created_at
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p GetPaymentsByStatusQueryResponse
		var id, orderID, itemID, clientID uuid.UUID
		var travelerID *uuid.UUID
		var totalAmount, markupAmount int64
		var status int

		err = rows.Scan(
			&id,
			&orderID,
			&itemID,
			&clientID,
			&travelerID,
			&totalAmount,
			&markupAmount,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if p.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if p.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if p.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if travelerID != nil {
			traveler, idErr := kernel.UUIDFromBytes(travelerID[:])
			if idErr != nil {
				return nil, idErr
			}
			p.TravelerID = &traveler
		}
		if p.TotalAmount, err = kernel.NewMoney(totalAmount); err != nil {
			return nil, err
		}
		if p.MarkupAmount, err = kernel.NewMoney(markupAmount); err != nil {
			return nil, err
		}
		p.Status = payment.Status(status)

		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
