// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
// This package implements the repository pattern for the payment domain aggregate, handling
// the conversion between domain entities and database representations.
package paymentrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
// TravelerID stays null until release records the payee.
type PaymentDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	ClientID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null"`
	TravelerID    *uuid.UUID `gorm:"type:uuid;index"`
	ProductAmount int64      `gorm:"type:bigint;not null"`
	MarkupAmount  int64      `gorm:"type:bigint;not null"`
	TotalAmount   int64      `gorm:"type:bigint;not null"`
	Status        int        `gorm:"type:int;not null;index"`
	CreatedAt     time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for payment entities.
// Overrides GORM's default naming convention to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	var travelerID *uuid.UUID
	if id := aggregate.TravelerID(); id != nil {
		raw := id.Bytes()
		travelerID = &raw
	}

	return PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		ItemID:        aggregate.ItemID().Bytes(),
		ClientID:      aggregate.ClientID().Bytes(),
		ProductID:     aggregate.ProductID().Bytes(),
		TravelerID:    travelerID,
		ProductAmount: aggregate.ProductAmount().Amount(),
		MarkupAmount:  aggregate.MarkupAmount().Amount(),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate.
// Reconstructs the aggregate with its persisted state using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var travelerID *kernel.UUID
	if dto.TravelerID != nil {
		traveler, travelerErr := kernel.UUIDFromBytes((*dto.TravelerID)[:])
		if travelerErr != nil {
			return nil, travelerErr
		}
		travelerID = &traveler
	}

	productAmount, err := kernel.NewMoney(dto.ProductAmount)
	if err != nil {
		return nil, err
	}

	markupAmount, err := kernel.NewMoney(dto.MarkupAmount)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		itemID,
		clientID,
		productID,
		travelerID,
		productAmount,
		markupAmount,
		totalAmount,
		payment.Status(dto.Status),
		dto.CreatedAt,
	)
}
