// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items persist in their own table and link back via foreign key.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Items            []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount      int64     `gorm:"type:bigint;not null"`
	PaymentMethod    string    `gorm:"type:varchar(64);not null"`
	PaymentProcessed bool      `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order items.
// ClaimedBy stays null until a traveler wins the claim; the partial state of
// the claim race is never visible because the claim write is conditional on
// this column.
type ItemDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID      `gorm:"type:uuid;not null"`
	Destination  DestinationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	DeliveryDate time.Time      `gorm:"not null"`
	ProductPrice int64          `gorm:"type:bigint;not null"`
	RewardAmount int64          `gorm:"type:bigint;not null"`
	ClaimedBy    *uuid.UUID     `gorm:"type:uuid;index"`
	Status       int            `gorm:"type:int;not null;index"`
	ProofURL     string         `gorm:"type:text"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// DestinationDTO represents the embedded delivery destination within the item table.
type DestinationDTO struct {
	Country string `gorm:"type:varchar(128);not null"`
	State   string `gorm:"type:varchar(128)"`
	City    string `gorm:"type:varchar(128);not null"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]ItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(item))
	}

	return OrderDTO{
		ID:               orderID,
		ClientID:         aggregate.ClientID().Bytes(),
		Items:            items,
		TotalAmount:      aggregate.TotalAmount().Amount(),
		PaymentMethod:    aggregate.PaymentMethod(),
		PaymentProcessed: aggregate.PaymentProcessed(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// itemFromDomain converts an order item entity to its database representation.
func itemFromDomain(item *order.Item) ItemDTO {
	var claimedBy *uuid.UUID
	if id := item.ClaimedBy(); id != nil {
		raw := id.Bytes()
		claimedBy = &raw
	}

	return ItemDTO{
		ID:        item.ID().Bytes(),
		OrderID:   item.OrderID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Destination: DestinationDTO{
			Country: item.Destination().Country(),
			State:   item.Destination().State(),
			City:    item.Destination().City(),
		},
		DeliveryDate: item.DeliveryDate(),
		ProductPrice: item.ProductPrice().Amount(),
		RewardAmount: item.RewardAmount().Amount(),
		ClaimedBy:    claimedBy,
		Status:       int(item.Status()),
		ProofURL:     item.ProofURL(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		clientID,
		dto.PaymentMethod,
		items,
		totalAmount,
		dto.PaymentProcessed,
		dto.CreatedAt,
	)
}

// itemToDomain converts an item DTO to its domain entity.
// Uses RestoreItem to reconstruct the entity with its persisted state.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewDestination(
		dto.Destination.Country,
		dto.Destination.State,
		dto.Destination.City,
	)
	if err != nil {
		return nil, err
	}

	productPrice, err := kernel.NewMoney(dto.ProductPrice)
	if err != nil {
		return nil, err
	}

	rewardAmount, err := kernel.NewMoney(dto.RewardAmount)
	if err != nil {
		return nil, err
	}

	var claimedBy *kernel.UUID
	if dto.ClaimedBy != nil {
		traveler, travelerErr := kernel.UUIDFromBytes((*dto.ClaimedBy)[:])
		if travelerErr != nil {
			return nil, travelerErr
		}
		claimedBy = &traveler
	}

	return order.RestoreItem(
		id,
		orderID,
		productID,
		destination,
		dto.DeliveryDate,
		productPrice,
		rewardAmount,
		claimedBy,
		order.DeliveryStatus(dto.Status),
		dto.ProofURL,
	)
}
