// Package disputerepo provides data transfer objects and mapping functions for dispute persistence.
// This package implements the repository pattern for the dispute domain aggregate, handling
// the conversion between domain entities and database representations.
package disputerepo

import (
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DisputeDTO represents the database structure for persisting dispute aggregates.
// Evidence is a native postgres text array. The resolution columns stay null
// until the dispute resolves; rejected disputes never fill them.
type DisputeDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	PaymentID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	RaisedBy         uuid.UUID      `gorm:"type:uuid;not null"`
	Against          uuid.UUID      `gorm:"type:uuid;not null"`
	Reason           int            `gorm:"type:int;not null"`
	Evidence         pq.StringArray `gorm:"type:text[]"`
	Status           int            `gorm:"type:int;not null;index"`
	ResolutionAction *int           `gorm:"type:int"`
	ResolutionAmount *int64         `gorm:"type:bigint"`
	ResolutionNotes  *string        `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"not null"`
}

// TableName specifies the database table name for dispute entities.
// Overrides GORM's default naming convention to use "disputes".
func (DisputeDTO) TableName() string {
	return "disputes"
}

// fromDomain converts a dispute domain aggregate to its database representation.
func fromDomain(aggregate *dispute.Dispute) DisputeDTO {
	dto := DisputeDTO{
		ID:        aggregate.ID().Bytes(),
		PaymentID: aggregate.PaymentID().Bytes(),
		RaisedBy:  aggregate.RaisedBy().Bytes(),
		Against:   aggregate.Against().Bytes(),
		Reason:    int(aggregate.Reason()),
		Evidence:  pq.StringArray(aggregate.Evidence()),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}

	if resolution := aggregate.Resolution(); resolution != nil {
		action := int(resolution.Action())
		amount := resolution.Amount().Amount()
		notes := resolution.Notes()
		dto.ResolutionAction = &action
		dto.ResolutionAmount = &amount
		dto.ResolutionNotes = &notes
	}

	return dto
}

// toDomain converts a database DTO to a dispute domain aggregate.
// Reconstructs the aggregate with its persisted state using RestoreDispute.
func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	paymentID, err := kernel.UUIDFromBytes(dto.PaymentID[:])
	if err != nil {
		return nil, err
	}

	raisedBy, err := kernel.UUIDFromBytes(dto.RaisedBy[:])
	if err != nil {
		return nil, err
	}

	against, err := kernel.UUIDFromBytes(dto.Against[:])
	if err != nil {
		return nil, err
	}

	resolution, err := resolutionToDomain(dto)
	if err != nil {
		return nil, err
	}

	return dispute.RestoreDispute(
		id,
		paymentID,
		raisedBy,
		against,
		dispute.Reason(dto.Reason),
		[]string(dto.Evidence),
		dispute.Status(dto.Status),
		resolution,
		dto.CreatedAt,
	)
}

// resolutionToDomain rebuilds the optional resolution value object from its
// nullable columns. All three columns are written together, so the action
// column alone decides presence.
func resolutionToDomain(dto DisputeDTO) (*dispute.Resolution, error) {
	if dto.ResolutionAction == nil {
		return nil, nil
	}

	var amountValue int64
	if dto.ResolutionAmount != nil {
		amountValue = *dto.ResolutionAmount
	}
	amount, err := kernel.NewMoney(amountValue)
	if err != nil {
		return nil, err
	}

	var notes string
	if dto.ResolutionNotes != nil {
		notes = *dto.ResolutionNotes
	}

	resolution, err := dispute.NewResolution(dispute.Action(*dto.ResolutionAction), amount, notes)
	if err != nil {
		return nil, err
	}

	return &resolution, nil
}
