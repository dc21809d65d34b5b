package disputerepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDisputeRepository implements DisputeRepository using GORM.
type GormDisputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDisputeRepository creates a new GORM dispute repository.
func NewGormDisputeRepository(db *gorm.DB, tracker aggregateTracker) *GormDisputeRepository {
	return &GormDisputeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispute to the database.
func (r *GormDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update performs the conditional status write that makes resolution
// single-shot: the row updates only while its stored status still equals
// expectedStatus. Zero affected rows means another decision landed first
// and surfaces as a ConflictError.
func (r *GormDisputeRepository) Update(
	ctx context.Context,
	aggregate *dispute.Dispute,
	expectedStatus dispute.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&DisputeDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]any{
			"evidence":          dto.Evidence,
			"status":            dto.Status,
			"resolution_action": dto.ResolutionAction,
			"resolution_amount": dto.ResolutionAmount,
			"resolution_notes":  dto.ResolutionNotes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DisputeDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("dispute", aggregate.ID().String())
		}
		return errs.NewConflictError("dispute", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dispute by ID.
func (r *GormDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBlockingByPayment retrieves the active dispute holding the given
// payment's funds, or nil when none exists.
func (r *GormDisputeRepository) GetBlockingByPayment(
	ctx context.Context,
	paymentID kernel.UUID,
) (*dispute.Dispute, error) {
	if err := paymentID.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	err := r.db.WithContext(ctx).
		Where("payment_id = ? AND status IN ?", paymentID.Bytes(), blockingStatuses()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstOpen retrieves the oldest dispute still in open status.
// The escalation job drains these one at a time.
func (r *GormDisputeRepository) GetFirstOpen(ctx context.Context) (*dispute.Dispute, error) {
	var dto DisputeDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(dispute.StatusOpen)).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", "first open")
		}
		return nil, err
	}

	return toDomain(dto)
}

func blockingStatuses() []int {
	return []int{int(dispute.StatusOpen), int(dispute.StatusUnderReview)}
}
