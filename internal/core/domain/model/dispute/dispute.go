package dispute

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrDisputeIsNotConstructed is returned when a Dispute instance was not
	// created through the NewDispute factory method.
	ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute constructor")

	// ErrSameParty is returned when a dispute names the same actor on both sides.
	ErrSameParty = errors.New("dispute must be raised against the other party")
)

// Dispute is a formal objection by either party to a payment, freezing its
// release pending arbitration.
//
// Dispute follows these invariants:
//   - it references exactly one payment
//   - while its status is open or under_review, that payment cannot be
//     released through the normal escrow path
//   - it resolves exactly once; the resolution outcome is owned exclusively
//     by the dispute and set atomically with the terminal status
type Dispute struct {
	id         kernel.UUID
	paymentID  kernel.UUID
	raisedBy   kernel.UUID
	against    kernel.UUID
	reason     Reason
	evidence   []string
	status     Status
	resolution *Resolution
	createdAt  time.Time

	isConstructed bool
}

// NewDispute creates a new open Dispute against a payment. Evidence is a list
// of attachment references and may be empty at opening time.
func NewDispute(
	id kernel.UUID,
	paymentID kernel.UUID,
	raisedBy kernel.UUID,
	against kernel.UUID,
	reason Reason,
	evidence []string,
) (*Dispute, error) {
	if err := errors.Join(
		requireUUID("disputeId", id),
		requireUUID("paymentId", paymentID),
		requireUUID("raisedBy", raisedBy),
		requireUUID("against", against),
		reason.Validate(),
	); err != nil {
		return nil, err
	}
	if raisedBy.IsEqual(against) {
		return nil, ErrSameParty
	}

	return &Dispute{
		id:            id,
		paymentID:     paymentID,
		raisedBy:      raisedBy,
		against:       against,
		reason:        reason,
		evidence:      evidence,
		status:        StatusOpen,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreDispute reconstructs a Dispute from persistence.
// A terminal status requires a resolution for resolved disputes; rejected
// disputes carry none.
func RestoreDispute(
	id kernel.UUID,
	paymentID kernel.UUID,
	raisedBy kernel.UUID,
	against kernel.UUID,
	reason Reason,
	evidence []string,
	status Status,
	resolution *Resolution,
	createdAt time.Time,
) (*Dispute, error) {
	d, err := NewDispute(id, paymentID, raisedBy, against, reason, evidence)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	if status == StatusResolved && resolution == nil {
		return nil, errs.NewValueIsRequiredError("resolution for a resolved dispute")
	}
	if resolution != nil {
		if err = resolution.Validate(); err != nil {
			return nil, err
		}
	}

	d.status = status
	d.resolution = resolution
	d.createdAt = createdAt
	return d, nil
}

// Validate ensures the Dispute instance was properly constructed.
func (d *Dispute) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// ID returns the dispute's unique identifier.
func (d *Dispute) ID() kernel.UUID {
	return d.id
}

// PaymentID returns the referenced payment's identifier.
func (d *Dispute) PaymentID() kernel.UUID {
	return d.paymentID
}

// RaisedBy returns the identity of the party who raised the dispute.
func (d *Dispute) RaisedBy() kernel.UUID {
	return d.raisedBy
}

// Against returns the identity of the party the dispute is raised against.
func (d *Dispute) Against() kernel.UUID {
	return d.against
}

// Reason returns the dispute's reason.
func (d *Dispute) Reason() Reason {
	return d.reason
}

// Evidence returns the attachment references supporting the dispute.
func (d *Dispute) Evidence() []string {
	return d.evidence
}

// Status returns the current arbitration status.
func (d *Dispute) Status() Status {
	return d.status
}

// Resolution returns the terminal outcome, nil until resolved.
func (d *Dispute) Resolution() *Resolution {
	return d.resolution
}

// CreatedAt returns when the dispute was opened.
func (d *Dispute) CreatedAt() time.Time {
	return d.createdAt
}

// IsBlocking reports whether the dispute currently freezes release of the
// referenced payment.
func (d *Dispute) IsBlocking() bool {
	return d.status.IsBlocking()
}

// AddEvidence appends attachment references while the dispute is still being
// arbitrated.
func (d *Dispute) AddEvidence(refs ...string) error {
	if d.status.IsTerminal() {
		return ErrDisputeAlreadyResolved
	}
	d.evidence = append(d.evidence, refs...)
	return nil
}

// StartReview moves the dispute into the admin's review queue.
func (d *Dispute) StartReview() error {
	newStatus, err := d.status.StartReview()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Resolve terminates the dispute with the given outcome. Single-shot: a
// second call fails with ErrDisputeAlreadyResolved and changes nothing.
func (d *Dispute) Resolve(resolution Resolution) error {
	if err := resolution.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Resolve()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.resolution = &resolution
	return nil
}

// Reject dismisses the dispute without touching the payment or the item,
// unblocking release.
func (d *Dispute) Reject() error {
	newStatus, err := d.status.Reject()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func requireUUID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}
