package payment

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through the NewPayment factory method.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

	// ErrTravelerMismatch is returned when release names a traveler other than
	// the one already recorded on the payment.
	ErrTravelerMismatch = errors.New("traveler does not match the payment's expected traveler")
)

// Payment is the escrow record for one order item. It is the single writer of
// payment amounts: every read elsewhere is a projection, never an independent
// computation.
//
// Payment follows these invariants:
//   - totalAmount = productAmount + markupAmount, enforced at construction
//   - status only moves forward (pending -> escrow -> released), except when
//     a dispute diverts it into the terminal refunded state
//   - a released payment is immutable thereafter
//
// The traveler reference stays nil until release; the claim lives on the
// order item, and the payment only learns the payee when funds move.
type Payment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	itemID        kernel.UUID
	clientID      kernel.UUID
	productID     kernel.UUID
	travelerID    *kernel.UUID
	productAmount kernel.Money
	markupAmount  kernel.Money
	totalAmount   kernel.Money
	status        Status
	createdAt     time.Time

	isConstructed bool
}

// NewPayment creates a new pending Payment for one order item.
// The total amount is derived here, never supplied by the caller.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	itemID kernel.UUID,
	clientID kernel.UUID,
	productID kernel.UUID,
	productAmount kernel.Money,
	markupAmount kernel.Money,
) (*Payment, error) {
	if err := errors.Join(
		requireUUID("paymentId", id),
		requireUUID("orderId", orderID),
		requireUUID("itemId", itemID),
		requireUUID("clientId", clientID),
		requireUUID("productId", productID),
		productAmount.Validate(),
		markupAmount.Validate(),
	); err != nil {
		return nil, err
	}

	total, err := productAmount.Add(markupAmount)
	if err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		itemID:        itemID,
		clientID:      clientID,
		productID:     productID,
		productAmount: productAmount,
		markupAmount:  markupAmount,
		totalAmount:   total,
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a Payment from persistence. The stored total is
// checked against productAmount + markupAmount to catch corrupted rows.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	itemID kernel.UUID,
	clientID kernel.UUID,
	productID kernel.UUID,
	travelerID *kernel.UUID,
	productAmount kernel.Money,
	markupAmount kernel.Money,
	totalAmount kernel.Money,
	status Status,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, itemID, clientID, productID, productAmount, markupAmount)
	if err != nil {
		return nil, err
	}

	if !p.totalAmount.IsEqual(totalAmount) {
		return nil, errs.NewValueIsInvalidError("totalAmount does not equal productAmount + markupAmount")
	}
	if err = status.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	if travelerID != nil {
		if err = travelerID.Validate(); err != nil {
			return nil, err
		}
	}

	p.travelerID = travelerID
	p.status = status
	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the referenced order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// ItemID returns the referenced order item's identifier.
func (p *Payment) ItemID() kernel.UUID {
	return p.itemID
}

// ClientID returns the paying client's identifier.
func (p *Payment) ClientID() kernel.UUID {
	return p.clientID
}

// ProductID returns the purchased product's identifier.
func (p *Payment) ProductID() kernel.UUID {
	return p.productID
}

// TravelerID returns the payee traveler's identifier, nil until release.
func (p *Payment) TravelerID() *kernel.UUID {
	return p.travelerID
}

// ProductAmount returns the product price portion held in escrow.
func (p *Payment) ProductAmount() kernel.Money {
	return p.productAmount
}

// MarkupAmount returns the markup portion held in escrow.
func (p *Payment) MarkupAmount() kernel.Money {
	return p.markupAmount
}

// TotalAmount returns the full escrowed amount.
func (p *Payment) TotalAmount() kernel.Money {
	return p.totalAmount
}

// Status returns the current escrow status.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns when the payment record was created.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// MoveToEscrow records checkout capture: the platform now holds the funds.
func (p *Payment) MoveToEscrow() error {
	newStatus, err := p.status.ToEscrow()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Release performs the one-way move of funds out of escrow toward the
// traveler. The traveler is recorded as the payee. A second release fails
// with ErrAlreadyReleased; a mismatched traveler with ErrTravelerMismatch.
//
// The durable check-and-set against the backing store is the repository's
// responsibility; this method enforces the same rule on the loaded state.
func (p *Payment) Release(travelerID kernel.UUID) error {
	if err := travelerID.Validate(); err != nil {
		return err
	}
	if p.travelerID != nil && !p.travelerID.IsEqual(travelerID) {
		return ErrTravelerMismatch
	}

	newStatus, err := p.status.Release()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.travelerID = &travelerID
	return nil
}

// Refund diverts the payment into the terminal refunded state.
// Only dispute resolution calls this; the normal escrow path cannot.
func (p *Payment) Refund() error {
	newStatus, err := p.status.Refund()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func requireUUID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, fmt.Errorf("%s: %w", paramName, err))
	}
	return nil
}
