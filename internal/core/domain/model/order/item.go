package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrAlreadyClaimed is returned when a traveler attempts to claim an item
	// that already has a claimant, including the loser of a claim race.
	ErrAlreadyClaimed = errors.New("item is already claimed by a traveler")

	// ErrNotClaimant is returned when a traveler attempts a delivery action on
	// an item claimed by someone else.
	ErrNotClaimant = errors.New("item is claimed by a different traveler")

	// ErrProofIsRequired is returned when a delivery proof upload carries no
	// attachment reference.
	ErrProofIsRequired = errors.New("delivery proof reference is required")
)

// Item is the unit of fulfillment within an Order: one product to be bought
// and delivered by a single traveler. It carries the delivery state machine
// and the traveler's exclusive claim.
//
// Item follows these invariants:
//   - claimedBy is set exactly once, by Claim
//   - every delivery transition is performed by the authorized actor only
//   - rejected transitions leave the item unchanged
//   - items are never deleted; Completed is the terminal delivery state
//
// The claim's check-and-set against the backing store is the repository's
// responsibility; Claim enforces the same rule on the in-memory state so that
// a stale aggregate can never be claimed twice within one process either.
type Item struct {
	id           kernel.UUID
	orderID      kernel.UUID
	productID    kernel.UUID
	destination  kernel.Destination
	deliveryDate time.Time
	productPrice kernel.Money
	rewardAmount kernel.Money
	claimedBy    *kernel.UUID
	status       DeliveryStatus
	proofURL     string

	isConstructed bool
}

// NewItem creates a new unclaimed Item in Created status.
// The reward amount is the platform markup later split between the traveler
// and the company; the product price is what the traveler will be reimbursed.
func NewItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	destination kernel.Destination,
	deliveryDate time.Time,
	productPrice kernel.Money,
	rewardAmount kernel.Money,
) (*Item, error) {
	if err := errors.Join(
		validateUUID("itemId", id),
		validateUUID("orderId", orderID),
		validateUUID("productId", productID),
		destination.Validate(),
		productPrice.Validate(),
		rewardAmount.Validate(),
	); err != nil {
		return nil, err
	}

	if deliveryDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("deliveryDate")
	}

	return &Item{
		id:            id,
		orderID:       orderID,
		productID:     productID,
		destination:   destination,
		deliveryDate:  deliveryDate,
		productPrice:  productPrice,
		rewardAmount:  rewardAmount,
		status:        StatusCreated,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an Item from persistence without replaying its
// lifecycle. The stored status, claim and proof are trusted as-is after
// validation.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	destination kernel.Destination,
	deliveryDate time.Time,
	productPrice kernel.Money,
	rewardAmount kernel.Money,
	claimedBy *kernel.UUID,
	status DeliveryStatus,
	proofURL string,
) (*Item, error) {
	item, err := NewItem(id, orderID, productID, destination, deliveryDate, productPrice, rewardAmount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if claimedBy != nil {
		if err = claimedBy.Validate(); err != nil {
			return nil, err
		}
	}
	if claimedBy == nil && status != StatusCreated {
		return nil, errs.NewValueIsInvalidError("claimedBy is required for claimed statuses")
	}

	item.claimedBy = claimedBy
	item.status = status
	item.proofURL = proofURL
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the purchased product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Destination returns the delivery destination.
func (i *Item) Destination() kernel.Destination {
	return i.destination
}

// DeliveryDate returns the promised delivery date.
func (i *Item) DeliveryDate() time.Time {
	return i.deliveryDate
}

// ProductPrice returns the product price portion of the item charge.
func (i *Item) ProductPrice() kernel.Money {
	return i.productPrice
}

// RewardAmount returns the markup portion of the item charge.
func (i *Item) RewardAmount() kernel.Money {
	return i.rewardAmount
}

// Charge returns the full amount the client pays for this item:
// product price plus markup.
func (i *Item) Charge() (kernel.Money, error) {
	return i.productPrice.Add(i.rewardAmount)
}

// ClaimedBy returns the claiming traveler's ID, or nil while unclaimed.
func (i *Item) ClaimedBy() *kernel.UUID {
	return i.claimedBy
}

// Status returns the current delivery status.
func (i *Item) Status() DeliveryStatus {
	return i.status
}

// ProofURL returns the delivery proof attachment reference, empty until uploaded.
func (i *Item) ProofURL() string {
	return i.proofURL
}

// Claim binds the traveler as the item's sole fulfiller and moves the item to
// Assigned. Claiming an already-claimed item fails with ErrAlreadyClaimed.
func (i *Item) Claim(travelerID kernel.UUID) error {
	if err := travelerID.Validate(); err != nil {
		return err
	}
	if i.claimedBy != nil {
		return ErrAlreadyClaimed
	}

	newStatus, err := i.status.Assign()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.claimedBy = &travelerID
	return nil
}

// MarkShipped records that the claiming traveler dispatched the item.
// Only the claimant may ship.
func (i *Item) MarkShipped(travelerID kernel.UUID) error {
	if err := i.authorizeClaimant(travelerID); err != nil {
		return err
	}

	newStatus, err := i.status.Ship()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// ConfirmByTraveler records the traveler's delivery acknowledgement.
// Only the claimant may confirm, and only from Shipped.
func (i *Item) ConfirmByTraveler(travelerID kernel.UUID) error {
	if err := i.authorizeClaimant(travelerID); err != nil {
		return err
	}

	newStatus, err := i.status.ConfirmByTraveler()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// ConfirmByClient records the client's receipt acknowledgement.
// Ownership of the order is checked by the aggregate root; the item only
// enforces the transition sequence.
func (i *Item) ConfirmByClient() error {
	newStatus, err := i.status.ConfirmByClient()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// AttachProof stores the delivery proof reference and performs the final
// transition to Completed. Proof upload is allowed only once the client has
// confirmed; it is a precondition satisfaction, not a separate state.
func (i *Item) AttachProof(travelerID kernel.UUID, proofURL string) error {
	if err := i.authorizeClaimant(travelerID); err != nil {
		return err
	}
	if proofURL == "" {
		return ErrProofIsRequired
	}

	newStatus, err := i.status.Complete()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.proofURL = proofURL
	return nil
}

// ResetForRedelivery restarts the delivery state machine after a dispute was
// resolved with the redelivery action. The same traveler retains the claim;
// any previously uploaded proof is discarded.
func (i *Item) ResetForRedelivery() error {
	newStatus, err := i.status.Redeliver()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.proofURL = ""
	return nil
}

func (i *Item) authorizeClaimant(travelerID kernel.UUID) error {
	if err := travelerID.Validate(); err != nil {
		return err
	}
	if i.claimedBy == nil || !i.claimedBy.IsEqual(travelerID) {
		return ErrNotClaimant
	}
	return nil
}

func validateUUID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}
