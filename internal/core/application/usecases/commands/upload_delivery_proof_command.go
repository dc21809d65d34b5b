package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrUploadDeliveryProofCommandIsNotConstructed = errors.New(
	"UploadDeliveryProofCommand must be created via NewUploadDeliveryProofCommand constructor",
)

// UploadDeliveryProofCommand attaches the traveler's proof of delivery and
// completes the item's delivery lifecycle.
type UploadDeliveryProofCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.ActorContext
	itemID   kernel.UUID
	proofURL string

	guard guard.ConstructorGuard
}

// NewUploadDeliveryProofCommand creates a proof upload command.
func NewUploadDeliveryProofCommand(
	actor kernel.ActorContext,
	itemID kernel.UUID,
	proofURL string,
) (UploadDeliveryProofCommand, error) {
	cmd := UploadDeliveryProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setItemID(itemID),
		cmd.setProofURL(proofURL),
	); err != nil {
		return UploadDeliveryProofCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadDeliveryProofCommand) Validate() error {
	return c.guard.Validate(ErrUploadDeliveryProofCommandIsNotConstructed)
}

// Actor returns the traveler uploading the proof.
func (c UploadDeliveryProofCommand) Actor() kernel.ActorContext {
	return c.actor
}

// ItemID returns the identifier of the delivered item.
func (c UploadDeliveryProofCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProofURL returns the reference to the stored proof artifact.
func (c UploadDeliveryProofCommand) ProofURL() string {
	return c.proofURL
}

func (c *UploadDeliveryProofCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleTraveler) {
		return ErrActorMustBeTraveler
	}
	c.actor = actor
	return nil
}

func (c *UploadDeliveryProofCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UploadDeliveryProofCommand) setProofURL(proofURL string) error {
	if proofURL == "" {
		return order.ErrProofIsRequired
	}
	c.proofURL = proofURL
	return nil
}
