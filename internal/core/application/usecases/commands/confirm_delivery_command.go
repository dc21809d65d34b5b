package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)

	// ErrActorCannotConfirm is returned when an actor outside the item's
	// two confirmation parties attempts to confirm delivery.
	ErrActorCannotConfirm = errors.New("only the traveler or the ordering client can confirm delivery")
)

// ConfirmDeliveryCommand records one side's confirmation that an item reached
// its destination. Travelers confirm first, the ordering client second.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.ActorContext
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a delivery confirmation command.
// The actor must hold either the traveler or the client role; which side of
// the handshake applies is resolved against the item at handling time.
func NewConfirmDeliveryCommand(actor kernel.ActorContext, itemID kernel.UUID) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setItemID(itemID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// Actor returns the confirming party.
func (c ConfirmDeliveryCommand) Actor() kernel.ActorContext {
	return c.actor
}

// ItemID returns the identifier of the confirmed item.
func (c ConfirmDeliveryCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *ConfirmDeliveryCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleTraveler, kernel.RoleClient) {
		return ErrActorCannotConfirm
	}
	c.actor = actor
	return nil
}

func (c *ConfirmDeliveryCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
