package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkItemShippedCommandIsNotConstructed = errors.New(
	"MarkItemShippedCommand must be created via NewMarkItemShippedCommand constructor",
)

// MarkItemShippedCommand records that the claiming traveler has dispatched
// the item toward its destination.
type MarkItemShippedCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.ActorContext
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkItemShippedCommand creates a command for a traveler to mark an item shipped.
func NewMarkItemShippedCommand(actor kernel.ActorContext, itemID kernel.UUID) (MarkItemShippedCommand, error) {
	cmd := MarkItemShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setItemID(itemID),
	); err != nil {
		return MarkItemShippedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemShippedCommandIsNotConstructed)
}

// Actor returns the shipping traveler.
func (c MarkItemShippedCommand) Actor() kernel.ActorContext {
	return c.actor
}

// ItemID returns the identifier of the shipped item.
func (c MarkItemShippedCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *MarkItemShippedCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleTraveler) {
		return ErrActorMustBeTraveler
	}
	c.actor = actor
	return nil
}

func (c *MarkItemShippedCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
