package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrClaimItemCommandIsNotConstructed = errors.New(
		"ClaimItemCommand must be created via NewClaimItemCommand constructor",
	)
	ErrActorMustBeTraveler = errors.New("only a traveler may perform this operation")
)

// ClaimItemCommand binds a traveler as the sole fulfiller of an order item.
// The claim is exclusive: concurrent claims on one item yield exactly one
// winner, with every loser receiving order.ErrAlreadyClaimed.
//
// Example:
//
//	cmd, err := commands.NewClaimItemCommand(travelerActor, itemID)
//	if err != nil {
//	    return err
//	}
//	item, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAlreadyClaimed) {
//	    // another traveler got there first
//	}
type ClaimItemCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.ActorContext
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimItemCommand creates a command for a traveler to claim an item.
// The actor must be a traveler.
func NewClaimItemCommand(actor kernel.ActorContext, itemID kernel.UUID) (ClaimItemCommand, error) {
	cmd := ClaimItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setItemID(itemID),
	); err != nil {
		return ClaimItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimItemCommand) Validate() error {
	return c.guard.Validate(ErrClaimItemCommandIsNotConstructed)
}

// Actor returns the claiming traveler.
func (c ClaimItemCommand) Actor() kernel.ActorContext {
	return c.actor
}

// ItemID returns the identifier of the item being claimed.
func (c ClaimItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *ClaimItemCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleTraveler) {
		return ErrActorMustBeTraveler
	}
	c.actor = actor
	return nil
}

func (c *ClaimItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
