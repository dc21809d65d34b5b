package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRejectDisputeCommandIsNotConstructed = errors.New(
	"RejectDisputeCommand must be created via NewRejectDisputeCommand constructor",
)

// RejectDisputeCommand dismisses a dispute without touching the payment,
// unblocking its release.
type RejectDisputeCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.ActorContext
	disputeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectDisputeCommand creates a dispute rejection command.
func NewRejectDisputeCommand(actor kernel.ActorContext, disputeID kernel.UUID) (RejectDisputeCommand, error) {
	cmd := RejectDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDisputeID(disputeID),
	); err != nil {
		return RejectDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDisputeCommand) Validate() error {
	return c.guard.Validate(ErrRejectDisputeCommandIsNotConstructed)
}

// Actor returns the deciding admin.
func (c RejectDisputeCommand) Actor() kernel.ActorContext {
	return c.actor
}

// DisputeID returns the identifier of the dismissed dispute.
func (c RejectDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

func (c *RejectDisputeCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleAdmin) {
		return ErrActorMustBeAdmin
	}
	c.actor = actor
	return nil
}

func (c *RejectDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}
