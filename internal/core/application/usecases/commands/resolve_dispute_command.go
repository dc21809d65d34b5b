package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrResolveDisputeCommandIsNotConstructed = errors.New(
		"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
	)

	// ErrActorMustBeAdmin is returned when a non-admin attempts an
	// admin-only dispute decision.
	ErrActorMustBeAdmin = errors.New("actor must have the admin role")
)

// ResolveDisputeCommand records an admin's single-shot decision on a dispute.
// The amount is meaningful for partial refunds only; other actions derive
// their recorded amount from the payment itself.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.ActorContext
	disputeID kernel.UUID
	action    dispute.Action
	amount    kernel.Money
	notes     string

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a dispute resolution command.
func NewResolveDisputeCommand(
	actor kernel.ActorContext,
	disputeID kernel.UUID,
	action dispute.Action,
	amount kernel.Money,
	notes string,
) (ResolveDisputeCommand, error) {
	cmd := ResolveDisputeCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDisputeID(disputeID),
		cmd.setAction(action),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}

	if err := cmd.setAmount(action, amount); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// Actor returns the deciding admin.
func (c ResolveDisputeCommand) Actor() kernel.ActorContext {
	return c.actor
}

// DisputeID returns the identifier of the dispute being decided.
func (c ResolveDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Action returns the chosen resolution action.
func (c ResolveDisputeCommand) Action() dispute.Action {
	return c.action
}

// Amount returns the partial refund amount. It is the zero value for any
// other action.
func (c ResolveDisputeCommand) Amount() kernel.Money {
	return c.amount
}

// Notes returns the admin's free-form decision notes.
func (c ResolveDisputeCommand) Notes() string {
	return c.notes
}

func (c *ResolveDisputeCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleAdmin) {
		return ErrActorMustBeAdmin
	}
	c.actor = actor
	return nil
}

func (c *ResolveDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}

func (c *ResolveDisputeCommand) setAction(action dispute.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}

func (c *ResolveDisputeCommand) setAmount(action dispute.Action, amount kernel.Money) error {
	if action != dispute.ActionPartialRefund {
		c.amount = kernel.Money{}
		return nil
	}

	if err := amount.Validate(); err != nil {
		return err
	}
	c.amount = amount
	return nil
}
