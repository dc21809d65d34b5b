package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrOpenDisputeCommandIsNotConstructed = errors.New(
		"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
	)

	// ErrActorCannotDispute is returned when an actor outside the payment's
	// two parties attempts to open a dispute.
	ErrActorCannotDispute = errors.New("only a client or traveler can open a dispute")

	// ErrDisputeExists is returned when the payment already carries an
	// active dispute.
	ErrDisputeExists = errors.New("payment already has an active dispute")

	// ErrPaymentIsSettled is returned when disputing a payment that has
	// already reached a terminal state.
	ErrPaymentIsSettled = errors.New("payment is already settled")
)

// OpenDisputeCommand raises a dispute against the other party of an escrowed
// payment, freezing its release until resolution.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.ActorContext
	paymentID kernel.UUID
	against   kernel.UUID
	reason    dispute.Reason
	evidence  []string

	guard guard.ConstructorGuard
}

// NewOpenDisputeCommand creates a dispute opening command.
// Evidence references are optional at opening time.
func NewOpenDisputeCommand(
	actor kernel.ActorContext,
	paymentID kernel.UUID,
	against kernel.UUID,
	reason dispute.Reason,
	evidence []string,
) (OpenDisputeCommand, error) {
	cmd := OpenDisputeCommand{
		evidence: evidence,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPaymentID(paymentID),
		cmd.setAgainst(against),
		cmd.setReason(reason),
	); err != nil {
		return OpenDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

// Actor returns the disputing party.
func (c OpenDisputeCommand) Actor() kernel.ActorContext {
	return c.actor
}

// PaymentID returns the identifier of the disputed payment.
func (c OpenDisputeCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Against returns the party the dispute is raised against.
func (c OpenDisputeCommand) Against() kernel.UUID {
	return c.against
}

// Reason returns the dispute's categorized reason.
func (c OpenDisputeCommand) Reason() dispute.Reason {
	return c.reason
}

// Evidence returns the initial evidence references.
func (c OpenDisputeCommand) Evidence() []string {
	return c.evidence
}

func (c *OpenDisputeCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleClient, kernel.RoleTraveler) {
		return ErrActorCannotDispute
	}
	c.actor = actor
	return nil
}

func (c *OpenDisputeCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *OpenDisputeCommand) setAgainst(against kernel.UUID) error {
	if err := against.Validate(); err != nil {
		return err
	}
	c.against = against
	return nil
}

func (c *OpenDisputeCommand) setReason(reason dispute.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	c.reason = reason
	return nil
}
