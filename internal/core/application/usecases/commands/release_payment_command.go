package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrReleasePaymentCommandIsNotConstructed = errors.New(
		"ReleasePaymentCommand must be created via NewReleasePaymentCommand constructor",
	)

	// ErrActorCannotRelease is returned when a client or traveler attempts
	// to trigger an escrow release directly.
	ErrActorCannotRelease = errors.New("only an admin or the system can release escrowed funds")

	// ErrDisputeBlocking is returned when an active dispute holds the
	// payment's funds in escrow.
	ErrDisputeBlocking = errors.New("payment release is blocked by an active dispute")

	// ErrItemNotCompleted is returned when funds are released before the
	// item's delivery lifecycle has completed.
	ErrItemNotCompleted = errors.New("item delivery is not completed")
)

// ReleasePaymentCommand moves an escrowed payment to its terminal released
// state and pays the traveler their share of the markup.
type ReleasePaymentCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.ActorContext
	paymentID  kernel.UUID
	travelerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleasePaymentCommand creates an escrow release command.
func NewReleasePaymentCommand(
	actor kernel.ActorContext,
	paymentID kernel.UUID,
	travelerID kernel.UUID,
) (ReleasePaymentCommand, error) {
	cmd := ReleasePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPaymentID(paymentID),
		cmd.setTravelerID(travelerID),
	); err != nil {
		return ReleasePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleasePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReleasePaymentCommandIsNotConstructed)
}

// Actor returns the releasing party.
func (c ReleasePaymentCommand) Actor() kernel.ActorContext {
	return c.actor
}

// PaymentID returns the identifier of the payment being released.
func (c ReleasePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// TravelerID returns the traveler expected to receive the reward.
func (c ReleasePaymentCommand) TravelerID() kernel.UUID {
	return c.travelerID
}

func (c *ReleasePaymentCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleAdmin, kernel.RoleSystem) {
		return ErrActorCannotRelease
	}
	c.actor = actor
	return nil
}

func (c *ReleasePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *ReleasePaymentCommand) setTravelerID(travelerID kernel.UUID) error {
	if err := travelerID.Validate(); err != nil {
		return err
	}
	c.travelerID = travelerID
	return nil
}
