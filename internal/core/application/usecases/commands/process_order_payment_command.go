package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrProcessOrderPaymentCommandIsNotConstructed = errors.New(
		"ProcessOrderPaymentCommand must be created via NewProcessOrderPaymentCommand constructor",
	)
	ErrActorMustBeSystem = errors.New("only the system may perform this operation")
)

// ProcessOrderPaymentCommand records checkout capture for an order: the
// gateway confirmed the client's money arrived, so the order's payments move
// from pending into escrow. Issued by the payment-gateway callback, never by
// a human actor.
type ProcessOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.ActorContext
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessOrderPaymentCommand creates a command to capture an order's payments.
// The actor must hold the system role.
func NewProcessOrderPaymentCommand(actor kernel.ActorContext, orderID kernel.UUID) (ProcessOrderPaymentCommand, error) {
	cmd := ProcessOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return ProcessOrderPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderPaymentCommandIsNotConstructed)
}

// Actor returns the system actor issuing the capture.
func (c ProcessOrderPaymentCommand) Actor() kernel.ActorContext {
	return c.actor
}

// OrderID returns the captured order's identifier.
func (c ProcessOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ProcessOrderPaymentCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleSystem) {
		return ErrActorMustBeSystem
	}
	c.actor = actor
	return nil
}

func (c *ProcessOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
