package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrActorMustBeClient    = errors.New("only a client may perform this operation")
	ErrOrderItemsAreMissing = errors.New("order must contain at least one item")
)

// OrderItemSpec describes one product to purchase within a new order:
// what to buy, where to deliver it, and the price/markup breakdown.
type OrderItemSpec struct {
	ProductID    kernel.UUID
	Destination  kernel.Destination
	DeliveryDate time.Time
	ProductPrice kernel.Money
	RewardAmount kernel.Money
}

// CreateOrderCommand represents a client's checkout: a new order with one
// item per purchased product, plus the eager pending payment records.
//
// Example:
//
//	cmd, err := commands.NewCreateOrderCommand(actor, orderID, "mobile_money", specs)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.ActorContext
	orderID       kernel.UUID
	paymentMethod string
	items         []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The actor must be a client; the item list must not be empty.
func NewCreateOrderCommand(
	actor kernel.ActorContext,
	orderID kernel.UUID,
	paymentMethod string,
	items []OrderItemSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the client performing the checkout.
func (c CreateOrderCommand) Actor() kernel.ActorContext {
	return c.actor
}

// OrderID returns the new order's identifier.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns the payment method chosen at checkout.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Items returns the item specifications.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleClient) {
		return ErrActorMustBeClient
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errors.New("payment method is required")
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemSpec) error {
	if len(items) == 0 {
		return ErrOrderItemsAreMissing
	}
	c.items = items
	return nil
}
