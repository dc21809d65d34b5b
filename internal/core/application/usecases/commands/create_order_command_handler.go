package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order aggregate with its items plus one pending payment record
// per item, all within a single transaction.
//
// Payments are created eagerly at checkout so that the payment ledger always
// has a row to capture against; they stay pending until checkout capture
// moves them into escrow.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Returns the created order aggregate.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewItem(
			kernel.NewUUID(),
			cmd.OrderID(),
			spec.ProductID,
			spec.Destination,
			spec.DeliveryDate,
			spec.ProductPrice,
			spec.RewardAmount,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), cmd.PaymentMethod(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	paymentRepo := uow.PaymentRepository()
	for _, item := range items {
		p, paymentErr := payment.NewPayment(
			kernel.NewUUID(),
			newOrder.ID(),
			item.ID(),
			newOrder.ClientID(),
			item.ProductID(),
			item.ProductPrice(),
			item.RewardAmount(),
		)
		if paymentErr != nil {
			return nil, paymentErr
		}

		if err = paymentRepo.Add(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
