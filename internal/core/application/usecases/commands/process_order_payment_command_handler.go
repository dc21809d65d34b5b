package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
)

// notification templates consumed by the notification service.
const (
	TemplatePaymentReceived = "payment_received"
	TemplateDisputeOpened   = "dispute_opened"
	TemplatePaymentReleased = "payment_released"
	TemplatePaymentRefunded = "payment_refunded"
)

// ProcessOrderPaymentCommandHandler moves an order's payments into escrow
// once checkout capture is confirmed. The order's paymentProcessed flag and
// every payment's escrow transition commit atomically; the client
// notification is fire-and-forget afterwards.
type ProcessOrderPaymentCommandHandler struct {
	uowFactory CheckoutUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewProcessOrderPaymentCommandHandler creates a handler for checkout capture.
func NewProcessOrderPaymentCommandHandler(
	uowFactory CheckoutUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ProcessOrderPaymentCommandHandler {
	return ProcessOrderPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "process_order_payment"),
	}
}

// Handle processes the checkout capture command.
// Returns the updated order aggregate.
func (h ProcessOrderPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessOrderPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	capturedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = capturedOrder.MarkPaymentProcessed(); err != nil {
		return nil, err
	}

	paymentRepo := uow.PaymentRepository()
	payments, err := paymentRepo.GetAllByOrder(ctx, capturedOrder.ID())
	if err != nil {
		return nil, err
	}

	for _, p := range payments {
		if err = p.MoveToEscrow(); err != nil {
			return nil, err
		}
		if err = paymentRepo.Update(ctx, p, payment.StatusPending); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, capturedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.Notify(ctx, TemplatePaymentReceived, capturedOrder.ClientID(), map[string]any{
		"orderId": capturedOrder.ID().String(),
		"amount":  capturedOrder.TotalAmount().Amount(),
	}); err != nil {
		h.logger.WarnContext(ctx, "payment received notification failed", "error", err)
	}

	return capturedOrder, nil
}
