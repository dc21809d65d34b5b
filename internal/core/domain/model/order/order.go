package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrPaymentAlreadyProcessed is returned when checkout capture is reported
	// twice for the same order.
	ErrPaymentAlreadyProcessed = errors.New("order payment is already processed")

	// ErrPaymentMethodIsRequired is returned when an order carries no payment method.
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// Order is the aggregate root for one checkout: the set of items a client
// purchased together. It owns its Items by composition.
//
// Order follows these invariants:
//   - totalAmount equals the sum of item charges at creation time and never
//     changes afterwards; refunds are modeled on the Payment, never by
//     mutating the Order
//   - paymentProcessed flips from false to true exactly once
//   - neither the order nor its items are ever deleted
type Order struct {
	id               kernel.UUID
	clientID         kernel.UUID
	items            []*Item
	totalAmount      kernel.Money
	paymentMethod    string
	paymentProcessed bool
	createdAt        time.Time

	isConstructed bool
}

// NewOrder creates a new Order owning the given items. The total amount is
// computed here, once, as the sum of item charges.
//
// Example:
//
//	item, _ := order.NewItem(itemID, orderID, productID, dest, date, price, reward)
//	o, err := order.NewOrder(orderID, clientID, "mobile_money", []*order.Item{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, clientID kernel.UUID, paymentMethod string, items []*Item) (*Order, error) {
	if err := errors.Join(
		validateUUID("orderId", id),
		validateUUID("clientId", clientID),
	); err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		return nil, ErrPaymentMethodIsRequired
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	total, err := kernel.NewMoney(0)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		charge, chargeErr := item.Charge()
		if chargeErr != nil {
			return nil, chargeErr
		}
		total, err = total.Add(charge)
		if err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		items:         items,
		totalAmount:   total,
		paymentMethod: paymentMethod,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored total is
// validated against the sum of item charges to catch corrupted rows.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	paymentMethod string,
	items []*Item,
	totalAmount kernel.Money,
	paymentProcessed bool,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, clientID, paymentMethod, items)
	if err != nil {
		return nil, err
	}

	if !o.totalAmount.IsEqual(totalAmount) {
		return nil, errs.NewValueIsInvalidError("totalAmount does not equal the sum of item charges")
	}

	o.paymentProcessed = paymentProcessed
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Items returns the order's items.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the owned item with the given ID.
// Returns an ObjectNotFoundError when the order has no such item.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// TotalAmount returns the immutable checkout total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentProcessed reports whether checkout capture has been confirmed.
func (o *Order) PaymentProcessed() bool {
	return o.paymentProcessed
}

// CreatedAt returns the checkout time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given client placed this order.
func (o *Order) IsOwnedBy(clientID kernel.UUID) bool {
	return o.clientID.IsEqual(clientID)
}

// MarkPaymentProcessed records checkout capture. It is a one-way flag;
// a second call fails with ErrPaymentAlreadyProcessed.
func (o *Order) MarkPaymentProcessed() error {
	if o.paymentProcessed {
		return ErrPaymentAlreadyProcessed
	}
	o.paymentProcessed = true
	return nil
}
