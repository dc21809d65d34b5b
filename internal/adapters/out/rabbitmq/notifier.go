// Package rabbitmq provides the AMQP-backed notification publisher.
// Notifications are fire-and-forget: the notification service consumes them
// off the exchange and renders the template for the recipient's channels.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/rabbitmq/amqp091-go"
)

const notificationsExchange = "notifications"

// AmqpNotifier publishes notification messages to a RabbitMQ fanout exchange.
// It implements ports.Notifier.
type AmqpNotifier struct {
	channel *amqp091.Channel
}

// notificationMessage is the wire format consumed by the notification service.
type notificationMessage struct {
	Template  string         `json:"template"`
	Recipient string         `json:"recipient"`
	Data      map[string]any `json:"data,omitempty"`
	SentAt    time.Time      `json:"sentAt"`
}

// NewAmqpNotifier creates a notifier bound to an open AMQP channel.
// The notifications exchange is declared idempotently.
func NewAmqpNotifier(channel *amqp091.Channel) (*AmqpNotifier, error) {
	err := channel.ExchangeDeclare(
		notificationsExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare %s exchange: %w", notificationsExchange, err)
	}

	return &AmqpNotifier{channel: channel}, nil
}

// Notify publishes one notification message. Delivery to the recipient is the
// notification service's concern; an error here only means the message never
// reached the broker.
func (n *AmqpNotifier) Notify(
	ctx context.Context,
	template string,
	recipient kernel.UUID,
	data map[string]any,
) error {
	body, err := json.Marshal(notificationMessage{
		Template:  template,
		Recipient: recipient.String(),
		Data:      data,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = n.channel.PublishWithContext(ctx,
		notificationsExchange,
		"",    // fanout ignores routing key
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	return nil
}

var _ ports.Notifier = (*AmqpNotifier)(nil)
