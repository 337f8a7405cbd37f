// Package rabbitmq publishes notifications to a durable RabbitMQ queue.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"cargo/internal/adapters/out/notify"
	"cargo/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the subset of *amqp.Channel the notifier uses.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Notifier struct {
	publisher Publisher
	queue     string
	closers   []func() error
}

// Dial connects to url, declares the queue and returns a ready notifier.
func Dial(url, queue string) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	n := NewNotifier(ch, queue)
	n.closers = []func() error{ch.Close, conn.Close}
	return n, nil
}

func NewNotifier(publisher Publisher, queue string) *Notifier {
	return &Notifier{publisher: publisher, queue: queue}
}

func (n *Notifier) Notify(ctx context.Context, recipientID int64, event notification.Event) error {
	body, err := notify.Encode(recipientID, event)
	if err != nil {
		return err
	}

	return n.publisher.PublishWithContext(ctx,
		"",      // default exchange
		n.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         string(event.Kind),
			Timestamp:    event.OccurredAt,
			Headers:      amqp.Table{"recipient_id": recipientID},
			Body:         body,
		},
	)
}

func (n *Notifier) Close() error {
	var errs []error
	for _, c := range n.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
