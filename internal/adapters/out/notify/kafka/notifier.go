// Package kafka publishes notifications to a Kafka topic keyed by recipient.
package kafka

import (
	"context"

	"cargo/internal/adapters/out/notify"
	"cargo/internal/core/domain/model/notification"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer the notifier uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

type Notifier struct {
	writer Writer
}

// NewNotifier writes to topic on broker. Writes are synchronous so that
// Notify reports broker errors to the fan-out.
func NewNotifier(broker, topic string) *Notifier {
	return &Notifier{writer: &skafka.Writer{
		Addr:                   skafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireOne,
		AllowAutoTopicCreation: true,
	}}
}

func NewNotifierWithWriter(w Writer) *Notifier {
	return &Notifier{writer: w}
}

func (n *Notifier) Notify(ctx context.Context, recipientID int64, event notification.Event) error {
	body, err := notify.Encode(recipientID, event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, skafka.Message{
		Key:   []byte(notify.Key(recipientID)),
		Value: body,
		Headers: []skafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	})
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}
