package rabbitmq_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cargo/internal/adapters/out/notify/rabbitmq"
	"cargo/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestNotifier_Notify(t *testing.T) {
	ctx := t.Context()
	at := time.Now().UTC()
	publisher := new(MockPublisher)

	var published amqp.Publishing
	publisher.On("PublishWithContext", ctx, "", "cargo.notifications", false, false, mock.AnythingOfType("amqp091.Publishing")).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
		Return(nil).Once()

	n := rabbitmq.NewNotifier(publisher, "cargo.notifications")
	err := n.Notify(ctx, 42, notification.Event{Kind: notification.OrderTaken, OrderID: 7, CarrierID: 501, OccurredAt: at})

	require.NoError(t, err)
	publisher.AssertExpectations(t)
	assert.Equal(t, "order_taken", published.Type)
	assert.Equal(t, uint8(amqp.Persistent), published.DeliveryMode)
	assert.Equal(t, int64(42), published.Headers["recipient_id"])

	var env notification.Envelope
	require.NoError(t, json.Unmarshal(published.Body, &env))
	assert.Equal(t, int64(501), env.Event.CarrierID)
}

func TestNotifier_Close_WithoutConnection(t *testing.T) {
	assert.NoError(t, rabbitmq.NewNotifier(new(MockPublisher), "q").Close())
}
