package fanout_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cargo/internal/core/application/fanout"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, recipientID int64, event notification.Event) error {
	args := m.Called(ctx, recipientID, event)
	return args.Error(0)
}

// funcNotifier lets a test control timing and panics.
type funcNotifier func(ctx context.Context, recipientID int64) error

func (f funcNotifier) Notify(ctx context.Context, recipientID int64, _ notification.Event) error {
	return f(ctx, recipientID)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFanout_Send_IsolatesFailures(t *testing.T) {
	// Arrange
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, int64(1), mock.Anything).Return(nil)
	notifier.On("Notify", mock.Anything, int64(2), mock.Anything).Return(errors.New("chat blocked the bot"))
	notifier.On("Notify", mock.Anything, int64(3), mock.Anything).Return(nil)

	counter := metrics.NewNotificationsTotal()
	f := fanout.New(notifier, 2, time.Second, quietLogger(), counter)

	// Act
	report := f.Send(t.Context(), []int64{1, 2, 3, 3, 0}, notification.Event{Kind: notification.OrderOpened, OrderID: 7})

	// Assert
	assert.Equal(t, fanout.Report{Delivered: 2, Failed: 1}, report)
	notifier.AssertNumberOfCalls(t, "Notify", 3)
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues("order_opened", metrics.OutcomeFailed)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(counter.WithLabelValues("order_opened", metrics.OutcomeOK)), 0)
}

func TestFanout_Send_ContainsPanics(t *testing.T) {
	notifier := funcNotifier(func(_ context.Context, id int64) error {
		if id == 2 {
			panic("boom")
		}
		return nil
	})
	f := fanout.New(notifier, 4, time.Second, quietLogger(), nil)

	var report fanout.Report
	require.NotPanics(t, func() {
		report = f.Send(t.Context(), []int64{1, 2, 3}, notification.Event{Kind: notification.BroadcastMessage})
	})

	assert.Equal(t, fanout.Report{Delivered: 2, Failed: 1}, report)
}

func TestFanout_Send_TimesOutSlowRecipients(t *testing.T) {
	notifier := funcNotifier(func(ctx context.Context, id int64) error {
		if id == 1 {
			<-ctx.Done()
			return ctx.Err()
		}
		return nil
	})
	f := fanout.New(notifier, 4, 50*time.Millisecond, quietLogger(), nil)

	start := time.Now()
	report := f.Send(t.Context(), []int64{1, 2}, notification.Event{Kind: notification.OrderOpened})

	assert.Equal(t, fanout.Report{Delivered: 1, Failed: 1}, report)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestFanout_Send_RespectsConcurrencyLimit(t *testing.T) {
	var (
		current atomic.Int32
		peak    atomic.Int32
		mu      sync.Mutex
	)
	notifier := funcNotifier(func(context.Context, int64) error {
		n := current.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		current.Add(-1)
		return nil
	})
	f := fanout.New(notifier, 3, time.Second, quietLogger(), nil)

	recipients := make([]int64, 20)
	for i := range recipients {
		recipients[i] = int64(i + 1)
	}
	report := f.Send(t.Context(), recipients, notification.Event{Kind: notification.OrderOpened})

	assert.Equal(t, 20, report.Delivered)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestFanout_Send_SurvivesCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var delivered atomic.Int32
	notifier := funcNotifier(func(ctx context.Context, _ int64) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		delivered.Add(1)
		return nil
	})
	f := fanout.New(notifier, 2, time.Second, quietLogger(), nil)

	report := f.Send(ctx, []int64{1, 2}, notification.Event{Kind: notification.OrderCompleted})

	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, int32(2), delivered.Load())
}
