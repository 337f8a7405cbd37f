// Package fanout delivers one event to many recipients with per-recipient
// isolation: a slow, failing or panicking delivery never affects the others
// and never reaches the caller.
package fanout

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/ports"
	"cargo/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency = 8
	DefaultTimeout     = 5 * time.Second
)

// Report summarizes one Send call.
type Report struct {
	Delivered int
	Failed    int
}

// Fanout sends events through a ports.Notifier.
//
// Deliveries are at-most-once. Send waits for all of them, each bounded by
// the per-delivery timeout, and runs them on a context detached from the
// caller's cancellation so that a finished request does not abort
// notifications of a committed state change.
type Fanout struct {
	notifier    ports.Notifier
	concurrency int
	timeout     time.Duration
	logger      *slog.Logger
	counter     *prometheus.CounterVec
}

// New builds a Fanout. Non-positive concurrency or timeout fall back to the defaults.
// counter may be nil.
func New(notifier ports.Notifier, concurrency int, timeout time.Duration, logger *slog.Logger, counter *prometheus.CounterVec) *Fanout {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fanout{
		notifier:    notifier,
		concurrency: concurrency,
		timeout:     timeout,
		logger:      logger.With("component", "fanout"),
		counter:     counter,
	}
}

// Send delivers event to every recipient, skipping duplicate and
// non-positive ids.
func (f *Fanout) Send(ctx context.Context, recipients []int64, event notification.Event) Report {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	base := context.WithoutCancel(ctx)

	var delivered, failed atomic.Int64
	seen := make(map[int64]struct{}, len(recipients))

	g := new(errgroup.Group)
	g.SetLimit(f.concurrency)
	for _, id := range recipients {
		if id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			if f.deliver(base, id, event) {
				delivered.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return Report{Delivered: int(delivered.Load()), Failed: int(failed.Load())}
}

// SendOne is Send for a single recipient.
func (f *Fanout) SendOne(ctx context.Context, recipient int64, event notification.Event) Report {
	return f.Send(ctx, []int64{recipient}, event)
}

func (f *Fanout) deliver(base context.Context, recipient int64, event notification.Event) (ok bool) {
	ctx, cancel := context.WithTimeout(base, f.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			ok = false
			f.count(event.Kind, metrics.OutcomePanicked)
			f.logger.Error("notifier panicked",
				"recipient", recipient,
				"kind", event.Kind,
				"panic", fmt.Sprint(r))
		}
	}()

	if err := f.notifier.Notify(ctx, recipient, event); err != nil {
		f.count(event.Kind, metrics.OutcomeFailed)
		f.logger.Warn("notification not delivered",
			"recipient", recipient,
			"kind", event.Kind,
			"error", err)
		return false
	}

	f.count(event.Kind, metrics.OutcomeOK)
	return true
}

func (f *Fanout) count(kind notification.Kind, outcome string) {
	if f.counter != nil {
		f.counter.WithLabelValues(string(kind), outcome).Inc()
	}
}
