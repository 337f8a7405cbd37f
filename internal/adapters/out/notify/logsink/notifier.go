// Package logsink is the development notifier: it writes every delivery to
// a structured log instead of a broker.
package logsink

import (
	"context"
	"log/slog"

	"cargo/internal/core/domain/model/notification"
)

type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger.With("component", "logsink")}
}

func (n *Notifier) Notify(ctx context.Context, recipientID int64, event notification.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "notification",
		"recipient", recipientID,
		"kind", event.Kind,
		"order_id", event.OrderID,
		"amount", event.Amount,
		"balance", event.Balance,
		"text", event.Text)
	return nil
}
