package ports

import (
	"context"

	"cargo/internal/core/domain/model/notification"
)

// Notifier delivers one event to one recipient. Implementations are
// at-most-once; callers never retry.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, event notification.Event) error
}
