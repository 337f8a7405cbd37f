package logsink_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"cargo/internal/adapters/out/notify/logsink"
	"cargo/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Notify_WritesRecord(t *testing.T) {
	var buf bytes.Buffer
	n := logsink.NewNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, n.Notify(t.Context(), 501, notification.Event{Kind: notification.OrderOpened, OrderID: 7}))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "notification", rec["msg"])
	assert.Equal(t, "logsink", rec["component"])
	assert.InDelta(t, 501, rec["recipient"], 0)
	assert.Equal(t, "order_opened", rec["kind"])
}

func TestNotifier_Notify_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := logsink.NewNotifier(nil).Notify(ctx, 501, notification.Event{Kind: notification.OrderOpened})

	assert.ErrorIs(t, err, context.Canceled)
}
