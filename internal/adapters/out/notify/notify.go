// Package notify holds the outbound notifiers. Each transport publishes the
// same JSON envelope; a chat gateway on the other side renders it.
package notify

import (
	"encoding/json"
	"strconv"

	"cargo/internal/core/domain/model/notification"
)

// Encode marshals the wire form of one delivery.
func Encode(recipientID int64, event notification.Event) ([]byte, error) {
	return json.Marshal(notification.Envelope{RecipientID: recipientID, Event: event})
}

// Key is the partition/routing key of a recipient, so one recipient's
// messages stay ordered.
func Key(recipientID int64) string {
	return strconv.FormatInt(recipientID, 10)
}
