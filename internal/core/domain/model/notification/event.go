// Package notification defines the messages the dispatch core hands to
// outbound notifiers. Rendering them for a particular chat client is the
// notifier's concern.
package notification

import "time"

type Kind string

const (
	OrderSubmitted   Kind = "order_submitted"
	OrderOpened      Kind = "order_opened"
	OrderTaken       Kind = "order_taken"
	OrderCompleted   Kind = "order_completed"
	BalanceCredited  Kind = "balance_credited"
	BalanceDebited   Kind = "balance_debited"
	ProofSubmitted   Kind = "proof_submitted"
	ProofReviewed    Kind = "proof_reviewed"
	ProofsPending    Kind = "proofs_pending"
	AccountStatus    Kind = "account_status"
	BroadcastMessage Kind = "broadcast"
)

// Event is a self-contained notification. Zero fields are omitted on the wire.
type Event struct {
	Kind       Kind      `json:"kind"`
	OrderID    int64     `json:"order_id,omitempty"`
	CarrierID  int64     `json:"carrier_id,omitempty"`
	ProofID    string    `json:"proof_id,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	Balance    int64     `json:"balance,omitempty"`
	Count      int       `json:"count,omitempty"`
	Text       string    `json:"text,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Envelope pairs an event with its recipient for transports that publish
// to a shared channel.
type Envelope struct {
	RecipientID int64 `json:"recipient_id"`
	Event       Event `json:"event"`
}
