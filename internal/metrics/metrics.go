// Package metrics declares the Prometheus collectors of the dispatch core.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeShortfall   = "insufficient_balance"
	OutcomeRejected    = "rejected"
	OutcomeFailed      = "failed"
	OutcomePanicked    = "panicked"
)

// NewOrderAcceptsTotal counts accept attempts by outcome.
func NewOrderAcceptsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_order_accepts_total",
		Help: "Total number of order accept attempts by outcome",
	}, []string{"outcome"})
}

// NewFeesSetTotal counts orders opened by a dispatcher.
func NewFeesSetTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cargo_fees_set_total",
		Help: "Total number of orders priced and opened for acceptance",
	})
}

// NewLedgerMovementsTotal sums credited and debited amounts by direction.
func NewLedgerMovementsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_ledger_movements_amount_total",
		Help: "Sum of balance movements by direction and source",
	}, []string{"direction", "source"})
}

// NewProofReviewsTotal counts top-up proof reviews by decision.
func NewProofReviewsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_proof_reviews_total",
		Help: "Total number of top-up proof reviews by decision",
	}, []string{"decision"})
}

// NewNotificationsTotal counts per-recipient deliveries by event kind and outcome.
func NewNotificationsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cargo_notifications_total",
		Help: "Total number of notification deliveries by kind and outcome",
	}, []string{"kind", "outcome"})
}

// Dispatch bundles the collectors handed to use cases.
type Dispatch struct {
	OrderAccepts    *prometheus.CounterVec
	FeesSet         prometheus.Counter
	LedgerMovements *prometheus.CounterVec
	ProofReviews    *prometheus.CounterVec
	Notifications   *prometheus.CounterVec
}

// NewDispatch creates the collectors and registers them with reg.
// Passing nil skips registration, which tests use to avoid global state.
func NewDispatch(reg prometheus.Registerer) *Dispatch {
	d := &Dispatch{
		OrderAccepts:    NewOrderAcceptsTotal(),
		FeesSet:         NewFeesSetTotal(),
		LedgerMovements: NewLedgerMovementsTotal(),
		ProofReviews:    NewProofReviewsTotal(),
		Notifications:   NewNotificationsTotal(),
	}
	if reg != nil {
		reg.MustRegister(d.OrderAccepts, d.FeesSet, d.LedgerMovements, d.ProofReviews, d.Notifications)
	}
	return d
}

// Ledger label values.
const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"

	SourceSignup     = "signup_bonus"
	SourceTopUp      = "top_up"
	SourceProof      = "proof"
	SourceFee        = "order_fee"
	SourceCorrection = "correction"
)

// The Observe helpers are safe on a nil *Dispatch.

func (d *Dispatch) ObserveAccept(outcome string) {
	if d != nil {
		d.OrderAccepts.WithLabelValues(outcome).Inc()
	}
}

func (d *Dispatch) ObserveFeeSet() {
	if d != nil {
		d.FeesSet.Inc()
	}
}

func (d *Dispatch) ObserveLedger(direction, source string, amount int64) {
	if d != nil && amount > 0 {
		d.LedgerMovements.WithLabelValues(direction, source).Add(float64(amount))
	}
}

func (d *Dispatch) ObserveReview(decision string) {
	if d != nil {
		d.ProofReviews.WithLabelValues(decision).Inc()
	}
}
