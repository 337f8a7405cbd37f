// Package topup models payment proofs a carrier submits to have its balance
// credited after a dispatcher review.
package topup

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrProofIsNotConstructed = errors.New("Proof must be created via NewProof constructor")

// Status of a proof. Pending is the only non-terminal value.
type Status string

const (
	Pending  Status = "pending"
	Approved Status = "approved"
	Rejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Pending, Approved, Rejected:
		return Status(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("proof status", fmt.Errorf("%q is not pending, approved or rejected", s))
	}
}

func (s Status) String() string { return string(s) }

// Proof is a single top-up request. Reviewing it is one-shot: once approved
// or rejected it can never be reviewed again, which is what keeps a replayed
// approval from crediting twice.
type Proof struct {
	id         kernel.UUID
	carrierID  int64
	artifact   string
	status     Status
	amount     *int64
	createdAt  time.Time
	reviewedAt *time.Time
	reviewerID *int64
	guard      guard.ConstructorGuard
}

// NewProof creates a pending proof. artifact is an opaque reference to the
// uploaded image or document.
func NewProof(carrierID int64, artifact string, now time.Time) (*Proof, error) {
	var idErr, artifactErr error
	if carrierID <= 0 {
		idErr = errs.NewValueIsOutOfRangeError("carrier id", carrierID, 1, "unbounded")
	}
	artifact = strings.TrimSpace(artifact)
	if artifact == "" {
		artifactErr = errs.NewValueIsRequiredError("artifact")
	}
	if err := errors.Join(idErr, artifactErr); err != nil {
		return nil, err
	}

	return &Proof{
		id:        kernel.NewUUID(),
		carrierID: carrierID,
		artifact:  artifact,
		status:    Pending,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the persisted form of a Proof.
type Snapshot struct {
	ID         kernel.UUID
	CarrierID  int64
	Artifact   string
	Status     Status
	Amount     *int64
	CreatedAt  time.Time
	ReviewedAt *time.Time
	ReviewerID *int64
}

func RestoreProof(s Snapshot) (*Proof, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseStatus(string(s.Status)); err != nil {
		return nil, err
	}
	if (s.Status == Approved) != (s.Amount != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("proof", fmt.Errorf("status %s is not consistent with amount", s.Status))
	}
	return &Proof{
		id:         s.ID,
		carrierID:  s.CarrierID,
		artifact:   s.Artifact,
		status:     s.Status,
		amount:     s.Amount,
		createdAt:  s.CreatedAt,
		reviewedAt: s.ReviewedAt,
		reviewerID: s.ReviewerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (p *Proof) Snapshot() Snapshot {
	return Snapshot{
		ID:         p.id,
		CarrierID:  p.carrierID,
		Artifact:   p.artifact,
		Status:     p.status,
		Amount:     p.amount,
		CreatedAt:  p.createdAt,
		ReviewedAt: p.reviewedAt,
		ReviewerID: p.reviewerID,
	}
}

func (p *Proof) Validate() error {
	if p == nil {
		return ErrProofIsNotConstructed
	}
	return p.guard.Validate(ErrProofIsNotConstructed)
}

func (p *Proof) ID() kernel.UUID { return p.id }
func (p *Proof) CarrierID() int64 { return p.carrierID }
func (p *Proof) Artifact() string { return p.artifact }
func (p *Proof) Status() Status { return p.status }
func (p *Proof) CreatedAt() time.Time { return p.createdAt }

// Amount returns the approved amount, if any.
func (p *Proof) Amount() (int64, bool) {
	if p.amount == nil {
		return 0, false
	}
	return *p.amount, true
}

// Approve records a positive amount to be credited.
func (p *Proof) Approve(reviewerID, amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, "unbounded")
	}
	if err := p.review(reviewerID, Approved, now, "approve"); err != nil {
		return err
	}
	p.amount = &amount
	return nil
}

func (p *Proof) Reject(reviewerID int64, now time.Time) error {
	return p.review(reviewerID, Rejected, now, "reject")
}

func (p *Proof) review(reviewerID int64, to Status, now time.Time, op string) error {
	if p.status != Pending {
		return errs.NewInvalidStateErrorWithReason("proof", p.status.String(), op, errs.ErrAlreadyReviewed)
	}
	at := now.UTC()
	p.status = to
	p.reviewedAt = &at
	p.reviewerID = &reviewerID
	return nil
}
