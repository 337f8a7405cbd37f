package queries

import (
	"errors"
	"time"

	"cargo/internal/pkg/guard"
)

var ErrListPendingProofsQueryIsNotConstructed = errors.New(
	"ListPendingProofsQuery must be created via NewListPendingProofsQuery constructor",
)

// ListPendingProofsQuery returns the review queue, oldest first.
type ListPendingProofsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewListPendingProofsQuery(limit int) ListPendingProofsQuery {
	return ListPendingProofsQuery{limit: clampLimit(limit), guard: guard.NewConstructorGuard()}
}

func (q ListPendingProofsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingProofsQueryIsNotConstructed)
}

func (q ListPendingProofsQuery) Limit() int {
	return q.limit
}

type ProofView struct {
	ID          string
	CarrierID   int64
	CarrierName string
	Artifact    string
	CreatedAt   time.Time
}
