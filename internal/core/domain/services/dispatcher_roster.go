package services

import (
	"slices"

	"cargo/internal/pkg/errs"
)

// DispatcherRoster is the fixed set of chat identities allowed to price
// orders, review proofs and adjust balances.
type DispatcherRoster struct {
	ids []int64
}

// NewDispatcherRoster copies ids, dropping duplicates and non-positive values.
func NewDispatcherRoster(ids []int64) DispatcherRoster {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return DispatcherRoster{ids: out}
}

func (r DispatcherRoster) IsDispatcher(actorID int64) bool {
	return slices.Contains(r.ids, actorID)
}

// Ensure returns a forbidden error naming the action when actorID is not a dispatcher.
func (r DispatcherRoster) Ensure(actorID int64, action string) error {
	if !r.IsDispatcher(actorID) {
		return errs.NewForbiddenError(actorID, "only dispatchers can "+action)
	}
	return nil
}

// IDs returns a copy of the roster.
func (r DispatcherRoster) IDs() []int64 {
	return slices.Clone(r.ids)
}
