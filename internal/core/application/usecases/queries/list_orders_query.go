package queries

import (
	"errors"

	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first. With a status it serves the
// carriers' "free orders" view (Open); without one, the dispatcher's
// "all orders" view.
//
// Example:
//
//	q, _ := NewListOrdersQuery("Open", 0) // at most DefaultLimit open orders
type ListOrdersQuery struct {
	status order.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status for no filter. A non-positive
// limit means DefaultLimit; larger than MaxLimit is capped.
func NewListOrdersQuery(status string, limit int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{limit: clampLimit(limit), guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.status = parsed
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter and whether one is set.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.status != order.Unknown
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}
