// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories, the unit of work and outbound notifiers.
package ports

import (
	"context"

	"cargo/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add inserts a new order and assigns its store-generated id to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or ObjectNotFound.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// CompareAndSwap writes the aggregate's current state only if the stored
	// status is still from. It reports false, with no error, when another
	// writer changed the status first. This is the single point where
	// competing accepts are serialized.
	CompareAndSwap(ctx context.Context, aggregate *order.Order, from order.Status) (bool, error)
}
