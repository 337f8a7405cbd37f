package ports

import (
	"context"

	"cargo/internal/core/domain/model/carrier"
	"cargo/internal/core/domain/model/kernel"
)

// CarrierRepository is the carrier ledger. Balance movements are applied in
// the store with single conditional statements, never read-modify-write.
type CarrierRepository interface {
	// Add inserts a carrier with its opening balance. A second registration
	// of the same id returns ObjectAlreadyExists.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	Get(ctx context.Context, id int64) (*carrier.Carrier, error)

	// Credit adds amount and returns the new balance.
	Credit(ctx context.Context, id int64, amount int64) (int64, error)

	// DebitIfSufficient subtracts amount only when the balance covers it and
	// returns the new balance. Otherwise the balance is untouched and an
	// InsufficientBalanceError is returned.
	DebitIfSufficient(ctx context.Context, id int64, amount int64) (int64, error)

	UpdateStatus(ctx context.Context, id int64, status kernel.AccountStatus) error

	// ListActiveIDs returns the ids of all carriers that are not blocked.
	ListActiveIDs(ctx context.Context) ([]int64, error)
}
