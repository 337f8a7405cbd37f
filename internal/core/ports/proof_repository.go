package ports

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/topup"
)

type ProofRepository interface {
	Add(ctx context.Context, aggregate *topup.Proof) error
	Get(ctx context.Context, id kernel.UUID) (*topup.Proof, error)

	// CompareAndSwap stores the reviewed proof only if it is still in status
	// from. A false result means someone else reviewed it first.
	CompareAndSwap(ctx context.Context, aggregate *topup.Proof, from topup.Status) (bool, error)

	// CountPendingBefore counts pending proofs created before the cutoff.
	CountPendingBefore(ctx context.Context, cutoff time.Time) (int, error)
}
