package queries

import (
	"context"

	"cargo/internal/core/domain/model/topup"

	"gorm.io/gorm"
)

type ListPendingProofsQueryHandler struct {
	db *gorm.DB
}

func NewListPendingProofsQueryHandler(db *gorm.DB) ListPendingProofsQueryHandler {
	return ListPendingProofsQueryHandler{db: db}
}

func (h ListPendingProofsQueryHandler) Handle(ctx context.Context, query ListPendingProofsQuery) ([]ProofView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	proofs := make([]ProofView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT p.id::text AS id, p.carrier_id, COALESCE(c.full_name, '') AS carrier_name,
			p.artifact, p.created_at
		FROM topup_proofs p
		LEFT JOIN carriers c ON c.id = p.carrier_id
		WHERE p.status = ?
		ORDER BY p.created_at, p.id
		LIMIT ?
	`, topup.Pending.String(), query.Limit()).Scan(&proofs).Error
	if err != nil {
		return nil, err
	}

	return proofs, nil
}
