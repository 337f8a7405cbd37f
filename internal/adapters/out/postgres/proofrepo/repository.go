// Package proofrepo persists top-up proofs.
package proofrepo

import (
	"context"
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/topup"
	"cargo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProofDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID  int64     `gorm:"not null;index"`
	Artifact   string    `gorm:"not null"`
	Status     string    `gorm:"type:varchar(16);not null;index"`
	Amount     *int64    `gorm:"check:amount > 0"`
	CreatedAt  time.Time `gorm:"not null;index"`
	ReviewedAt *time.Time
	ReviewerID *int64
}

func (ProofDTO) TableName() string {
	return "topup_proofs"
}

func fromDomain(p *topup.Proof) ProofDTO {
	s := p.Snapshot()
	return ProofDTO{
		ID:         s.ID.Bytes(),
		CarrierID:  s.CarrierID,
		Artifact:   s.Artifact,
		Status:     s.Status.String(),
		Amount:     s.Amount,
		CreatedAt:  s.CreatedAt,
		ReviewedAt: s.ReviewedAt,
		ReviewerID: s.ReviewerID,
	}
}

func toDomain(dto ProofDTO) (*topup.Proof, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := topup.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return topup.RestoreProof(topup.Snapshot{
		ID:         id,
		CarrierID:  dto.CarrierID,
		Artifact:   dto.Artifact,
		Status:     status,
		Amount:     dto.Amount,
		CreatedAt:  dto.CreatedAt,
		ReviewedAt: dto.ReviewedAt,
		ReviewerID: dto.ReviewerID,
	})
}

// GormProofRepository implements ports.ProofRepository using GORM.
type GormProofRepository struct {
	db *gorm.DB
}

func NewGormProofRepository(db *gorm.DB) *GormProofRepository {
	return &GormProofRepository{db: db}
}

func (r *GormProofRepository) Add(ctx context.Context, aggregate *topup.Proof) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProofRepository) Get(ctx context.Context, id kernel.UUID) (*topup.Proof, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProofDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proof", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// CompareAndSwap persists a review only while the stored status is still from.
func (r *GormProofRepository) CompareAndSwap(ctx context.Context, aggregate *topup.Proof, from topup.Status) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProofDTO{}).
		Where("id = ? AND status = ?", dto.ID, from.String()).
		Updates(map[string]any{
			"status":      dto.Status,
			"amount":      dto.Amount,
			"reviewed_at": dto.ReviewedAt,
			"reviewer_id": dto.ReviewerID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *GormProofRepository) CountPendingBefore(ctx context.Context, cutoff time.Time) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&ProofDTO{}).
		Where("status = ? AND created_at < ?", topup.Pending.String(), cutoff).
		Count(&n).Error
	return int(n), err
}
