package carrierrepo

import (
	"context"
	"errors"

	"cargo/internal/adapters/out/postgres/pgerr"
	"cargo/internal/core/domain/model/carrier"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarrierRepository implements ports.CarrierRepository using GORM.
type GormCarrierRepository struct {
	db *gorm.DB
}

func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// Add inserts the carrier together with its opening balance.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("carrier", dto.ID, err)
		}
		return err
	}
	return nil
}

func (r *GormCarrierRepository) Get(ctx context.Context, id int64) (*carrier.Carrier, error) {
	var dto CarrierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormCarrierRepository) Credit(ctx context.Context, id int64, amount int64) (int64, error) {
	if err := carrier.ValidateAmount(amount); err != nil {
		return 0, err
	}

	var dto CarrierDTO
	result := r.db.WithContext(ctx).
		Model(&dto).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "balance"}}}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError("carrier", id)
	}
	return dto.Balance, nil
}

// DebitIfSufficient subtracts amount only when the row still holds enough.
// On a miss the current balance is read back to tell a missing carrier from
// a short one.
func (r *GormCarrierRepository) DebitIfSufficient(ctx context.Context, id int64, amount int64) (int64, error) {
	if err := carrier.ValidateAmount(amount); err != nil {
		return 0, err
	}

	var dto CarrierDTO
	result := r.db.WithContext(ctx).
		Model(&dto).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "balance"}}}).
		Where("id = ? AND balance >= ?", id, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 1 {
		return dto.Balance, nil
	}

	var current CarrierDTO
	if err := r.db.WithContext(ctx).Select("balance").First(&current, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("carrier", id)
		}
		return 0, err
	}
	return 0, errs.NewInsufficientBalanceError(id, amount, current.Balance)
}

func (r *GormCarrierRepository) UpdateStatus(ctx context.Context, id int64, status kernel.AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CarrierDTO{}).
		Where("id = ?", id).
		UpdateColumn("status", status.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carrier", id)
	}
	return nil
}

func (r *GormCarrierRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	var ids pq.Int64Array
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(array_agg(id ORDER BY id), '{}') FROM carriers WHERE status = ?", kernel.AccountActive.String()).
		Row().
		Scan(&ids)
	if err != nil {
		return nil, err
	}
	return []int64(ids), nil
}
