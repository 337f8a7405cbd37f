package orderrepo

import (
	"context"
	"errors"
	"time"

	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every successfully written transition so the
// unit of work can append history rows on commit.
type aggregateTracker interface {
	TrackAggregate(from order.Status, aggregate *order.Order)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order and assigns the generated id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := aggregate.AssignIdentity(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(order.Unknown, aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// CompareAndSwap writes the mutable columns of the order guarded by the
// expected status. PostgreSQL re-evaluates the WHERE clause after waiting on
// a concurrent writer's row lock, so of N racing swaps from the same status
// exactly one affects a row.
func (r *GormOrderRepository) CompareAndSwap(ctx context.Context, aggregate *order.Order, from order.Status) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(from)).
		Updates(map[string]any{
			"status":     dto.Status,
			"fee":        dto.Fee,
			"carrier_id": dto.CarrierID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(from, aggregate)
	return true, nil
}

// AppendHistory writes audit rows. It is called by the unit of work inside
// the committing transaction.
func AppendHistory(ctx context.Context, tx *gorm.DB, rows []OrderHistoryDTO) error {
	if len(rows) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range rows {
		if rows[i].RecordedAt.IsZero() {
			rows[i].RecordedAt = now
		}
	}
	return tx.WithContext(ctx).Create(&rows).Error
}
