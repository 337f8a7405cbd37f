// Package requesterrepo persists requester accounts.
package requesterrepo

import (
	"context"
	"errors"
	"time"

	"cargo/internal/adapters/out/postgres/pgerr"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/requester"
	"cargo/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type RequesterDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement:false"`
	FullName        string `gorm:"not null"`
	ContactUsername string
	ContactPhone    string    `gorm:"not null"`
	Status          string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (RequesterDTO) TableName() string {
	return "requesters"
}

// GormRequesterRepository implements ports.RequesterRepository using GORM.
type GormRequesterRepository struct {
	db *gorm.DB
}

func NewGormRequesterRepository(db *gorm.DB) *GormRequesterRepository {
	return &GormRequesterRepository{db: db}
}

func (r *GormRequesterRepository) Add(ctx context.Context, aggregate *requester.Requester) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := RequesterDTO{
		ID:              aggregate.ID(),
		FullName:        aggregate.FullName(),
		ContactUsername: aggregate.Contact().Username(),
		ContactPhone:    aggregate.Contact().Phone(),
		Status:          aggregate.Status().String(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("requester", dto.ID, err)
		}
		return err
	}
	return nil
}

func (r *GormRequesterRepository) Get(ctx context.Context, id int64) (*requester.Requester, error) {
	var dto RequesterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requester", id)
		}
		return nil, err
	}

	status, err := kernel.ParseAccountStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return requester.RestoreRequester(requester.Profile{
		ID:       dto.ID,
		FullName: dto.FullName,
		Username: dto.ContactUsername,
		Phone:    dto.ContactPhone,
	}, status)
}

func (r *GormRequesterRepository) UpdateStatus(ctx context.Context, id int64, status kernel.AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RequesterDTO{}).
		Where("id = ?", id).
		UpdateColumn("status", status.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("requester", id)
	}
	return nil
}

func (r *GormRequesterRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	var ids pq.Int64Array
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(array_agg(id ORDER BY id), '{}') FROM requesters WHERE status = ?", kernel.AccountActive.String()).
		Row().
		Scan(&ids)
	if err != nil {
		return nil, err
	}
	return []int64(ids), nil
}
