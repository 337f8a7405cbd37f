// Package orderrepo persists order aggregates and their transition history.
package orderrepo

import (
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table. Status is stored as the
// integer enum value and indexed because both the accept CAS and the open
// listing filter on it.
type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	RequesterID     int64           `gorm:"not null;index"`
	CreatorRole     string          `gorm:"type:varchar(16);not null"`
	Origin          string          `gorm:"not null"`
	Destination     string          `gorm:"not null"`
	Cargo           string          `gorm:"not null"`
	WeightKg        decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Vehicle         string          `gorm:"type:varchar(16);not null"`
	PickupDate      string
	ContactUsername string
	ContactPhone    string    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null;index"`
	Fee             *int64    `gorm:"check:fee > 0"`
	Status          int       `gorm:"not null;index"`
	CarrierID       *int64    `gorm:"index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderHistoryDTO is one audit row per committed status transition.
type OrderHistoryDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrderID    int64 `gorm:"not null;index"`
	FromStatus int   `gorm:"not null"`
	ToStatus   int   `gorm:"not null"`
	Fee        *int64
	CarrierID  *int64
	RecordedAt time.Time `gorm:"not null"`
}

func (OrderHistoryDTO) TableName() string {
	return "order_history"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	return OrderDTO{
		ID:              s.ID,
		RequesterID:     s.RequesterID,
		CreatorRole:     s.CreatorRole.String(),
		Origin:          s.Origin,
		Destination:     s.Destination,
		Cargo:           s.Cargo,
		WeightKg:        s.WeightKg.Kilograms(),
		Vehicle:         s.Vehicle.String(),
		PickupDate:      s.PickupDate,
		ContactUsername: s.Username,
		ContactPhone:    s.Phone,
		CreatedAt:       s.CreatedAt,
		Fee:             s.Fee,
		Status:          int(s.Status),
		CarrierID:       s.CarrierID,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          dto.ID,
		RequesterID: dto.RequesterID,
		CreatorRole: order.CreatorRole(dto.CreatorRole),
		Origin:      dto.Origin,
		Destination: dto.Destination,
		Cargo:       dto.Cargo,
		WeightKg:    weight,
		Vehicle:     order.VehicleClass(dto.Vehicle),
		PickupDate:  dto.PickupDate,
		Username:    dto.ContactUsername,
		Phone:       dto.ContactPhone,
		CreatedAt:   dto.CreatedAt,
		Fee:         dto.Fee,
		Status:      order.Status(dto.Status),
		CarrierID:   dto.CarrierID,
	})
}
