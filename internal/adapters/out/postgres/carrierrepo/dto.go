// Package carrierrepo is the carrier ledger store. Every balance movement is
// one conditional UPDATE so that concurrent debits for the same carrier are
// serialized by the row lock.
package carrierrepo

import (
	"time"

	"cargo/internal/core/domain/model/carrier"
	"cargo/internal/core/domain/model/kernel"
)

type CarrierDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement:false"`
	FullName        string `gorm:"not null"`
	Vehicle         string `gorm:"not null"`
	ContactUsername string
	ContactPhone    string    `gorm:"not null"`
	Balance         int64     `gorm:"not null;check:balance >= 0"`
	Status          string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(c *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:              c.ID(),
		FullName:        c.FullName(),
		Vehicle:         c.Vehicle(),
		ContactUsername: c.Contact().Username(),
		ContactPhone:    c.Contact().Phone(),
		Balance:         c.Balance(),
		Status:          c.Status().String(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	status, err := kernel.ParseAccountStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(carrier.Profile{
		ID:       dto.ID,
		FullName: dto.FullName,
		Vehicle:  dto.Vehicle,
		Username: dto.ContactUsername,
		Phone:    dto.ContactPhone,
	}, dto.Balance, status)
}
