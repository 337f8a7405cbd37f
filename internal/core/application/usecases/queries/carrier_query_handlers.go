package queries

import (
	"context"

	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCarrierQueryHandler struct {
	db *gorm.DB
}

func NewGetCarrierQueryHandler(db *gorm.DB) GetCarrierQueryHandler {
	return GetCarrierQueryHandler{db: db}
}

func (h GetCarrierQueryHandler) Handle(ctx context.Context, query GetCarrierQuery) (CarrierView, error) {
	if err := query.Validate(); err != nil {
		return CarrierView{}, err
	}

	var v CarrierView
	res := h.db.WithContext(ctx).Raw(`
		SELECT id, full_name, vehicle, COALESCE(contact_username, '') AS contact_username,
			contact_phone, balance, status, created_at
		FROM carriers
		WHERE id = ?
	`, query.CarrierID()).Scan(&v)
	if res.Error != nil {
		return CarrierView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return CarrierView{}, errs.NewObjectNotFoundError("carrier", query.CarrierID())
	}

	return v, nil
}

type ListCarriersQueryHandler struct {
	db *gorm.DB
}

func NewListCarriersQueryHandler(db *gorm.DB) ListCarriersQueryHandler {
	return ListCarriersQueryHandler{db: db}
}

func (h ListCarriersQueryHandler) Handle(ctx context.Context, query ListAccountsQuery) ([]CarrierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers := make([]CarrierView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, full_name, vehicle, COALESCE(contact_username, '') AS contact_username,
			contact_phone, balance, status, created_at
		FROM carriers
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Scan(&carriers).Error
	if err != nil {
		return nil, err
	}

	return carriers, nil
}

type ListRequestersQueryHandler struct {
	db *gorm.DB
}

func NewListRequestersQueryHandler(db *gorm.DB) ListRequestersQueryHandler {
	return ListRequestersQueryHandler{db: db}
}

func (h ListRequestersQueryHandler) Handle(ctx context.Context, query ListAccountsQuery) ([]RequesterView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requesters := make([]RequesterView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, full_name, COALESCE(contact_username, '') AS contact_username,
			contact_phone, status, created_at
		FROM requesters
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Scan(&requesters).Error
	if err != nil {
		return nil, err
	}

	return requesters, nil
}
