package queries

import (
	"context"
	"database/sql"

	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

const orderColumns = `
	id,
	requester_id,
	creator_role,
	origin,
	destination,
	cargo,
	weight_kg,
	vehicle,
	COALESCE(pickup_date, ''),
	COALESCE(contact_username, ''),
	contact_phone,
	created_at,
	fee,
	status,
	carrier_id`

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, query.OrderID()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return scanOrder(rows)
}

func scanOrder(rows *sql.Rows) (OrderView, error) {
	var (
		v      OrderView
		status int
	)

	if err := rows.Scan(
		&v.ID,
		&v.RequesterID,
		&v.CreatorRole,
		&v.Origin,
		&v.Destination,
		&v.Cargo,
		&v.WeightKg,
		&v.Vehicle,
		&v.PickupDate,
		&v.ContactUsername,
		&v.ContactPhone,
		&v.CreatedAt,
		&v.Fee,
		&status,
		&v.CarrierID,
	); err != nil {
		return OrderView{}, err
	}

	v.Status = order.Status(status).String()
	return v, nil
}
