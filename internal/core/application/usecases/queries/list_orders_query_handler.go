package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if status, ok := query.Status(); ok {
		tx = tx.Raw(`SELECT `+orderColumns+` FROM orders WHERE status = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
			int(status), query.Limit())
	} else {
		tx = tx.Raw(`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC LIMIT ?`, query.Limit())
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		v, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
