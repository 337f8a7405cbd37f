// Package postgres provides the GORM-based Unit of Work over the dispatch
// repositories.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	ok, err := uow.OrderRepository().CompareAndSwap(ctx, o, order.Open)
//	...
//	return uow.Commit(ctx)
//
// Order transitions written through the unit of work are tracked and turned
// into order_history rows inside the committing transaction. A rolled back
// unit of work leaves no history.
package postgres

import (
	"context"

	"cargo/internal/adapters/out/postgres/carrierrepo"
	"cargo/internal/adapters/out/postgres/orderrepo"
	"cargo/internal/adapters/out/postgres/proofrepo"
	"cargo/internal/adapters/out/postgres/requesterrepo"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is one order transition written during the unit of work.
type trackedAggregate struct {
	From     order.Status
	Snapshot order.Snapshot
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across repositories.
// An instance must not be shared between goroutines.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. A second call on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit appends history for tracked order transitions and commits.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := orderrepo.AppendHistory(ctx, uow.tx, uow.historyRows()); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction. Calling it after Commit returns
// gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CarrierRepository() ports.CarrierRepository {
	return carrierrepo.NewGormCarrierRepository(uow.conn())
}

func (uow *GormUnitOfWork) RequesterRepository() ports.RequesterRepository {
	return requesterrepo.NewGormRequesterRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProofRepository() ports.ProofRepository {
	return proofrepo.NewGormProofRepository(uow.conn())
}

// TrackAggregate records an order transition. It is called by the order
// repository after a successful write. Outside a transaction nothing is
// tracked because there is no commit to attach history to.
func (uow *GormUnitOfWork) TrackAggregate(from order.Status, aggregate *order.Order) {
	if uow.tx == nil {
		return
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		From:     from,
		Snapshot: aggregate.Snapshot(),
	})
}

// historyRows folds tracked transitions per order into first-from/last-to pairs.
func (uow *GormUnitOfWork) historyRows() []orderrepo.OrderHistoryDTO {
	type span struct {
		from order.Status
		last order.Snapshot
	}

	ids := make([]int64, 0, len(uow.trackedAggregates))
	spans := make(map[int64]*span, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		s, ok := spans[t.Snapshot.ID]
		if !ok {
			s = &span{from: t.From}
			spans[t.Snapshot.ID] = s
			ids = append(ids, t.Snapshot.ID)
		}
		s.last = t.Snapshot
	}

	rows := make([]orderrepo.OrderHistoryDTO, 0, len(ids))
	for _, id := range ids {
		s := spans[id]
		rows = append(rows, orderrepo.OrderHistoryDTO{
			OrderID:    id,
			FromStatus: int(s.from),
			ToStatus:   int(s.last.Status),
			Fee:        s.last.Fee,
			CarrierID:  s.last.CarrierID,
		})
	}
	return rows
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates every table the dispatch core uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderHistoryDTO{},
		&carrierrepo.CarrierDTO{},
		&requesterrepo.RequesterDTO{},
		&proofrepo.ProofDTO{},
	)
}
