// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and notification after commit.
package commands

import (
	"context"

	"cargo/internal/core/application/fanout"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	RequesterRepoFactory interface {
		RequesterRepository() ports.RequesterRepository
	}

	ProofRepoFactory interface {
		ProofRepository() ports.ProofRepository
	}

	// CarrierUoW manages transactions that touch only the carrier ledger.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// UoW manages transactions across all aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ok, err := uow.OrderRepository().CompareAndSwap(ctx, o, order.Open)
	//   balance, err := uow.CarrierRepository().DebitIfSufficient(ctx, id, fee)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CarrierRepoFactory
		RequesterRepoFactory
		ProofRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Broadcaster delivers notifications after a state change is committed.
// It never reports delivery failures to the handler.
type Broadcaster interface {
	Send(ctx context.Context, recipients []int64, event notification.Event) fanout.Report
	SendOne(ctx context.Context, recipient int64, event notification.Event) fanout.Report
}
