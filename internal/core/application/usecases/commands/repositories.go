// Package commands contains business operations that modify the delivery event store.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"deliveryrates/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryEventRepoFactory provides access to the event repository within a transaction.
	DeliveryEventRepoFactory interface {
		DeliveryEventRepository() ports.DeliveryEventRepository
	}

	// DeliveryEventUoW manages transactions for delivery event writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.DeliveryEventRepository().Save(ctx, ev)
	//   err = uow.Commit(ctx)
	DeliveryEventUoW interface {
		TxManager
		DeliveryEventRepoFactory
	}

	// DeliveryEventUoWFactory creates new delivery event unit of work instances.
	DeliveryEventUoWFactory interface {
		Create() DeliveryEventUoW
	}
)
