package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the event store.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction on a private copy of the store.
	Begin(ctx context.Context) error

	// Commit publishes the changes made since Begin.
	// Returns an error if no transaction is active or the store moved on meanwhile.
	Commit(ctx context.Context) error

	// Rollback discards the changes made since Begin.
	// Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	// DeliveryEventRepository returns a repository bound to the current transaction,
	// or to the store itself when no transaction is active.
	DeliveryEventRepository() DeliveryEventRepository
}
