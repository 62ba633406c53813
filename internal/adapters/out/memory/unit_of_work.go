package memory

import (
	"context"
	"errors"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work on store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh, inactive unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes on a private copy of the store state.
// A UnitOfWork is meant for a single goroutine.
type UnitOfWork struct {
	store *Store
	tx    *transaction
}

type transaction struct {
	base    uint64
	state   *eventState
	changed bool
}

// Begin snapshots the store. Calling Begin twice keeps the first snapshot.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.tx != nil {
		return nil
	}

	state, version := uow.store.snapshot()
	uow.tx = &transaction{base: version, state: state}
	return nil
}

// Commit publishes the staged writes. A transaction without writes commits
// without touching the store.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	tx := uow.tx
	uow.tx = nil

	if err := ctx.Err(); err != nil {
		return err
	}
	if !tx.changed {
		return nil
	}
	return uow.store.publish(tx.base, tx.state)
}

// Rollback drops the staged writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.tx = nil
	return nil
}

// DeliveryEventRepository returns a repository on the open transaction, or the
// store itself when no transaction is open.
func (uow *UnitOfWork) DeliveryEventRepository() ports.DeliveryEventRepository {
	if uow.tx == nil {
		return uow.store
	}
	return &txRepository{tx: uow.tx}
}

// txRepository reads and writes the private state of a transaction.
// Reads see the transaction's own writes.
type txRepository struct {
	tx *transaction
}

func (r *txRepository) Save(ctx context.Context, ev *event.DeliveryEvent) error {
	if err := validateWrite(ctx, ev); err != nil {
		return err
	}

	r.tx.state.save(ev)
	r.tx.changed = true
	return nil
}

func (r *txRepository) Update(ctx context.Context, key kernel.DeliveryKey, replacement *event.DeliveryEvent) error {
	if err := validateWrite(ctx, replacement); err != nil {
		return err
	}

	if err := r.tx.state.update(key, replacement); err != nil {
		return err
	}
	r.tx.changed = true
	return nil
}

func (r *txRepository) List(ctx context.Context) ([]*event.DeliveryEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.tx.state.list(), nil
}

func (r *txRepository) ListBy(ctx context.Context, key kernel.DeliveryKey) ([]*event.DeliveryEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.tx.state.listBy(key), nil
}
