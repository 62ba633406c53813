package memory

import (
	"context"
	"fmt"
	"sync"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/pkg/errs"
)

// Store is a concurrency-safe, versioned, in-memory delivery event store.
// It implements ports.DeliveryEventRepository.
type Store struct {
	mu      sync.RWMutex
	state   *eventState
	version uint64
}

// NewStore creates an empty store at version 0.
func NewStore() *Store {
	return &Store{state: newEventState()}
}

// Save appends ev.
func (s *Store) Save(ctx context.Context, ev *event.DeliveryEvent) error {
	if err := validateWrite(ctx, ev); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.save(ev)
	s.version++
	return nil
}

// Update replaces the first event of the delivery key with replacement.
func (s *Store) Update(ctx context.Context, key kernel.DeliveryKey, replacement *event.DeliveryEvent) error {
	if err := validateWrite(ctx, replacement); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.update(key, replacement); err != nil {
		return err
	}
	s.version++
	return nil
}

// List returns a snapshot of all events in insertion order.
func (s *Store) List(ctx context.Context) ([]*event.DeliveryEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.list(), nil
}

// ListBy returns a snapshot of the events of one delivery.
func (s *Store) ListBy(ctx context.Context, key kernel.DeliveryKey) ([]*event.DeliveryEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.listBy(key), nil
}

// Version returns the number of writes committed so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.size()
}

func (s *Store) snapshot() (*eventState, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.clone(), s.version
}

// publish installs next if the store is still at version base.
func (s *Store) publish(base uint64, next *eventState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.version != base {
		return errs.NewVersionIsInvalidErrorWithCause(
			"store version",
			fmt.Errorf("transaction began at %d, store is at %d", base, s.version),
		)
	}

	s.state = next
	s.version++
	return nil
}

func validateWrite(ctx context.Context, ev *event.DeliveryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ev.Validate()
}
