package memory

import (
	"slices"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/pkg/errs"
)

// eventState is the data behind a store or a transaction. It is not safe
// for concurrent use; owners synchronize access.
type eventState struct {
	events []*event.DeliveryEvent
	index  map[kernel.DeliveryKey][]int
}

func newEventState() *eventState {
	return &eventState{
		events: make([]*event.DeliveryEvent, 0),
		index:  make(map[kernel.DeliveryKey][]int),
	}
}

func (s *eventState) clone() *eventState {
	index := make(map[kernel.DeliveryKey][]int, len(s.index))
	for key, positions := range s.index {
		index[key] = slices.Clone(positions)
	}
	return &eventState{
		events: slices.Clone(s.events),
		index:  index,
	}
}

func (s *eventState) save(ev *event.DeliveryEvent) {
	s.events = append(s.events, ev)
	key := ev.Key()
	s.index[key] = append(s.index[key], len(s.events)-1)
}

// update swaps the first event of key for replacement, keeping its position.
func (s *eventState) update(key kernel.DeliveryKey, replacement *event.DeliveryEvent) error {
	positions := s.index[key]
	if len(positions) == 0 {
		return errs.NewObjectNotFoundError("delivery", key.String())
	}

	pos := positions[0]
	s.events[pos] = replacement

	newKey := replacement.Key()
	if newKey == key {
		return nil
	}

	if len(positions) == 1 {
		delete(s.index, key)
	} else {
		s.index[key] = positions[1:]
	}

	moved := s.index[newKey]
	i, _ := slices.BinarySearch(moved, pos)
	s.index[newKey] = slices.Insert(moved, i, pos)
	return nil
}

func (s *eventState) list() []*event.DeliveryEvent {
	return slices.Clone(s.events)
}

func (s *eventState) listBy(key kernel.DeliveryKey) []*event.DeliveryEvent {
	positions := s.index[key]
	out := make([]*event.DeliveryEvent, 0, len(positions))
	for _, pos := range positions {
		out = append(out, s.events[pos])
	}
	return out
}

func (s *eventState) size() int {
	return len(s.events)
}
