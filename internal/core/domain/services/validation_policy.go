package services

import (
	"fmt"
	"strings"
	"time"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/core/domain/model/rate"
	"deliveryrates/internal/pkg/errs"
)

const strictGroupSize = 2

// ValidationPolicy decides how one delivery group becomes a rate.
//
// RateCalculator hands a policy the events of one delivery, already sorted
// by timestamp (ties keep their input order). The policy either returns the
// rate of the delivery or an error that aborts the whole calculation.
type ValidationPolicy interface {
	// Name is the configuration name of the policy, e.g. "lenient".
	Name() string

	// Accepts filters events before grouping.
	Accepts(ev *event.DeliveryEvent) bool

	// Rate computes the rate of one delivery from its chronological events.
	Rate(key kernel.DeliveryKey, chronological []*event.DeliveryEvent) (*rate.DeliveryRate, error)
}

var (
	// Lenient never rejects a group. A missing start or terminal event gives
	// zero minutes and negative durations are clamped to zero.
	Lenient ValidationPolicy = LenientPolicy{}

	// Strict requires every group to be exactly [Pending, Delivered|Cancelled]
	// and fails the whole batch otherwise.
	Strict ValidationPolicy = StrictPolicy{}
)

// PolicyByName returns the policy configured as name ("lenient" or "strict",
// case-insensitive).
func PolicyByName(name string) (ValidationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Lenient.Name():
		return Lenient, nil
	case Strict.Name():
		return Strict, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"policy",
			fmt.Errorf("%q is not one of %q, %q", name, Lenient.Name(), Strict.Name()),
		)
	}
}

// LenientPolicy implements the clamp-and-default rules.
//
// Rules for one delivery:
//   - start is the first Pending event
//   - the final event is the last Delivered or Cancelled event
//   - finalStatus is the final event status, Pending without one
//   - minutes is end - start in whole minutes, 0 when either is missing,
//     never negative
type LenientPolicy struct{}

func (LenientPolicy) Name() string {
	return "lenient"
}

func (LenientPolicy) Accepts(*event.DeliveryEvent) bool {
	return true
}

func (LenientPolicy) Rate(key kernel.DeliveryKey, chronological []*event.DeliveryEvent) (*rate.DeliveryRate, error) {
	var start, final *event.DeliveryEvent
	for _, ev := range chronological {
		if start == nil && ev.Status() == event.Pending {
			start = ev
		}
		if ev.Status().IsTerminal() {
			final = ev
		}
	}

	finalStatus := event.Pending
	if final != nil {
		finalStatus = final.Status()
	}

	minutes := 0.0
	if start != nil && final != nil {
		minutes = max(0, wholeMinutes(start.Timestamp(), final.Timestamp()))
	}

	return rate.NewDeliveryRate(key, finalStatus, minutes)
}

// StrictPolicy implements the fail-fast rules.
//
// Every delivery must hold exactly two events, the earlier Pending and the
// later Delivered or Cancelled. Because events arrive sorted by timestamp,
// the elapsed time of an accepted group is never negative.
type StrictPolicy struct{}

func (StrictPolicy) Name() string {
	return "strict"
}

// Accepts keeps only events with a status of the closed set. Construction
// already rejects anything else, so this only drops events that were never
// constructed properly.
func (StrictPolicy) Accepts(ev *event.DeliveryEvent) bool {
	return ev.Status().Validate() == nil
}

func (StrictPolicy) Rate(key kernel.DeliveryKey, chronological []*event.DeliveryEvent) (*rate.DeliveryRate, error) {
	count := len(chronological)
	if count != strictGroupSize {
		return nil, newGroupSizeError(key, count)
	}

	first, second := chronological[0], chronological[1]
	if first.Status() != event.Pending {
		return nil, newGroupStatusError(key, count, 0, first.Status(), event.Pending.String())
	}
	if !second.Status().IsTerminal() {
		return nil, newGroupStatusError(key, count, 1, second.Status(),
			event.Delivered.String()+" or "+event.Cancelled.String())
	}

	return rate.NewDeliveryRate(key, second.Status(), wholeMinutes(first.Timestamp(), second.Timestamp()))
}

// wholeMinutes truncates end - start toward zero to whole minutes.
func wholeMinutes(start, end time.Time) float64 {
	return float64(end.Sub(start) / time.Minute)
}
