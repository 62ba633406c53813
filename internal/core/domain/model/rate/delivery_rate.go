package rate

import (
	"errors"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/core/domain/model/kernel"
	"deliveryrates/internal/pkg/errs"
)

// PayRatePerMinute is the amount paid per elapsed whole minute.
const PayRatePerMinute = 0.75

// DeliveryRate is the computed billing record of one delivery.
type DeliveryRate struct {
	key         kernel.DeliveryKey
	finalStatus event.Status
	minutes     float64
	amount      float64
}

// NewDeliveryRate builds the rate of the delivery key. The amount is always
// minutes × PayRatePerMinute; callers cannot choose it.
//
// Returns an error if finalStatus is invalid or minutes is negative.
func NewDeliveryRate(key kernel.DeliveryKey, finalStatus event.Status, minutes float64) (*DeliveryRate, error) {
	var minutesErr error
	if minutes < 0 {
		minutesErr = errs.NewValueIsOutOfRangeError("minutes", minutes, 0, "unbounded")
	}

	if err := errors.Join(finalStatus.Validate(), minutesErr); err != nil {
		return nil, err
	}

	return &DeliveryRate{
		key:         key,
		finalStatus: finalStatus,
		minutes:     minutes,
		amount:      minutes * PayRatePerMinute,
	}, nil
}

// Key returns the (order, delivery) pair the rate belongs to.
func (r *DeliveryRate) Key() kernel.DeliveryKey {
	return r.key
}

// OrderID returns the order identifier.
func (r *DeliveryRate) OrderID() int64 {
	return r.key.OrderID()
}

// DeliveryID returns the delivery identifier within the order.
func (r *DeliveryRate) DeliveryID() int64 {
	return r.key.DeliveryID()
}

// FinalStatus returns the terminal status reached, or Pending if none was.
func (r *DeliveryRate) FinalStatus() event.Status {
	return r.finalStatus
}

// Minutes returns the elapsed whole minutes.
func (r *DeliveryRate) Minutes() float64 {
	return r.minutes
}

// Amount returns the pay for the elapsed minutes.
func (r *DeliveryRate) Amount() float64 {
	return r.amount
}
