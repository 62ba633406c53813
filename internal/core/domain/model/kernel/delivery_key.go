package kernel

import "fmt"

// DeliveryKey identifies one delivery: the pair (orderID, deliveryID).
// A delivery ID is only unique in combination with its order ID, so the
// pair, never the delivery ID alone, is used for grouping and lookups.
//
// DeliveryKey is comparable and is used directly as a map key. Equality is
// exact integer equality on both components.
//
// Example:
//
//	key := kernel.NewDeliveryKey(1, 2)
//	groups := map[kernel.DeliveryKey][]*event.DeliveryEvent{}
//	groups[key] = append(groups[key], ev)
type DeliveryKey struct {
	orderID    int64
	deliveryID int64
}

// NewDeliveryKey builds the key for the delivery deliveryID of order orderID.
// Any int64 pair is a valid key.
func NewDeliveryKey(orderID, deliveryID int64) DeliveryKey {
	return DeliveryKey{orderID: orderID, deliveryID: deliveryID}
}

// OrderID returns the order identifier.
func (k DeliveryKey) OrderID() int64 {
	return k.orderID
}

// DeliveryID returns the delivery identifier within the order.
func (k DeliveryKey) DeliveryID() int64 {
	return k.deliveryID
}

// IsEqual reports whether both components match exactly.
func (k DeliveryKey) IsEqual(other DeliveryKey) bool {
	return k == other
}

// String renders the key for logs and error messages, e.g. "order 1 delivery 2".
func (k DeliveryKey) String() string {
	return fmt.Sprintf("order %d delivery %d", k.orderID, k.deliveryID)
}
