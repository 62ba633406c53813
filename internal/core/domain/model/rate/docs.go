// Package rate provides DeliveryRate, the billing record derived for one
// delivery: how many whole minutes it took and how much that pays.
//
// A DeliveryRate has no lifecycle of its own. It is a projection of the
// delivery events at the moment of calculation and is rebuilt on every run.
package rate
