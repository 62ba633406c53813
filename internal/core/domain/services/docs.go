// Package services provides the rate engine of the delivery system: the
// domain service that turns raw delivery events into billing records.
//
// The package includes:
//   - RateCalculator: groups events by delivery, orders each group in time
//     and asks a ValidationPolicy for the rate of every group
//   - ValidationPolicy: the per-group rule set; Lenient degrades malformed
//     groups to zero-minute records, Strict rejects the whole batch
//   - DeliveryGroupError: the batch validation failure raised by Strict
//
// The engine is a pure computation. It performs no I/O, never mutates its
// input and holds no state between calls, so one RateCalculator can be
// shared by any number of goroutines as long as each call gets a slice that
// nobody modifies while the call runs.
package services
