// Package errs provides standardized error types for the delivery rate service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the event store and the use cases.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found in storage
//   - VersionIsInvalidError: an optimistic version check failed
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
package errs
