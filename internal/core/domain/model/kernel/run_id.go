package kernel

import (
	"fmt"

	"deliveryrates/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrRunIDIsNotConstructed is returned when validating the zero RunID.
var ErrRunIDIsNotConstructed = errs.NewValueIsRequiredError("RunID must be created via NewRunID or RunIDFromString")

// RunID identifies one rate calculation run. It correlates the log lines and
// the result of a run. The zero value is invalid.
//
// Example usage:
//
//	id := kernel.NewRunID()
//	logger.Info("rates recalculated", "run_id", id.String())
type RunID struct {
	id uuid.UUID
}

// NewRunID generates a new random (version 4) run identifier.
func NewRunID() RunID {
	return RunID{id: uuid.New()}
}

// RunIDFromString parses a run identifier in any format accepted by uuid.Parse.
func RunIDFromString(s string) (RunID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RunID{}, fmt.Errorf("invalid run ID format: %w", err)
	}

	runID := RunID{id: id}
	if err = runID.Validate(); err != nil {
		return RunID{}, err
	}
	return runID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (r RunID) String() string {
	return r.id.String()
}

// IsEqual reports whether both identifiers are the same.
func (r RunID) IsEqual(other RunID) bool {
	return r.id == other.id
}

// Validate returns ErrRunIDIsNotConstructed for the zero RunID.
func (r RunID) Validate() error {
	if r.id == uuid.Nil {
		return ErrRunIDIsNotConstructed
	}
	return nil
}
