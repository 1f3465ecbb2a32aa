package award

import (
	"fmt"

	"evaluation/internal/pkg/errs"
)

// Status represents the coarse lifecycle state of an award. The creation and
// evaluation workflows only ever produce Pending; the other values exist for
// awards persisted by surrounding stages of the contracting process.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the state every award is created in and the only state
	// the workflows in this service produce.
	StatusPending

	// StatusActive marks an award confirmed by a concluded contract.
	StatusActive

	// StatusUnsuccessful marks an award closed without a contract.
	StatusUnsuccessful
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		StatusPending:      "pending",
		StatusActive:       "active",
		StatusUnsuccessful: "unsuccessful",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:      "pending",
		StatusActive:       "active",
		StatusUnsuccessful: "unsuccessful",
	}
}

// Validate checks the Status is one of the valid lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted status name. Unrecognized names map to
// StatusUnknown rather than an error; callers validate where it matters.
func StatusFromString(s string) Status {
	for status, name := range getStatusStrings() {
		if name == s {
			return status
		}
	}
	return StatusUnknown
}
