package award

import "errors"

var (
	// ErrStatusDetailsNotAllowed is returned when an evaluation requests a
	// status-details value other than active or unsuccessful.
	ErrStatusDetailsNotAllowed = errors.New("requested status details must be active or unsuccessful")

	// ErrSavedStatusDetailsCorrupted signals that a persisted award carries
	// status details outside the lifecycle the workflows can produce. This is
	// an integrity fault of the stored data, not a user input error, and
	// callers should treat it as fatal rather than retryable.
	ErrSavedStatusDetailsCorrupted = errors.New("saved award has unexpected status details")
)

// StatusDetails represents the fine-grained evaluation state of an award.
//
// State transitions requested through evaluation:
//
//	Empty ────────┬──> Active <──────> Unsuccessful
//	              └──> Unsuccessful
//	(Active -> Active and Unsuccessful -> Unsuccessful are no-ops)
//
// Any persisted value outside Empty/Active/Unsuccessful makes every transition
// fail with ErrSavedStatusDetailsCorrupted.
type StatusDetails int

const (
	// DetailsUnknown represents an invalid or undefined status-details value.
	DetailsUnknown StatusDetails = iota

	// DetailsEmpty is the initial state: the award has not been decided yet.
	DetailsEmpty

	// DetailsActive marks the award as the winning offer for its lot.
	DetailsActive

	// DetailsUnsuccessful marks the award as rejected for its lot.
	DetailsUnsuccessful
)

func getStatusDetailsStrings() map[StatusDetails]string {
	return map[StatusDetails]string{
		DetailsUnknown:      "unknown",
		DetailsEmpty:        "empty",
		DetailsActive:       "active",
		DetailsUnsuccessful: "unsuccessful",
	}
}

// String returns the wire-level name of the status details.
func (s StatusDetails) String() string {
	if str, ok := getStatusDetailsStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusDetailsFromString parses a persisted status-details name. Unrecognized
// names map to DetailsUnknown; the transition table is where corruption of a
// stored value becomes an error.
func StatusDetailsFromString(s string) StatusDetails {
	for details, name := range getStatusDetailsStrings() {
		if name == s {
			return details
		}
	}
	return DetailsUnknown
}

// Transition computes the status details resulting from an evaluation request.
// The requested value must be DetailsActive or DetailsUnsuccessful; every valid
// stored state accepts both (repeating the current state is a no-op). A stored
// state outside the lifecycle fails with ErrSavedStatusDetailsCorrupted.
func (s StatusDetails) Transition(requested StatusDetails) (StatusDetails, error) {
	if requested != DetailsActive && requested != DetailsUnsuccessful {
		return DetailsUnknown, ErrStatusDetailsNotAllowed
	}

	switch s {
	case DetailsEmpty, DetailsActive, DetailsUnsuccessful:
		return requested, nil
	default:
		return DetailsUnknown, ErrSavedStatusDetailsCorrupted
	}
}
