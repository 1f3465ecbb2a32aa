package ports

import (
	"context"
	"time"
)

// AwardPeriodRepository tracks the single start-date anchor per contracting
// process and stage. The start date is write-once: the first writer wins and
// later writers observe the stored value.
type AwardPeriodRepository interface {
	// GetStart returns the stored period start for (contract, stage).
	// Returns errs.ObjectNotFoundError when no start has been recorded yet.
	GetStart(ctx context.Context, contractID, stage string) (time.Time, error)

	// SaveStart records the period start for (contract, stage) if none exists.
	// The write is atomic insert-if-absent: when two callers race, exactly one
	// start date is stored and SaveStart succeeds for both.
	SaveStart(ctx context.Context, contractID, stage string, start time.Time) error
}
