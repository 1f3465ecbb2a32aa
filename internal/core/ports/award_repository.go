package ports

import (
	"context"

	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
)

// AwardRepository defines the persistence contract for award aggregates.
// Implementations exchange fully structured awards; serialization of the
// persisted body is an adapter concern and never leaks through this interface.
type AwardRepository interface {
	// Add persists a new award aggregate.
	Add(ctx context.Context, aggregate *award.Award) error

	// Update persists changes to an existing award aggregate.
	Update(ctx context.Context, aggregate *award.Award) error

	// GetByContract retrieves every award recorded for a contracting process.
	// Used for sibling checks across lots and stages.
	GetByContract(ctx context.Context, contractID string) ([]*award.Award, error)

	// GetByToken retrieves the award stored under (contract, stage, token).
	// Returns errs.ObjectNotFoundError when no such award exists.
	GetByToken(ctx context.Context, contractID, stage string, token kernel.UUID) (*award.Award, error)
}
