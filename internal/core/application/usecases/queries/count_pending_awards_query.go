package queries

import (
	"errors"

	"evaluation/internal/pkg/guard"
)

var (
	ErrCountPendingAwardsQueryIsNotConstructed = errors.New(
		"CountPendingAwardsQuery must be created via NewCountPendingAwardsQuery constructor",
	)
)

// CountPendingAwardsQuery counts the awards still awaiting an evaluation
// decision. Used by the monitoring job to surface stalled evaluations.
type CountPendingAwardsQuery struct {
	guard guard.ConstructorGuard
}

// NewCountPendingAwardsQuery creates a query counting undecided awards.
// This is a parameterless query spanning all contracting processes.
func NewCountPendingAwardsQuery() CountPendingAwardsQuery {
	return CountPendingAwardsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountPendingAwardsQueryIsNotConstructed if validation fails.
func (q CountPendingAwardsQuery) Validate() error {
	return q.guard.Validate(ErrCountPendingAwardsQueryIsNotConstructed)
}
