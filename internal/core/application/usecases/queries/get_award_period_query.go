// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and read the
// indexed columns directly, never the serialized aggregate body.
package queries

import (
	"errors"
	"time"

	"evaluation/internal/pkg/errs"
	"evaluation/internal/pkg/guard"
)

var (
	ErrGetAwardPeriodQueryIsNotConstructed = errors.New(
		"GetAwardPeriodQuery must be created via NewGetAwardPeriodQuery constructor",
	)
)

// GetAwardPeriodQuery retrieves the evaluation period anchor of a contracting
// process stage. The anchor is written once by the first award creation and
// never changes afterwards.
type GetAwardPeriodQuery struct {
	contractID string
	stage      string

	guard guard.ConstructorGuard
}

// NewGetAwardPeriodQuery creates a query for the period anchor of the given
// contracting process and stage.
func NewGetAwardPeriodQuery(contractID, stage string) (GetAwardPeriodQuery, error) {
	if contractID == "" {
		return GetAwardPeriodQuery{}, errs.NewValueIsRequiredError("contract id")
	}
	if stage == "" {
		return GetAwardPeriodQuery{}, errs.NewValueIsRequiredError("stage")
	}

	return GetAwardPeriodQuery{
		contractID: contractID,
		stage:      stage,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAwardPeriodQueryIsNotConstructed if validation fails.
func (q GetAwardPeriodQuery) Validate() error {
	return q.guard.Validate(ErrGetAwardPeriodQueryIsNotConstructed)
}

// ContractID returns the contracting-process identifier.
func (q GetAwardPeriodQuery) ContractID() string {
	return q.contractID
}

// Stage returns the contracting-process stage.
func (q GetAwardPeriodQuery) Stage() string {
	return q.stage
}

// GetAwardPeriodQueryResponse represents the period anchor in the read model.
type GetAwardPeriodQueryResponse struct {
	StartDate time.Time
}
