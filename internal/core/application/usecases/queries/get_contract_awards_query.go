package queries

import (
	"errors"

	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/pkg/errs"
	"evaluation/internal/pkg/guard"
)

var (
	ErrGetContractAwardsQueryIsNotConstructed = errors.New(
		"GetContractAwardsQuery must be created via NewGetContractAwardsQuery constructor",
	)
)

// GetContractAwardsQuery retrieves the award states of a contracting process
// stage. Returns identifiers and lifecycle states only; tokens and supplier
// data never leave the write model through this query.
type GetContractAwardsQuery struct {
	contractID string
	stage      string

	guard guard.ConstructorGuard
}

// NewGetContractAwardsQuery creates a query for the awards of the given
// contracting process and stage.
func NewGetContractAwardsQuery(contractID, stage string) (GetContractAwardsQuery, error) {
	if contractID == "" {
		return GetContractAwardsQuery{}, errs.NewValueIsRequiredError("contract id")
	}
	if stage == "" {
		return GetContractAwardsQuery{}, errs.NewValueIsRequiredError("stage")
	}

	return GetContractAwardsQuery{
		contractID: contractID,
		stage:      stage,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetContractAwardsQueryIsNotConstructed if validation fails.
func (q GetContractAwardsQuery) Validate() error {
	return q.guard.Validate(ErrGetContractAwardsQueryIsNotConstructed)
}

// ContractID returns the contracting-process identifier.
func (q GetContractAwardsQuery) ContractID() string {
	return q.contractID
}

// Stage returns the contracting-process stage.
func (q GetContractAwardsQuery) Stage() string {
	return q.stage
}

// GetContractAwardsQueryResponse represents one award state in the read model.
type GetContractAwardsQueryResponse struct {
	AwardID       kernel.UUID
	Status        string
	StatusDetails string
}
