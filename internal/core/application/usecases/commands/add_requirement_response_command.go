package commands

import (
	"errors"

	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/pkg/errs"
	"evaluation/internal/pkg/guard"
)

var (
	ErrAddRequirementResponseCommandIsNotConstructed = errors.New(
		"AddRequirementResponseCommand must be created via NewAddRequirementResponseCommand constructor",
	)
)

// AddRequirementResponseCommand records a responder's answer against a
// requirement for a specific tenderer on an award.
type AddRequirementResponseCommand struct { //nolint:recvcheck //using for validation
	contractID string
	ocid       string
	awardID    kernel.UUID
	response   award.RequirementResponse

	guard guard.ConstructorGuard
}

// NewAddRequirementResponseCommand creates a command to append a requirement
// response to an award.
func NewAddRequirementResponseCommand(
	contractID string,
	ocid string,
	awardID kernel.UUID,
	response award.RequirementResponse,
) (AddRequirementResponseCommand, error) {
	if contractID == "" {
		return AddRequirementResponseCommand{}, errs.NewValueIsRequiredError("contract id")
	}
	if ocid == "" {
		return AddRequirementResponseCommand{}, errs.NewValueIsRequiredError("ocid")
	}
	if err := awardID.Validate(); err != nil {
		return AddRequirementResponseCommand{}, err
	}

	return AddRequirementResponseCommand{
		contractID: contractID,
		ocid:       ocid,
		awardID:    awardID,
		response:   response,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRequirementResponseCommand) Validate() error {
	return c.guard.Validate(ErrAddRequirementResponseCommandIsNotConstructed)
}

// ContractID returns the contracting-process identifier.
func (c AddRequirementResponseCommand) ContractID() string {
	return c.contractID
}

// Ocid returns the open-contracting identifier of the stage the award belongs to.
func (c AddRequirementResponseCommand) Ocid() string {
	return c.ocid
}

// AwardID returns the identifier of the award being answered.
func (c AddRequirementResponseCommand) AwardID() kernel.UUID {
	return c.awardID
}

// Response returns the requirement response to record.
func (c AddRequirementResponseCommand) Response() award.RequirementResponse {
	return c.response
}
