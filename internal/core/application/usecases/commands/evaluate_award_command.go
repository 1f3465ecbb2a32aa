package commands

import (
	"errors"
	"slices"
	"time"

	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/pkg/errs"
	"evaluation/internal/pkg/guard"
)

var (
	ErrEvaluateAwardCommandIsNotConstructed = errors.New(
		"EvaluateAwardCommand must be created via NewEvaluateAwardCommand constructor",
	)
)

// EvaluateAwardCommand represents a request to decide an award: apply a
// status-details transition, update the description and reconcile documents.
// The token and owner together form the evaluation credential; the requested
// status details are validated by the workflow, not the constructor, so the
// caller receives the workflow's error taxonomy.
type EvaluateAwardCommand struct { //nolint:recvcheck //using for validation
	contractID string
	stage      string
	awardID    kernel.UUID
	token      kernel.UUID
	owner      string
	startDate  time.Time

	statusDetails award.StatusDetails
	description   string
	documents     []award.Document

	guard guard.ConstructorGuard
}

// NewEvaluateAwardCommand creates a command to evaluate a persisted award.
// Validates the evaluation context is complete; award data is validated by
// the workflow against the stored award.
func NewEvaluateAwardCommand(
	contractID string,
	stage string,
	awardID kernel.UUID,
	token kernel.UUID,
	owner string,
	startDate time.Time,
	statusDetails award.StatusDetails,
	description string,
	documents []award.Document,
) (EvaluateAwardCommand, error) {
	cmd := EvaluateAwardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setContext(contractID, stage, awardID, token, owner, startDate); err != nil {
		return EvaluateAwardCommand{}, err
	}

	cmd.statusDetails = statusDetails
	cmd.description = description
	cmd.documents = slices.Clone(documents)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EvaluateAwardCommand) Validate() error {
	return c.guard.Validate(ErrEvaluateAwardCommandIsNotConstructed)
}

// ContractID returns the contracting-process identifier.
func (c EvaluateAwardCommand) ContractID() string {
	return c.contractID
}

// Stage returns the contracting-process stage.
func (c EvaluateAwardCommand) Stage() string {
	return c.stage
}

// AwardID returns the identifier of the award being evaluated.
func (c EvaluateAwardCommand) AwardID() kernel.UUID {
	return c.awardID
}

// Token returns the evaluation credential issued at creation.
func (c EvaluateAwardCommand) Token() kernel.UUID {
	return c.token
}

// Owner returns the platform identifier performing the evaluation.
func (c EvaluateAwardCommand) Owner() string {
	return c.owner
}

// StartDate returns the request timestamp stamped as the award date.
func (c EvaluateAwardCommand) StartDate() time.Time {
	return c.startDate
}

// StatusDetails returns the requested status-details transition.
func (c EvaluateAwardCommand) StatusDetails() award.StatusDetails {
	return c.statusDetails
}

// Description returns the requested description.
func (c EvaluateAwardCommand) Description() string {
	return c.description
}

// Documents returns a copy of the requested document updates.
func (c EvaluateAwardCommand) Documents() []award.Document {
	return slices.Clone(c.documents)
}

func (c *EvaluateAwardCommand) setContext(
	contractID, stage string,
	awardID, token kernel.UUID,
	owner string,
	startDate time.Time,
) error {
	if contractID == "" {
		return errs.NewValueIsRequiredError("contract id")
	}
	if stage == "" {
		return errs.NewValueIsRequiredError("stage")
	}
	if err := awardID.Validate(); err != nil {
		return err
	}
	if err := token.Validate(); err != nil {
		return err
	}
	if owner == "" {
		return errs.NewValueIsRequiredError("owner")
	}
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}

	c.contractID = contractID
	c.stage = stage
	c.awardID = awardID
	c.token = token
	c.owner = owner
	c.startDate = startDate
	return nil
}
