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
	ErrCreateAwardCommandIsNotConstructed = errors.New(
		"CreateAwardCommand must be created via NewCreateAwardCommand constructor",
	)
)

// CreateAwardCommand represents a request to create an award for a lot of a
// contracting process. It carries the creation context (contract, stage, lot,
// owner, start date), the award data (description, value, suppliers) and the
// reference vocabularies the suppliers are validated against. The vocabularies
// travel with the request rather than living in process state.
type CreateAwardCommand struct { //nolint:recvcheck //using for validation
	contractID string
	stage      string
	lotID      string
	owner      string
	startDate  time.Time

	description string
	value       kernel.Money
	suppliers   []award.Supplier

	validSchemes []string
	validScales  []string

	guard guard.ConstructorGuard
}

// NewCreateAwardCommand creates a command to register a new award.
// Validates that the creation context is complete, the value is a valid Money,
// at least one supplier is present, and both vocabularies are supplied.
func NewCreateAwardCommand(
	contractID string,
	stage string,
	lotID string,
	owner string,
	startDate time.Time,
	description string,
	value kernel.Money,
	suppliers []award.Supplier,
	validSchemes []string,
	validScales []string,
) (CreateAwardCommand, error) {
	cmd := CreateAwardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContext(contractID, stage, lotID, owner, startDate),
		cmd.setAwardData(description, value, suppliers),
		cmd.setVocabularies(validSchemes, validScales),
	); err != nil {
		return CreateAwardCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAwardCommand) Validate() error {
	return c.guard.Validate(ErrCreateAwardCommandIsNotConstructed)
}

// ContractID returns the contracting-process identifier.
func (c CreateAwardCommand) ContractID() string {
	return c.contractID
}

// Stage returns the contracting-process stage.
func (c CreateAwardCommand) Stage() string {
	return c.stage
}

// LotID returns the target lot of the new award.
func (c CreateAwardCommand) LotID() string {
	return c.lotID
}

// Owner returns the platform identifier creating the award.
func (c CreateAwardCommand) Owner() string {
	return c.owner
}

// StartDate returns the request timestamp used as award date and period anchor.
func (c CreateAwardCommand) StartDate() time.Time {
	return c.startDate
}

// Description returns the free-text award description.
func (c CreateAwardCommand) Description() string {
	return c.description
}

// Value returns the monetary value of the award.
func (c CreateAwardCommand) Value() kernel.Money {
	return c.value
}

// Suppliers returns a copy of the requested supplier list.
func (c CreateAwardCommand) Suppliers() []award.Supplier {
	return slices.Clone(c.suppliers)
}

// ValidSchemes returns the identifier-scheme vocabulary for this request.
func (c CreateAwardCommand) ValidSchemes() []string {
	return slices.Clone(c.validSchemes)
}

// ValidScales returns the supplier-scale vocabulary for this request.
func (c CreateAwardCommand) ValidScales() []string {
	return slices.Clone(c.validScales)
}

func (c *CreateAwardCommand) setContext(contractID, stage, lotID, owner string, startDate time.Time) error {
	if contractID == "" {
		return errs.NewValueIsRequiredError("contract id")
	}
	if stage == "" {
		return errs.NewValueIsRequiredError("stage")
	}
	if lotID == "" {
		return errs.NewValueIsRequiredError("lot id")
	}
	if owner == "" {
		return errs.NewValueIsRequiredError("owner")
	}
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}

	c.contractID = contractID
	c.stage = stage
	c.lotID = lotID
	c.owner = owner
	c.startDate = startDate
	return nil
}

func (c *CreateAwardCommand) setAwardData(description string, value kernel.Money, suppliers []award.Supplier) error {
	if err := value.Validate(); err != nil {
		return err
	}
	if len(suppliers) == 0 {
		return errs.NewValueIsRequiredError("suppliers")
	}

	c.description = description
	c.value = value
	c.suppliers = slices.Clone(suppliers)
	return nil
}

func (c *CreateAwardCommand) setVocabularies(validSchemes, validScales []string) error {
	if len(validSchemes) == 0 {
		return errs.NewValueIsRequiredError("valid schemes")
	}
	if len(validScales) == 0 {
		return errs.NewValueIsRequiredError("valid scales")
	}

	c.validSchemes = slices.Clone(validSchemes)
	c.validScales = slices.Clone(validScales)
	return nil
}
