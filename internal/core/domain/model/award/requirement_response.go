package award

import "evaluation/internal/pkg/errs"

// OrganizationRef is a lightweight reference to an organization by id and name,
// used where the full supplier record is not needed.
type OrganizationRef struct {
	ID   string
	Name string
}

// Responder identifies the person answering a requirement on behalf of a
// tenderer.
type Responder struct {
	Name       string
	Identifier Identifier
}

// RequirementResponse records a responder's answer against a requirement for a
// specific tenderer on an award.
type RequirementResponse struct {
	ID              string
	Title           string
	Description     string
	Value           string
	RequirementID   string
	RelatedTenderer OrganizationRef
	Responder       Responder
}

func (r RequirementResponse) validate() error {
	if r.ID == "" {
		return errs.NewValueIsRequiredError("requirement response id")
	}
	if r.RequirementID == "" {
		return errs.NewValueIsRequiredError("requirement id")
	}
	if r.RelatedTenderer.ID == "" {
		return errs.NewValueIsRequiredError("related tenderer id")
	}
	return nil
}
