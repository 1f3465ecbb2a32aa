package award

import (
	"errors"
	"slices"
	"time"

	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/pkg/errs"
)

var (
	// ErrAwardIsNotConstructed is returned when an Award instance was not
	// created through NewAward or RestoreAward.
	ErrAwardIsNotConstructed = errors.New("Award must be created via NewAward or RestoreAward constructors")

	// ErrRelatedLotsMismatch is returned when the related lots declared on the
	// documents of an evaluation request do not cover the lots of the award.
	ErrRelatedLotsMismatch = errors.New("document related lots do not cover the award related lots")
)

// Award is the aggregate root for an offer-evaluation record.
//
// Invariants:
//   - id and token are assigned at creation and immutable; the token is the
//     evaluation credential together with the owner
//   - status is fixed to pending at creation; statusDetails starts empty and
//     changes only through the transition table
//   - relatedLots is non-empty and fixed after creation
//   - value and suppliers are immutable after creation; each supplier carries
//     its derived canonical id
//   - documents change only through id-keyed reconciliation
type Award struct {
	id    kernel.UUID
	token kernel.UUID

	contractID string
	stage      string
	owner      string

	status        Status
	statusDetails StatusDetails
	relatedLots   []string
	value         kernel.Money
	suppliers     []Supplier
	documents     []Document

	requirementResponses []RequirementResponse

	description string
	date        time.Time

	isConstructed bool
}

// NewAward creates an award in its initial state: pending status, empty status
// details, related lots fixed to the single target lot, and every supplier
// assigned its canonical id. This is the only way the creation workflow
// produces awards.
func NewAward(
	id kernel.UUID,
	token kernel.UUID,
	contractID string,
	stage string,
	owner string,
	lotID string,
	value kernel.Money,
	suppliers []Supplier,
	description string,
	date time.Time,
) (*Award, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := token.Validate(); err != nil {
		return nil, err
	}
	if contractID == "" {
		return nil, errs.NewValueIsRequiredError("contract id")
	}
	if stage == "" {
		return nil, errs.NewValueIsRequiredError("stage")
	}
	if owner == "" {
		return nil, errs.NewValueIsRequiredError("owner")
	}
	if lotID == "" {
		return nil, errs.NewValueIsRequiredError("lot id")
	}
	if err := value.Validate(); err != nil {
		return nil, err
	}
	if len(suppliers) == 0 {
		return nil, errs.NewValueIsRequiredError("suppliers")
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}

	withIDs := slices.Clone(suppliers)
	for i := range withIDs {
		withIDs[i].ID = withIDs[i].CanonicalID()
	}

	return &Award{
		id:            id,
		token:         token,
		contractID:    contractID,
		stage:         stage,
		owner:         owner,
		status:        StatusPending,
		statusDetails: DetailsEmpty,
		relatedLots:   []string{lotID},
		value:         value,
		suppliers:     withIDs,
		description:   description,
		date:          date,
		isConstructed: true,
	}, nil
}

// RestoreAward rehydrates an award from persistence. Status details are taken
// as stored even when outside the known lifecycle: corruption surfaces when a
// transition is attempted, not at load time.
func RestoreAward(
	id kernel.UUID,
	token kernel.UUID,
	contractID string,
	stage string,
	owner string,
	status Status,
	statusDetails StatusDetails,
	relatedLots []string,
	value kernel.Money,
	suppliers []Supplier,
	documents []Document,
	requirementResponses []RequirementResponse,
	description string,
	date time.Time,
) (*Award, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := token.Validate(); err != nil {
		return nil, err
	}
	if contractID == "" {
		return nil, errs.NewValueIsRequiredError("contract id")
	}
	if stage == "" {
		return nil, errs.NewValueIsRequiredError("stage")
	}
	if owner == "" {
		return nil, errs.NewValueIsRequiredError("owner")
	}
	if len(relatedLots) == 0 {
		return nil, errs.NewValueIsRequiredError("related lots")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Award{
		id:                   id,
		token:                token,
		contractID:           contractID,
		stage:                stage,
		owner:                owner,
		status:               status,
		statusDetails:        statusDetails,
		relatedLots:          slices.Clone(relatedLots),
		value:                value,
		suppliers:            slices.Clone(suppliers),
		documents:            slices.Clone(documents),
		requirementResponses: slices.Clone(requirementResponses),
		description:          description,
		date:                 date,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Award was created through a constructor. Called when
// accepting awards from outside the package, e.g. repository implementations.
func (a *Award) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAwardIsNotConstructed
	}
	return nil
}

// IsEqual compares two awards by their unique identifiers.
func (a *Award) IsEqual(other *Award) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the award's unique identifier.
func (a *Award) ID() kernel.UUID {
	return a.id
}

// Token returns the secret correlation value authorizing evaluation.
func (a *Award) Token() kernel.UUID {
	return a.token
}

// ContractID returns the contracting-process identifier the award belongs to.
func (a *Award) ContractID() string {
	return a.contractID
}

// Stage returns the contracting-process stage the award belongs to.
func (a *Award) Stage() string {
	return a.stage
}

// Owner returns the platform identifier that created the award.
func (a *Award) Owner() string {
	return a.owner
}

// Status returns the coarse lifecycle status.
func (a *Award) Status() Status {
	return a.status
}

// StatusDetails returns the fine-grained evaluation state.
func (a *Award) StatusDetails() StatusDetails {
	return a.statusDetails
}

// RelatedLots returns a copy of the lot identifiers the award pertains to.
func (a *Award) RelatedLots() []string {
	return slices.Clone(a.relatedLots)
}

// Value returns the monetary value of the award.
func (a *Award) Value() kernel.Money {
	return a.value
}

// Suppliers returns a copy of the supplier list.
func (a *Award) Suppliers() []Supplier {
	return slices.Clone(a.suppliers)
}

// Documents returns a copy of the document list.
func (a *Award) Documents() []Document {
	return slices.Clone(a.documents)
}

// RequirementResponses returns a copy of the recorded requirement responses.
func (a *Award) RequirementResponses() []RequirementResponse {
	return slices.Clone(a.requirementResponses)
}

// Description returns the free-text description.
func (a *Award) Description() string {
	return a.description
}

// Date returns the last-modified timestamp.
func (a *Award) Date() time.Time {
	return a.date
}

// HasLot reports whether the award pertains to the given lot.
func (a *Award) HasLot(lotID string) bool {
	return slices.Contains(a.relatedLots, lotID)
}

// ContainsAllLots reports whether the award's related lots are a superset of
// the given lots. Used to select sibling awards competing for the same lots.
func (a *Award) ContainsAllLots(lots []string) bool {
	for _, lot := range lots {
		if !slices.Contains(a.relatedLots, lot) {
			return false
		}
	}
	return true
}

// SupplierIDs returns the canonical supplier ids of the award in order.
func (a *Award) SupplierIDs() []string {
	ids := make([]string, 0, len(a.suppliers))
	for _, s := range a.suppliers {
		ids = append(ids, s.ID)
	}
	return ids
}

// UpdateDescription replaces the free-text description. Only the evaluation
// workflow calls this.
func (a *Award) UpdateDescription(description string) {
	a.description = description
}

// ReconcileDocuments validates and merges the documents of an evaluation
// request into the award. When any request document declares related lots,
// their union must cover every lot of the award, else
// ErrRelatedLotsMismatch is returned and the stored set is left untouched.
func (a *Award) ReconcileDocuments(incoming []Document) error {
	declared := make(map[string]struct{})
	for _, doc := range incoming {
		for _, lot := range doc.RelatedLots {
			declared[lot] = struct{}{}
		}
	}

	if len(declared) > 0 {
		for _, lot := range a.relatedLots {
			if _, ok := declared[lot]; !ok {
				return ErrRelatedLotsMismatch
			}
		}
	}

	a.documents = mergeDocuments(a.documents, incoming)
	return nil
}

// ApplyStatusDetails runs the status-details transition table against the
// stored state and applies the result. Returns ErrStatusDetailsNotAllowed for
// a request outside active/unsuccessful and ErrSavedStatusDetailsCorrupted
// when the stored state itself is outside the lifecycle.
func (a *Award) ApplyStatusDetails(requested StatusDetails) error {
	next, err := a.statusDetails.Transition(requested)
	if err != nil {
		return err
	}

	a.statusDetails = next
	return nil
}

// Touch stamps the last-modified date.
func (a *Award) Touch(date time.Time) {
	a.date = date
}

// AddRequirementResponse records a responder's answer against a requirement
// for a tenderer on this award.
func (a *Award) AddRequirementResponse(response RequirementResponse) error {
	if err := response.validate(); err != nil {
		return err
	}

	a.requirementResponses = append(a.requirementResponses, response)
	return nil
}
