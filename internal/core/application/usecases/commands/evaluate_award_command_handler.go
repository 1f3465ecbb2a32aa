package commands

import (
	"context"
	"errors"
	"time"

	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/core/ports"
	"evaluation/internal/pkg/errs"
)

var (
	// ErrTokenMismatch is returned when the token of an evaluation request does
	// not match the token stored with the award.
	ErrTokenMismatch = errors.New("award token mismatch")

	// ErrOwnerMismatch is returned when the owner of an evaluation request does
	// not match the owner stored with the award.
	ErrOwnerMismatch = errors.New("award owner mismatch")

	// ErrAlreadyHaveActiveAwards is returned when activating an award whose
	// lots are already covered by an active sibling award. A lot may have only
	// one active award.
	ErrAlreadyHaveActiveAwards = errors.New("lot already has an active award")
)

// SupplierSummary is the reduced supplier projection of the evaluation result.
type SupplierSummary struct {
	ID   string
	Name string
}

// EvaluateAwardResult is the projection returned by a successful evaluation.
type EvaluateAwardResult struct {
	AwardID       kernel.UUID
	Date          time.Time
	Description   string
	Status        award.Status
	StatusDetails award.StatusDetails
	RelatedLots   []string
	Value         kernel.Money
	Suppliers     []SupplierSummary
	Documents     []award.Document
}

// EvaluateAwardCommandHandler runs the award evaluation workflow. Checks run
// in fixed order: award lookup, token, owner, award id, requested status
// details (with the single-active-award-per-lot rule), document related lots,
// document reconciliation, status transition — and only then the persistence
// write. Every failure aborts before the write.
type EvaluateAwardCommandHandler struct {
	uowFactory AwardUoWFactory
}

// NewEvaluateAwardCommandHandler creates a handler for award evaluation operations.
func NewEvaluateAwardCommandHandler(uowFactory AwardUoWFactory) EvaluateAwardCommandHandler {
	return EvaluateAwardCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the award evaluation command and returns the updated award
// projection with suppliers reduced to id and name.
func (h EvaluateAwardCommandHandler) Handle(ctx context.Context, cmd EvaluateAwardCommand) (EvaluateAwardResult, error) {
	if err := cmd.Validate(); err != nil {
		return EvaluateAwardResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EvaluateAwardResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	awardRepo := uow.AwardRepository()

	stored, err := awardRepo.GetByToken(ctx, cmd.ContractID(), cmd.Stage(), cmd.Token())
	if err != nil {
		return EvaluateAwardResult{}, err
	}

	if !stored.Token().IsEqual(cmd.Token()) {
		return EvaluateAwardResult{}, ErrTokenMismatch
	}
	if stored.Owner() != cmd.Owner() {
		return EvaluateAwardResult{}, ErrOwnerMismatch
	}
	if !stored.ID().IsEqual(cmd.AwardID()) {
		return EvaluateAwardResult{}, errs.NewObjectNotFoundError("award", cmd.AwardID().String())
	}

	requested := cmd.StatusDetails()
	if requested != award.DetailsActive && requested != award.DetailsUnsuccessful {
		return EvaluateAwardResult{}, award.ErrStatusDetailsNotAllowed
	}

	if requested == award.DetailsActive {
		if err = h.ensureNoActiveSibling(ctx, awardRepo, stored); err != nil {
			return EvaluateAwardResult{}, err
		}
	}

	if err = stored.ReconcileDocuments(cmd.Documents()); err != nil {
		return EvaluateAwardResult{}, err
	}

	if err = stored.ApplyStatusDetails(requested); err != nil {
		return EvaluateAwardResult{}, err
	}

	stored.UpdateDescription(cmd.Description())
	stored.Touch(cmd.StartDate())

	if err = awardRepo.Update(ctx, stored); err != nil {
		return EvaluateAwardResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return EvaluateAwardResult{}, err
	}

	suppliers := make([]SupplierSummary, 0, len(stored.Suppliers()))
	for _, s := range stored.Suppliers() {
		suppliers = append(suppliers, SupplierSummary{ID: s.ID, Name: s.Name})
	}

	return EvaluateAwardResult{
		AwardID:       stored.ID(),
		Date:          stored.Date(),
		Description:   stored.Description(),
		Status:        stored.Status(),
		StatusDetails: stored.StatusDetails(),
		RelatedLots:   stored.RelatedLots(),
		Value:         stored.Value(),
		Suppliers:     suppliers,
		Documents:     stored.Documents(),
	}, nil
}

// ensureNoActiveSibling rejects activation when another award of the same
// contract and stage covers all lots of the current award and is already
// active.
func (h EvaluateAwardCommandHandler) ensureNoActiveSibling(
	ctx context.Context,
	awardRepo ports.AwardRepository,
	current *award.Award,
) error {
	siblings, err := awardRepo.GetByContract(ctx, current.ContractID())
	if err != nil {
		return err
	}

	lots := current.RelatedLots()
	for _, sibling := range siblings {
		if sibling.IsEqual(current) || sibling.Stage() != current.Stage() {
			continue
		}
		if sibling.ContainsAllLots(lots) && sibling.StatusDetails() == award.DetailsActive {
			return ErrAlreadyHaveActiveAwards
		}
	}
	return nil
}
