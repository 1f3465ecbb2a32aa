package commands

import (
	"context"

	"evaluation/internal/pkg/errs"
)

// AddRequirementResponseCommandHandler appends a requirement response to a
// persisted award. Unlike creation and evaluation this is plain record
// keeping: the only business rule is that the award must exist for the
// contracting process.
type AddRequirementResponseCommandHandler struct {
	uowFactory AwardUoWFactory
}

// NewAddRequirementResponseCommandHandler creates a handler for recording
// requirement responses.
func NewAddRequirementResponseCommandHandler(uowFactory AwardUoWFactory) AddRequirementResponseCommandHandler {
	return AddRequirementResponseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locates the award by id within the contracting process, appends the
// response and persists the aggregate.
func (h AddRequirementResponseCommandHandler) Handle(ctx context.Context, cmd AddRequirementResponseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	awardRepo := uow.AwardRepository()

	awards, err := awardRepo.GetByContract(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	for _, a := range awards {
		if !a.ID().IsEqual(cmd.AwardID()) {
			continue
		}

		if err = a.AddRequirementResponse(cmd.Response()); err != nil {
			return err
		}
		if err = awardRepo.Update(ctx, a); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	return errs.NewObjectNotFoundError("award", cmd.AwardID().String())
}
