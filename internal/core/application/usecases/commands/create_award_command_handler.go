package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/core/domain/services"
	"evaluation/internal/core/ports"
	"evaluation/internal/pkg/errs"
)

var (
	// ErrUnknownSchemeIdentifier is returned when a supplier's identifier
	// scheme is not in the valid-scheme vocabulary of the request.
	ErrUnknownSchemeIdentifier = errors.New("unknown supplier identifier scheme")

	// ErrUnknownScaleSupplier is returned when a supplier's declared scale is
	// not in the valid-scale vocabulary of the request.
	ErrUnknownScaleSupplier = errors.New("unknown supplier scale")
)

// CreateAwardResult is the projection returned by a successful creation.
// The token is returned exactly once here; it is not retrievable later
// through this workflow.
type CreateAwardResult struct {
	Token kernel.UUID

	AwardID       kernel.UUID
	Date          time.Time
	Status        award.Status
	StatusDetails award.StatusDetails
	RelatedLots   []string
	Description   string
	Value         kernel.Money
	Suppliers     []award.Supplier

	AwardPeriodStart time.Time
	LotAwarded       *bool
}

// CreateAwardCommandHandler runs the award creation workflow: vocabulary
// validation, supplier uniqueness inside the request and across pending
// sibling awards on the lot, lot-awarded derivation, award construction,
// lazy award-period initialization and persistence — all within a single
// unit of work. Every rule failure aborts before any write.
type CreateAwardCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateAwardCommandHandler creates a handler for award creation operations.
func NewCreateAwardCommandHandler(uowFactory UoWFactory) CreateAwardCommandHandler {
	return CreateAwardCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the award creation command and returns the created award
// projection together with its one-time token.
func (h CreateAwardCommandHandler) Handle(ctx context.Context, cmd CreateAwardCommand) (CreateAwardResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateAwardResult{}, err
	}

	suppliers := cmd.Suppliers()
	if err := validateVocabulary(suppliers, cmd.ValidSchemes(), supplierScheme, ErrUnknownSchemeIdentifier); err != nil {
		return CreateAwardResult{}, err
	}
	if err := validateVocabulary(suppliers, cmd.ValidScales(), supplierScale, ErrUnknownScaleSupplier); err != nil {
		return CreateAwardResult{}, err
	}

	policy := services.NewSupplierUniquenessPolicy()
	if err := policy.EnsureUniqueInAward(suppliers); err != nil {
		return CreateAwardResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateAwardResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	awardRepo := uow.AwardRepository()
	periodRepo := uow.AwardPeriodRepository()

	siblings, err := awardRepo.GetByContract(ctx, cmd.ContractID())
	if err != nil {
		return CreateAwardResult{}, err
	}

	if err = policy.EnsureUniqueInLot(suppliers, siblings, cmd.LotID()); err != nil {
		return CreateAwardResult{}, err
	}

	lotAwarded := services.NewLotAwardedDeriver().Derive(siblings, cmd.LotID())

	created, err := award.NewAward(
		kernel.NewUUID(),
		kernel.NewUUID(),
		cmd.ContractID(),
		cmd.Stage(),
		cmd.Owner(),
		cmd.LotID(),
		cmd.Value(),
		suppliers,
		cmd.Description(),
		cmd.StartDate(),
	)
	if err != nil {
		return CreateAwardResult{}, err
	}

	periodStart, err := h.initAwardPeriod(ctx, periodRepo, cmd)
	if err != nil {
		return CreateAwardResult{}, err
	}

	if err = awardRepo.Add(ctx, created); err != nil {
		return CreateAwardResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateAwardResult{}, err
	}

	return CreateAwardResult{
		Token:            created.Token(),
		AwardID:          created.ID(),
		Date:             created.Date(),
		Status:           created.Status(),
		StatusDetails:    created.StatusDetails(),
		RelatedLots:      created.RelatedLots(),
		Description:      created.Description(),
		Value:            created.Value(),
		Suppliers:        created.Suppliers(),
		AwardPeriodStart: periodStart,
		LotAwarded:       lotAwarded,
	}, nil
}

// initAwardPeriod looks up the period anchor for (contract, stage) and lazily
// initializes it from the request start date. The save is insert-if-absent, so
// a concurrent creation for the same pair leaves exactly one stored start; the
// re-read after saving returns whichever value won.
func (h CreateAwardCommandHandler) initAwardPeriod(
	ctx context.Context,
	periodRepo ports.AwardPeriodRepository,
	cmd CreateAwardCommand,
) (time.Time, error) {
	start, err := periodRepo.GetStart(ctx, cmd.ContractID(), cmd.Stage())
	if err == nil {
		return start, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return time.Time{}, err
	}

	if err = periodRepo.SaveStart(ctx, cmd.ContractID(), cmd.Stage(), cmd.StartDate()); err != nil {
		return time.Time{}, err
	}

	return periodRepo.GetStart(ctx, cmd.ContractID(), cmd.Stage())
}

func supplierScheme(s award.Supplier) string { return s.Identifier.Scheme }
func supplierScale(s award.Supplier) string  { return s.Scale }

// validateVocabulary checks that the selected attribute of every supplier
// case-insensitively matches an entry of the vocabulary.
func validateVocabulary(
	suppliers []award.Supplier,
	vocabulary []string,
	attribute func(award.Supplier) string,
	notFound error,
) error {
	allowed := make(map[string]struct{}, len(vocabulary))
	for _, entry := range vocabulary {
		allowed[strings.ToLower(entry)] = struct{}{}
	}

	for _, s := range suppliers {
		if _, ok := allowed[strings.ToLower(attribute(s))]; !ok {
			return notFound
		}
	}
	return nil
}
