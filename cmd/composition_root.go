package cmd

import (
	"evaluation/internal/adapters/out/postgres"
	"evaluation/internal/core/application/usecases/commands"
	"evaluation/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateAwardCommandHandler() commands.CreateAwardCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAwardCommandHandler(f)
}

func (c *CompositionRoot) CreateEvaluateAwardCommandHandler() commands.EvaluateAwardCommandHandler {
	var f commands.AwardUoWFactory = FuncAwardUoWFactory(func() commands.AwardUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEvaluateAwardCommandHandler(f)
}

func (c *CompositionRoot) CreateAddRequirementResponseCommandHandler() commands.AddRequirementResponseCommandHandler {
	var f commands.AwardUoWFactory = FuncAwardUoWFactory(func() commands.AwardUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddRequirementResponseCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAwardPeriodQueryHandler() queries.GetAwardPeriodQueryHandler {
	return queries.NewGetAwardPeriodQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetContractAwardsQueryHandler() queries.GetContractAwardsQueryHandler {
	return queries.NewGetContractAwardsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountPendingAwardsQueryHandler() queries.CountPendingAwardsQueryHandler {
	return queries.NewCountPendingAwardsQueryHandler(c.gormDB)
}

type FuncAwardUoWFactory func() commands.AwardUoW

func (f FuncAwardUoWFactory) Create() commands.AwardUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
