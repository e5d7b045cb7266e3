package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	// runAssignmentHandler is shared by every consumer so concurrent
	// dispatch triggers are serialized on one guard
	runAssignmentHandler commands.RunAssignmentCommandHandler
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	uowFactory := *postgres.NewGormUnitOfWorkFactory(gormDB)

	var dispatchFactory commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return uowFactory.Create()
	})

	return CompositionRoot{
		gormDB:               gormDB,
		uowFactory:           uowFactory,
		runAssignmentHandler: commands.NewRunAssignmentCommandHandler(dispatchFactory),
	}
}

func (c *CompositionRoot) CreateCreateAreaCommandHandler() commands.CreateAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAreaCommandHandler() commands.UpdateAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAreaCommandHandler() commands.DeleteAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderPartnerUoWFactory = FuncOrderPartnerUoWFactory(func() commands.OrderPartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerCommandHandler() commands.UpdatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePartnerCommandHandler() commands.DeletePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePartnerCommandHandler(f)
}

// CreateRunAssignmentCommandHandler returns the shared dispatch run handler.
// The HTTP trigger and the cron job must receive the same instance: each
// handler construction allocates its own serialization guard, and two
// independent handlers could run dispatch passes concurrently against the
// same partner pool.
func (c *CompositionRoot) CreateRunAssignmentCommandHandler() commands.RunAssignmentCommandHandler {
	return c.runAssignmentHandler
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAreasQueryHandler() queries.GetAreasQueryHandler {
	return queries.NewGetAreasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnersQueryHandler() queries.GetPartnersQueryHandler {
	return queries.NewGetPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailablePartnersQueryHandler() queries.GetAvailablePartnersQueryHandler {
	return queries.NewGetAvailablePartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerMetricsQueryHandler() queries.GetPartnerMetricsQueryHandler {
	return queries.NewGetPartnerMetricsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentsQueryHandler() queries.GetAssignmentsQueryHandler {
	return queries.NewGetAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentAssignmentsQueryHandler() queries.GetRecentAssignmentsQueryHandler {
	return queries.NewGetRecentAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentMetricsQueryHandler() queries.GetAssignmentMetricsQueryHandler {
	return queries.NewGetAssignmentMetricsQueryHandler(c.gormDB)
}

type FuncAreaUoWFactory func() commands.AreaUoW

func (f FuncAreaUoWFactory) Create() commands.AreaUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncOrderPartnerUoWFactory func() commands.OrderPartnerUoW

func (f FuncOrderPartnerUoWFactory) Create() commands.OrderPartnerUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
