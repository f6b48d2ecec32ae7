package cmd

import (
	"log/slog"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/mongorepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/queries"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/ports"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/jobs"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	replicaStore ports.ReplicaStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, mongoDB *mongo.Database) (CompositionRoot, error) {
	replicaStore, err := mongorepo.NewMongoReplicaStore(mongoDB)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		replicaStore: replicaStore,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderUrgentCommandHandler() commands.MarkOrderUrgentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderUrgentCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncEntitiesCommandHandler() commands.SyncEntitiesCommandHandler {
	var f commands.SyncUoWFactory = FuncSyncUoWFactory(func() commands.SyncUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncEntitiesCommandHandler(f, c.replicaStore)
}

func (c *CompositionRoot) CreateRecomputeCompanyStatsCommandHandler() commands.RecomputeCompanyStatsCommandHandler {
	var f commands.StatsUoWFactory = FuncStatsUoWFactory(func() commands.StatsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeCompanyStatsCommandHandler(f)
}

func (c *CompositionRoot) CreateRecomputeDealerRoutesCommandHandler() commands.RecomputeDealerRoutesCommandHandler {
	var f commands.RoutesUoWFactory = FuncRoutesUoWFactory(func() commands.RoutesUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeDealerRoutesCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckClientCoverageQueryHandler() queries.CheckClientCoverageQueryHandler {
	return queries.NewCheckClientCoverageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearestDealersQueryHandler() queries.GetNearestDealersQueryHandler {
	return queries.NewGetNearestDealersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientsBeyondRadiusQueryHandler() queries.GetClientsBeyondRadiusQueryHandler {
	return queries.NewGetClientsBeyondRadiusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFarthestClientQueryHandler() queries.GetFarthestClientQueryHandler {
	return queries.NewGetFarthestClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMultizoneOrdersQueryHandler() queries.GetMultizoneOrdersQueryHandler {
	return queries.NewGetMultizoneOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDealerActiveOrderQueryHandler() queries.GetDealerActiveOrderQueryHandler {
	return queries.NewGetDealerActiveOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSyncEntitiesCommandHandler(),
		c.CreateRecomputeCompanyStatsCommandHandler(),
		c.CreateRecomputeDealerRoutesCommandHandler(),
		jobs.Schedules{
			ReplicationSync: c.config.SyncSchedule,
			CompanyStats:    c.config.CompanyStatsSchedule,
			DealerRoutes:    c.config.DealerRoutesSchedule,
		},
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncSyncUoWFactory func() commands.SyncUoW

func (f FuncSyncUoWFactory) Create() commands.SyncUoW {
	return f()
}

type FuncStatsUoWFactory func() commands.StatsUoW

func (f FuncStatsUoWFactory) Create() commands.StatsUoW {
	return f()
}

type FuncRoutesUoWFactory func() commands.RoutesUoW

func (f FuncRoutesUoWFactory) Create() commands.RoutesUoW {
	return f()
}
