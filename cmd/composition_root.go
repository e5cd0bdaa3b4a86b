package cmd

import (
	"log/slog"

	httpin "foodorders/internal/adapters/in/http"
	"foodorders/internal/adapters/out/postgres"
	"foodorders/internal/adapters/out/postgres/errorlogrepo"
	"foodorders/internal/adapters/out/postgres/orderrepo"
	"foodorders/internal/core/application/processing"
	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/ports"
	"foodorders/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application object graph together. All
// long-lived collaborators are created once; per-request units of work
// come from the factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	errorSink  *errorlogrepo.GormErrorSink
	admission  *processing.AdmissionPolicy
	dispatcher *processing.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot builds the full object graph. The error sink and the
// admission counter read through their own repository handles rather than
// a business transaction: sink records must survive rollbacks, and the
// admission count must always reflect committed state.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	processingConfig := processing.DefaultConfig()
	if config.MaxConcurrentOrders > 0 {
		processingConfig.MaxConcurrentOrders = config.MaxConcurrentOrders
	}

	errorSink := errorlogrepo.NewGormErrorSink(gormDB)

	counter := orderrepo.NewGormOrderRepository(gormDB, nil)
	admission, err := processing.NewAdmissionPolicy(counter, processingConfig.MaxConcurrentOrders)
	if err != nil {
		return nil, err
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	transitioner, err := processing.NewTransitioner(
		funcProcessingUoWFactory(func() processing.OrderUoW { return uowFactory.Create() }),
		admission,
		errorSink,
		processingConfig,
		logger,
	)
	if err != nil {
		return nil, err
	}

	dispatcher, err := processing.NewDispatcher(transitioner, processingConfig.SettlingDelay, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *uowFactory,
		errorSink:  errorSink,
		admission:  admission,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// Dispatcher exposes the processing dispatcher for shutdown coordination.
func (c *CompositionRoot) Dispatcher() *processing.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = funcPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.dispatcher, c.errorSink)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancellationUoWFactory = funcCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.errorSink)
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	var f commands.CatalogUoWFactory = funcCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDishCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = funcUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseDueOrdersCommandHandler() *commands.ReleaseDueOrdersCommandHandler {
	var f commands.OrderUoWFactory = funcOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewReleaseDueOrdersCommandHandler(f, c.admission, c.dispatcher, c.errorSink)
	return &handler
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB, c.errorSink)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListErrorsQueryHandler() queries.ListErrorsQueryHandler {
	return queries.NewListErrorsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP adapter with all its handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateCreateDishCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateSearchOrdersQueryHandler(),
		c.CreateListDishesQueryHandler(),
		c.CreateListErrorsQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReleaseDueOrdersCommandHandler(), c.logger)
}

// UnitOfWork hands out a fresh unit of work, used by the startup seeder.
func (c *CompositionRoot) UnitOfWork() ports.UnitOfWork {
	return c.uowFactory.Create()
}

type funcPlacementUoWFactory func() commands.PlacementUoW

func (f funcPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type funcCancellationUoWFactory func() commands.CancellationUoW

func (f funcCancellationUoWFactory) Create() commands.CancellationUoW {
	return f()
}

type funcCatalogUoWFactory func() commands.CatalogUoW

func (f funcCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type funcUserUoWFactory func() commands.UserUoW

func (f funcUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type funcProcessingUoWFactory func() processing.OrderUoW

func (f funcProcessingUoWFactory) Create() processing.OrderUoW {
	return f()
}
