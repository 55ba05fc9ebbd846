//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/handlers/tasks/location_cleanup"
	"dispatch/internal/handlers/tasks/queue_reaper"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/status_handle"

	deliveryRepo "dispatch/internal/repository/delivery"
	dispatchqueueRepo "dispatch/internal/repository/dispatchqueue"
	driverRepo "dispatch/internal/repository/driver"
	driverlocationRepo "dispatch/internal/repository/driverlocation"
	notificationRepo "dispatch/internal/repository/notification"
	orderRepo "dispatch/internal/repository/order"
	"dispatch/internal/service/assignment"
	deliveryService "dispatch/internal/service/delivery"
	"dispatch/internal/service/dispatcher"
	"dispatch/internal/service/locator"
	notificationService "dispatch/internal/service/notification"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	Dispatcher        *dispatcher.Dispatcher
	StatusFactory     *status_handle.StatusHandlerFactory
	BackgroundWorkers *background.Worker
}

// InitializeApplication для воркера диспетчеризации (cmd/worker-dispatch)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideDriverRepository,
		provideDriverLocationRepository,
		provideDeliveryRepository,
		provideNotificationRepository,
		provideDispatchQueueRepository,

		provideLocator,
		provideAssignmentTransactor,
		provideNotificationService,
		provideDeliveryLifecycle,
		provideDispatcher,
		provideStatusHandlerFactory,

		provideQueueReaperTask,
		provideLocationCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(locator.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(locator.LocationRepository), new(*driverlocationRepo.Repository)),

		wire.Bind(new(assignment.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignment.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(assignment.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(assignment.Locator), new(*locator.Locator)),
		wire.Bind(new(assignment.TxManager), new(*tx.Manager)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(notificationService.DriverRepository), new(*driverRepo.Repository)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatcher.Queue), new(*dispatchqueueRepo.Repository)),
		wire.Bind(new(dispatcher.Transactor), new(*assignment.Transactor)),
		wire.Bind(new(dispatcher.Notifier), new(*notificationService.Service)),

		wire.Bind(new(status_handle.Enqueuer), new(*dispatcher.Dispatcher)),
		wire.Bind(new(status_handle.DeliveryLifecycle), new(*deliveryService.Lifecycle)),

		wire.Bind(new(queue_reaper.Service), new(*dispatcher.Dispatcher)),
		wire.Bind(new(location_cleanup.Service), new(*locator.Locator)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideDriverLocationRepository(querier *querier.Querier) *driverlocationRepo.Repository {
	return driverlocationRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

// provideDispatchQueueRepository отдаёт очередь с арендой, равной таймауту
// обработки: пока воркер имеет право работать над заявкой, жнец её не трогает.
func provideDispatchQueueRepository(querier *querier.Querier, cfg *config.Config) *dispatchqueueRepo.Repository {
	return dispatchqueueRepo.New(querier, cfg.Dispatch.ProcessTimeout)
}

func provideLocator(
	drivers locator.DriverRepository,
	locations locator.LocationRepository,
	cfg *config.Config,
) *locator.Locator {
	return locator.New(drivers, locations, cfg.Dispatch.LocationRetention)
}

func provideAssignmentTransactor(
	orders assignment.OrderRepository,
	drivers assignment.DriverRepository,
	deliveries assignment.DeliveryRepository,
	candidateLocator assignment.Locator,
	txManager assignment.TxManager,
	cfg *config.Config,
) *assignment.Transactor {
	return assignment.New(orders, drivers, deliveries, candidateLocator, txManager, cfg.Dispatch.FreshnessWindow)
}

func provideNotificationService(
	notifications notificationService.Repository,
	orders notificationService.OrderRepository,
	drivers notificationService.DriverRepository,
) *notificationService.Service {
	return notificationService.New(notifications, orders, drivers)
}

func provideDeliveryLifecycle(
	repository deliveryService.Repository,
	drivers deliveryService.DriverRepository,
	orders deliveryService.OrderRepository,
	txManager deliveryService.TxManager,
) *deliveryService.Lifecycle {
	return deliveryService.New(repository, drivers, orders, txManager)
}

func provideDispatcher(
	log logger.Logger,
	queue dispatcher.Queue,
	transactor dispatcher.Transactor,
	notifier dispatcher.Notifier,
	cfg *config.Config,
) *dispatcher.Dispatcher {
	return dispatcher.New(log, queue, transactor, notifier, dispatcher.Config{
		Workers:        cfg.Dispatch.Workers,
		PollInterval:   cfg.Dispatch.PollInterval,
		ProcessTimeout: cfg.Dispatch.ProcessTimeout,
		MaxAttempts:    cfg.Dispatch.MaxAttempts,
		Backoff: dispatcher.BackoffConfig{
			InitialInterval: cfg.Dispatch.BackoffInitialInterval,
			MaxInterval:     cfg.Dispatch.BackoffMaxInterval,
			Randomization:   dispatcher.DefaultBackoffRandomization,
			Multiplier:      dispatcher.DefaultBackoffMultiplier,
		},
	})
}

func provideStatusHandlerFactory(
	enqueuer status_handle.Enqueuer,
	lifecycle status_handle.DeliveryLifecycle,
) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(enqueuer, lifecycle)
}

func provideQueueReaperTask(
	log logger.Logger,
	service queue_reaper.Service,
	cfg *config.Config,
) *queue_reaper.QueueReaper {
	return queue_reaper.NewQueueReaper(log, service, cfg.Tasks.QueueReaperInterval)
}

func provideLocationCleanupTask(
	log logger.Logger,
	service location_cleanup.Service,
	cfg *config.Config,
) *location_cleanup.LocationCleanup {
	return location_cleanup.NewLocationCleanup(log, service, cfg.Tasks.LocationCleanupInterval)
}

func provideTaskList(
	queueReaperTask *queue_reaper.QueueReaper,
	locationCleanupTask *location_cleanup.LocationCleanup,
) []background.Task {
	return []background.Task{
		queueReaperTask,
		locationCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
