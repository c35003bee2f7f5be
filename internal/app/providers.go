package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"logistics/internal/gateway/kafka/status_events"
	"logistics/internal/handlers/tasks/overdue_parcels"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/factory/scan_handle"
	clientRepo "logistics/internal/repository/client"
	courierRepo "logistics/internal/repository/courier"
	historyRepo "logistics/internal/repository/history"
	parcelRepo "logistics/internal/repository/parcel"
	productRepo "logistics/internal/repository/product"
	recipientRepo "logistics/internal/repository/recipient"
	zoneRepo "logistics/internal/repository/zone"
	clientService "logistics/internal/service/client"
	courierService "logistics/internal/service/courier"
	parcelService "logistics/internal/service/parcel"
	productService "logistics/internal/service/product"
	recipientService "logistics/internal/service/recipient"
	scanService "logistics/internal/service/scan"
	zoneService "logistics/internal/service/zone"
	"logistics/pkg/background"
	"logistics/pkg/logger"
	"logistics/pkg/querier"
	"logistics/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideRecipientRepository(querier *querier.Querier) *recipientRepo.Repository {
	return recipientRepo.New(querier)
}

func provideClientRepository(querier *querier.Querier) *clientRepo.Repository {
	return clientRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideServiceZone(repository zoneService.Repository) *zoneService.Zone {
	return zoneService.New(repository)
}

func provideServiceCourier(
	repository courierService.Repository,
	zoneService courierService.ZoneService,
) *courierService.Courier {
	return courierService.New(repository, zoneService)
}

func provideServiceProduct(repository productService.Repository) *productService.Product {
	return productService.New(repository)
}

func provideServiceRecipient(repository recipientService.Repository) *recipientService.Recipient {
	return recipientService.New(repository)
}

func provideServiceClient(repository clientService.Repository) *clientService.Client {
	return clientService.New(repository)
}

func provideServiceParcel(
	repository parcelService.Repository,
	historyRepository parcelService.HistoryRepository,
	clientService parcelService.ClientService,
	recipientService parcelService.RecipientService,
	zoneService parcelService.ZoneService,
	productService parcelService.ProductService,
	courierService parcelService.CourierService,
	trackingGenerator parcelService.TrackingNumberGenerator,
	deadlineFactory parcelService.DeliveryDeadlineFactory,
	publisher parcelService.EventPublisher,
	txManager parcelService.TxManager,
	log logger.Logger,
) *parcelService.Parcel {
	return parcelService.New(
		repository,
		historyRepository,
		clientService,
		recipientService,
		zoneService,
		productService,
		courierService,
		trackingGenerator,
		deadlineFactory,
		publisher,
		txManager,
		log,
	)
}

func provideStatusEventsGateway(producer sarama.SyncProducer, cfg *config.Config) *status_events.StatusEventsGateway {
	return status_events.New(producer, cfg.Kafka.StatusTopic)
}

func provideScanHandlerFactory(parcelService scanService.ParcelService) *scan_handle.EventHandlerFactory {
	return scan_handle.NewEventHandlerFactory(parcelService)
}

func provideScanService(
	parcelService scanService.ParcelService,
	handlerFactory scanService.HandlerFactory,
) *scanService.Service {
	return scanService.New(parcelService, handlerFactory)
}

func provideOverdueScanInterval(cfg *config.Config) OverdueScanInterval {
	return OverdueScanInterval(cfg.Tasks.OverdueScanInterval)
}

func provideOverdueParcelsTask(
	log logger.Logger,
	parcelService overdue_parcels.Service,
	interval OverdueScanInterval,
) *overdue_parcels.OverdueParcels {
	return overdue_parcels.NewOverdueParcels(log, parcelService, time.Duration(interval))
}

func provideTaskList(
	overdueParcelsTask *overdue_parcels.OverdueParcels,
) []background.Task {
	return []background.Task{
		overdueParcelsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
