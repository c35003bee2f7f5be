//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"logistics/internal/gateway/kafka/status_events"
	"logistics/internal/handlers/tasks/overdue_parcels"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/factory/delivery_deadline"
	"logistics/internal/pkg/factory/scan_handle"
	"logistics/internal/pkg/factory/tracking_number"
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
	"logistics/pkg/logger"
	"logistics/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		domainSet,

		provideOverdueScanInterval,
		provideOverdueParcelsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceZone), new(*zoneService.Zone)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceProduct), new(*productService.Product)),
		wire.Bind(new(ServiceRecipient), new(*recipientService.Recipient)),
		wire.Bind(new(ServiceClient), new(*clientService.Client)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(overdue_parcels.Service), new(*parcelService.Parcel)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-parcel-scanned)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		domainSet,

		provideScanHandlerFactory,
		provideScanService,

		wire.Bind(new(scanService.ParcelService), new(*parcelService.Parcel)),
		wire.Bind(new(scanService.HandlerFactory), new(*scan_handle.EventHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

var domainSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideZoneRepository,
	provideCourierRepository,
	provideProductRepository,
	provideRecipientRepository,
	provideClientRepository,
	provideParcelRepository,
	provideHistoryRepository,

	provideServiceZone,
	provideServiceCourier,
	provideServiceProduct,
	provideServiceRecipient,
	provideServiceClient,
	provideServiceParcel,

	tracking_number.New,
	delivery_deadline.New,
	provideStatusEventsGateway,

	wire.Bind(new(zoneService.Repository), new(*zoneRepo.Repository)),
	wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
	wire.Bind(new(courierService.ZoneService), new(*zoneService.Zone)),
	wire.Bind(new(productService.Repository), new(*productRepo.Repository)),
	wire.Bind(new(recipientService.Repository), new(*recipientRepo.Repository)),
	wire.Bind(new(clientService.Repository), new(*clientRepo.Repository)),

	wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
	wire.Bind(new(parcelService.HistoryRepository), new(*historyRepo.Repository)),
	wire.Bind(new(parcelService.ClientService), new(*clientService.Client)),
	wire.Bind(new(parcelService.RecipientService), new(*recipientService.Recipient)),
	wire.Bind(new(parcelService.ZoneService), new(*zoneService.Zone)),
	wire.Bind(new(parcelService.ProductService), new(*productService.Product)),
	wire.Bind(new(parcelService.CourierService), new(*courierService.Courier)),
	wire.Bind(new(parcelService.TrackingNumberGenerator), new(*tracking_number.Generator)),
	wire.Bind(new(parcelService.DeliveryDeadlineFactory), new(*delivery_deadline.DeliveryTimeFactory)),
	wire.Bind(new(parcelService.EventPublisher), new(*status_events.StatusEventsGateway)),
	wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
)
