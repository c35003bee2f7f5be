// Package app собирает зависимости сервисов через google/wire.
package app

import (
	"time"

	"logistics/internal/handlers/rest/client_delete"
	"logistics/internal/handlers/rest/client_get"
	"logistics/internal/handlers/rest/client_post"
	"logistics/internal/handlers/rest/client_put"
	"logistics/internal/handlers/rest/clients_get"
	"logistics/internal/handlers/rest/courier_activation_patch"
	"logistics/internal/handlers/rest/courier_by_phone_get"
	"logistics/internal/handlers/rest/courier_count_get"
	"logistics/internal/handlers/rest/courier_delete"
	"logistics/internal/handlers/rest/courier_get"
	"logistics/internal/handlers/rest/courier_post"
	"logistics/internal/handlers/rest/courier_put"
	"logistics/internal/handlers/rest/couriers_get"
	"logistics/internal/handlers/rest/parcel_courier_patch"
	"logistics/internal/handlers/rest/parcel_details_get"
	"logistics/internal/handlers/rest/parcel_get"
	"logistics/internal/handlers/rest/parcel_history_get"
	"logistics/internal/handlers/rest/parcel_post"
	"logistics/internal/handlers/rest/parcel_status_patch"
	"logistics/internal/handlers/rest/parcel_tracking_get"
	"logistics/internal/handlers/rest/parcels_get"
	"logistics/internal/handlers/rest/parcels_overdue_get"
	"logistics/internal/handlers/rest/product_delete"
	"logistics/internal/handlers/rest/product_get"
	"logistics/internal/handlers/rest/product_post"
	"logistics/internal/handlers/rest/product_put"
	"logistics/internal/handlers/rest/products_get"
	"logistics/internal/handlers/rest/recipient_delete"
	"logistics/internal/handlers/rest/recipient_get"
	"logistics/internal/handlers/rest/recipient_post"
	"logistics/internal/handlers/rest/recipient_put"
	"logistics/internal/handlers/rest/recipients_get"
	"logistics/internal/handlers/rest/zone_delete"
	"logistics/internal/handlers/rest/zone_get"
	"logistics/internal/handlers/rest/zone_post"
	"logistics/internal/handlers/rest/zone_put"
	"logistics/internal/handlers/rest/zones_get"
	scanService "logistics/internal/service/scan"
	"logistics/pkg/background"
)

type (
	OverdueScanInterval time.Duration
)

type Application struct {
	ServiceZone       ServiceZone
	ServiceCourier    ServiceCourier
	ServiceProduct    ServiceProduct
	ServiceRecipient  ServiceRecipient
	ServiceClient     ServiceClient
	ServiceParcel     ServiceParcel
	BackgroundWorkers *background.Worker
}

type ServiceZone interface {
	zone_post.Service
	zones_get.Service
	zone_get.Service
	zone_put.Service
	zone_delete.Service
}

type ServiceCourier interface {
	courier_post.Service
	couriers_get.Service
	courier_get.Service
	courier_by_phone_get.Service
	courier_put.Service
	courier_delete.Service
	courier_activation_patch.Service
	courier_count_get.Service
}

type ServiceProduct interface {
	product_post.Service
	products_get.Service
	product_get.Service
	product_put.Service
	product_delete.Service
}

type ServiceRecipient interface {
	recipient_post.Service
	recipients_get.Service
	recipient_get.Service
	recipient_put.Service
	recipient_delete.Service
}

type ServiceClient interface {
	client_post.Service
	clients_get.Service
	client_get.Service
	client_put.Service
	client_delete.Service
}

type ServiceParcel interface {
	parcel_post.Service
	parcels_get.Service
	parcels_overdue_get.Service
	parcel_tracking_get.Service
	parcel_get.Service
	parcel_details_get.Service
	parcel_status_patch.Service
	parcel_courier_patch.Service
	parcel_history_get.Service
}

type KafkaWorkerApp struct {
	ScanService *scanService.Service
}
