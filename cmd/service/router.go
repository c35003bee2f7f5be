package main

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "logistics/internal/app"
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
	"logistics/internal/handlers/rest/healthcheck_head"
	"logistics/internal/handlers/rest/parcel_courier_patch"
	"logistics/internal/handlers/rest/parcel_details_get"
	"logistics/internal/handlers/rest/parcel_get"
	"logistics/internal/handlers/rest/parcel_history_get"
	"logistics/internal/handlers/rest/parcel_post"
	"logistics/internal/handlers/rest/parcel_status_patch"
	"logistics/internal/handlers/rest/parcel_tracking_get"
	"logistics/internal/handlers/rest/parcels_get"
	"logistics/internal/handlers/rest/parcels_overdue_get"
	"logistics/internal/handlers/rest/ping_get"
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
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/middlewares/graceful_shutdown"
	"logistics/internal/pkg/middlewares/metrics"
	"logistics/internal/pkg/middlewares/rate_limiter"
	"logistics/internal/pkg/middlewares/timeout"
	"logistics/pkg/logger"
	"logistics/pkg/token_bucket"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log, db)).Methods(http.MethodGet)

	// статичные пути регистрируются раньше /parcels/{id}
	router.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods(http.MethodPost)
	router.Handle("/parcels", parcels_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/parcels/overdue", parcels_overdue_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/parcels/tracking/{tracking_number}", parcel_tracking_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/parcels/{id:[0-9-]+}", parcel_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/parcels/{id:[0-9-]+}/details", parcel_details_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/parcels/{id:[0-9-]+}/status", parcel_status_patch.New(log, app.ServiceParcel)).Methods(http.MethodPatch)
	router.Handle("/parcels/{id:[0-9-]+}/courier", parcel_courier_patch.New(log, app.ServiceParcel)).Methods(http.MethodPatch)
	router.Handle("/parcels/{id:[0-9-]+}/history", parcel_history_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)

	router.Handle("/couriers", courier_post.New(log, app.ServiceCourier)).Methods(http.MethodPost)
	router.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods(http.MethodGet)
	router.Handle("/couriers/phone/{phone}", courier_by_phone_get.New(log, app.ServiceCourier)).Methods(http.MethodGet)
	router.Handle("/couriers/{id}", courier_get.New(log, app.ServiceCourier)).Methods(http.MethodGet)
	router.Handle("/couriers/{id}", courier_put.New(log, app.ServiceCourier)).Methods(http.MethodPut)
	router.Handle("/couriers/{id}", courier_delete.New(log, app.ServiceCourier)).Methods(http.MethodDelete)
	router.Handle("/couriers/{id}/active", courier_activation_patch.New(log, app.ServiceCourier)).Methods(http.MethodPatch)

	router.Handle("/zones", zone_post.New(log, app.ServiceZone)).Methods(http.MethodPost)
	router.Handle("/zones", zones_get.New(log, app.ServiceZone)).Methods(http.MethodGet)
	router.Handle("/zones/{id}", zone_get.New(log, app.ServiceZone)).Methods(http.MethodGet)
	router.Handle("/zones/{id}", zone_put.New(log, app.ServiceZone)).Methods(http.MethodPut)
	router.Handle("/zones/{id}", zone_delete.New(log, app.ServiceZone)).Methods(http.MethodDelete)
	router.Handle("/zones/{id}/couriers/active/count", courier_count_get.New(log, app.ServiceCourier)).Methods(http.MethodGet)

	router.Handle("/products", product_post.New(log, app.ServiceProduct)).Methods(http.MethodPost)
	router.Handle("/products", products_get.New(log, app.ServiceProduct)).Methods(http.MethodGet)
	router.Handle("/products/{id}", product_get.New(log, app.ServiceProduct)).Methods(http.MethodGet)
	router.Handle("/products/{id}", product_put.New(log, app.ServiceProduct)).Methods(http.MethodPut)
	router.Handle("/products/{id}", product_delete.New(log, app.ServiceProduct)).Methods(http.MethodDelete)

	router.Handle("/recipients", recipient_post.New(log, app.ServiceRecipient)).Methods(http.MethodPost)
	router.Handle("/recipients", recipients_get.New(log, app.ServiceRecipient)).Methods(http.MethodGet)
	router.Handle("/recipients/{id}", recipient_get.New(log, app.ServiceRecipient)).Methods(http.MethodGet)
	router.Handle("/recipients/{id}", recipient_put.New(log, app.ServiceRecipient)).Methods(http.MethodPut)
	router.Handle("/recipients/{id}", recipient_delete.New(log, app.ServiceRecipient)).Methods(http.MethodDelete)

	router.Handle("/clients", client_post.New(log, app.ServiceClient)).Methods(http.MethodPost)
	router.Handle("/clients", clients_get.New(log, app.ServiceClient)).Methods(http.MethodGet)
	router.Handle("/clients/{id}", client_get.New(log, app.ServiceClient)).Methods(http.MethodGet)
	router.Handle("/clients/{id}", client_put.New(log, app.ServiceClient)).Methods(http.MethodPut)
	router.Handle("/clients/{id}", client_delete.New(log, app.ServiceClient)).Methods(http.MethodDelete)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
