package overdue_parcels

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"logistics/pkg/logger"
)

var ParcelsOverdue = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "parcels_overdue",
		Help: "Parcels past planned delivery time and not yet delivered",
	},
)

type OverdueParcels struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewOverdueParcels(log logger.Logger, service Service, interval time.Duration) *OverdueParcels {
	return &OverdueParcels{
		log:      log,
		service:  service,
		interval: interval,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (o *OverdueParcels) TTL() time.Duration {
	return o.interval
}

// Do пересчитывает просроченные посылки. При ошибке значение gauge не трогаем.
func (o *OverdueParcels) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	count, err := o.service.CountOverdueParcels(ctxWithTimeout, o.now())
	if err != nil {
		return fmt.Errorf("count overdue parcels: %w", err)
	}

	ParcelsOverdue.Set(float64(count))

	if count > 0 {
		o.log.With(
			logger.NewField("overdue_parcels", count),
		).Warn("overdue parcels detected")
	}

	return nil
}

func (o *OverdueParcels) Info() string {
	return "overdue parcels scan"
}
