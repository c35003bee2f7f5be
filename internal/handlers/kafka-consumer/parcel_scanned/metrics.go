package parcel_scanned

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultProcessed = "processed"
	resultRejected  = "rejected"
	resultRetry     = "retry"
)

var ScanEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "scan_events_total",
		Help: "Scan events consumed from Kafka by type and result",
	},
	[]string{"type", "result"},
)
