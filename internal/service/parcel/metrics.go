package parcel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ParcelsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcels_created_total",
			Help: "Total number of created parcels",
		},
		[]string{"priority"},
	)

	ParcelStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_status_transitions_total",
			Help: "Total number of parcel status changes",
		},
		[]string{"status"},
	)
)
