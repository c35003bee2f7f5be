package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RejectedRequestsTotal считает запросы, отбитые токен-бакетом с 429.
var RejectedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limited_requests_total",
		Help: "Requests rejected with 429 by the API rate limiter",
	},
	[]string{"method", "route"},
)
