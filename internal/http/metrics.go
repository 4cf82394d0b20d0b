package http

import (
	"notify-digest/internal/shared/metrics"
)

const (
	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"
)

var (
	metricRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{labelMethod, labelRoute, labelStatus, metrics.FieldErrorCode},
	)

	metricRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{labelMethod, labelRoute},
	)

	// only observed for requests that accepted at least one event
	metricEventsPerRequest = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "events_per_request",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{labelRoute},
	)
)
