package ingestors

import (
	"notify-digest/internal/shared/metrics"
)

var (
	metricRequestsIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "requests_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsIngestedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_ingested_total",
		},
	)
)
