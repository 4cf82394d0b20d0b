package dispatchers

import (
	"notify-digest/internal/shared/metrics"
)

var (
	metricDispatchesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "dispatches_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricEventsLostTotal counts events whose dispatch failed or was skipped.
	metricEventsLostTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "events_lost_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricEventsSuppressedTotal counts events cut by max_events_per_dispatch.
	metricEventsSuppressedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "events_suppressed_total",
		},
	)

	metricSinkRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "sink_request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
