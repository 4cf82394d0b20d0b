package queues

import (
	"notify-digest/internal/shared/metrics"
)

const (
	modeImmediate = "immediate"
	modeBuffered  = "buffered"
	modeRejected  = "rejected"
)

var (
	// metricEventsSubmittedTotal counts submitted events by how they were handled:
	// immediate (sent alone), buffered (waiting for a flush) or rejected (after shutdown).
	metricEventsSubmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQueue,
			Name:      "events_submitted_total",
		},
		[]string{"mode"},
	)

	// metricFlushesTotal counts flushes that drained a non-empty buffer.
	metricFlushesTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQueue,
			Name:      "flushes_total",
		},
	)

	metricDispatchesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQueue,
			Name:      "dispatches_total",
		},
		[]string{"mode", metrics.FieldErrorCode},
	)
)
