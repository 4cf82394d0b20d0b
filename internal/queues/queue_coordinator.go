package queues

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"notify-digest/internal/compactors"
	"notify-digest/internal/dispatchers"
	"notify-digest/internal/models"
	"notify-digest/internal/schedulers"
	"notify-digest/internal/shared/loggers"
	"notify-digest/internal/shared/metrics"
	"notify-digest/internal/shared/svcerrors"
	"notify-digest/internal/shared/ulid"
)

// Options is the immutable buffering policy of one coordinator.
type Options struct {
	BufferingEnabled bool
	Debounce         time.Duration
	// MaxBufferAge caps Debounce when > 0.
	MaxBufferAge         time.Duration
	MaxEventsPerDispatch int
}

// Buffered reports whether events wait for a flush instead of being sent on their own.
func (o Options) Buffered() bool {
	return o.BufferingEnabled && o.Debounce > 0
}

// FlushDelay is how long the first buffered event waits. An armed deadline never moves,
// so this is also the maximum age of any event at flush time.
func (o Options) FlushDelay() time.Duration {
	if o.MaxBufferAge > 0 && o.MaxBufferAge < o.Debounce {
		return o.MaxBufferAge
	}
	return o.Debounce
}

// QueueCoordinator owns the pending buffer and hands drained batches to compaction and delivery.
//
// Submit never waits on the network: deliveries run on detached goroutines and their errors
// stop at the delivery client, which logs them. The buffer is swapped out in one step under
// a mutex, so an event submitted while a flush is compacting or delivering lands in the next
// flush, never in two and never in none.
//
//go:generate mockgen -source=queue_coordinator.go -destination=./mocks/queue_coordinator_mock.go -package=mocks
type QueueCoordinator interface {
	Submit(ctx context.Context, event models.Event)
	// Shutdown flushes whatever is pending and waits for in-flight deliveries or ctx expiry.
	// Events submitted afterwards are dropped.
	Shutdown(ctx context.Context) error
}

type queueCoordinator struct {
	opts           Options
	compactor      compactors.MessageCompactor
	deliveryClient dispatchers.DeliveryClient
	scheduler      schedulers.BatchScheduler

	mu      sync.Mutex
	pending []models.Event
	closed  bool

	inflight sync.WaitGroup

	logger loggers.Logger
}

func NewQueueCoordinator(opts Options, compactor compactors.MessageCompactor, deliveryClient dispatchers.DeliveryClient, logger loggers.Logger) QueueCoordinator {
	return newQueueCoordinator(opts, compactor, deliveryClient, schedulers.NewBatchScheduler, logger)
}

func newQueueCoordinator(
	opts Options,
	compactor compactors.MessageCompactor,
	deliveryClient dispatchers.DeliveryClient,
	newScheduler func(time.Duration, func()) schedulers.BatchScheduler,
	logger loggers.Logger,
) *queueCoordinator {
	c := &queueCoordinator{
		opts:           opts,
		compactor:      compactor,
		deliveryClient: deliveryClient,
		logger:         logger,
	}
	// The scheduler only ever calls c.flush, whichever Submit armed it.
	c.scheduler = newScheduler(opts.FlushDelay(), c.flush)
	return c
}

func (c *queueCoordinator) Submit(ctx context.Context, event models.Event) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		metricEventsSubmittedTotal.WithLabelValues(modeRejected).Inc()
		loggers.Ctx(ctx).Warn().
			Str("source_name", event.SourceName).
			Str("kind", event.Kind).
			Msg("event dropped: queue is shut down")
		return
	}

	if !c.opts.Buffered() {
		c.inflight.Add(1)
		c.mu.Unlock()
		metricEventsSubmittedTotal.WithLabelValues(modeImmediate).Inc()
		go c.dispatch(modeImmediate, []models.Event{event})
		return
	}

	// Scheduling under mu keeps Shutdown's Stop ordered after it, so no timer outlives shutdown.
	c.pending = append(c.pending, event)
	c.scheduler.Schedule()
	c.mu.Unlock()
	metricEventsSubmittedTotal.WithLabelValues(modeBuffered).Inc()
}

// flush drains the buffer and starts a delivery for its contents.
func (c *queueCoordinator) flush() {
	events, ok := c.drain()
	if !ok {
		return
	}
	metricFlushesTotal.Inc()
	go c.dispatch(modeBuffered, events)
}

// drain swaps the buffer for a fresh one and registers the in-flight dispatch.
// It reports false when there is nothing to send.
func (c *queueCoordinator) drain() ([]models.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) == 0 {
		return nil, false
	}
	events := c.pending
	c.pending = nil
	c.inflight.Add(1)
	return events, true
}

func (c *queueCoordinator) dispatch(mode string, events []models.Event) {
	defer c.inflight.Done()

	logger := c.logger.With().Str(loggers.FieldDispatchID, ulid.NewPrefixed("dsp")).Logger()
	ctx := logger.WithContext(context.Background())

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Int(loggers.FieldLostCount, len(events)).
				Msgf("dispatch panic recovered: %v", r)

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricDispatchesTotal.WithLabelValues(mode, svcErr.Code).Inc()
		}
	}()

	groups, dropped := c.compactor.Compact(events, c.opts.MaxEventsPerDispatch)
	logger.Debug().
		Str("mode", mode).
		Int(loggers.FieldEventCount, len(events)).
		Int(loggers.FieldGroupCount, len(groups)).
		Int(loggers.FieldDroppedCount, dropped).
		Msg("dispatching")

	if svcErr := c.deliveryClient.Deliver(ctx, groups, dropped); svcErr != nil {
		metricDispatchesTotal.WithLabelValues(mode, svcErr.Code).Inc()
		return
	}
	metricDispatchesTotal.WithLabelValues(mode, metrics.ValueNoError).Inc()
}

func (c *queueCoordinator) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		if c.scheduler.Stop() {
			c.logger.Debug().Msg("pending flush timer cancelled, flushing now")
		}
	}
	c.mu.Unlock()

	// Flush now rather than waiting for the disarmed deadline.
	c.flush()

	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info().Msg("queue drained")
		return nil
	case <-ctx.Done():
		c.logger.Warn().Err(ctx.Err()).Msg("queue shutdown deadline reached with dispatches still in flight")
		return fmt.Errorf("queue shutdown: %w", ctx.Err())
	}
}
