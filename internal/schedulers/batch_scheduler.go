package schedulers

import (
	"sync"
	"time"
)

// BatchScheduler runs one fixed flush procedure once per pending window.
//
// Schedule arms a timer only when none is pending and never moves an armed deadline, so a burst
// of Schedule calls collapses into one flush at (first call + delay). The pending flag is cleared
// before flush runs, which lets a Schedule call made during the flush arm the next window.
//
//go:generate mockgen -source=batch_scheduler.go -destination=./mocks/batch_scheduler_mock.go -package=mocks
type BatchScheduler interface {
	// Schedule requests a flush after the configured delay.
	Schedule()
	// Stop disarms a pending timer. It reports whether a pending flush was cancelled.
	Stop() bool
}

type batchScheduler struct {
	delay time.Duration
	flush func()

	mu    sync.Mutex
	timer *time.Timer
	// generation identifies the armed timer so a stale fire cannot clear a newer one.
	generation uint64
}

// NewBatchScheduler binds the scheduler to flush for its whole lifetime.
func NewBatchScheduler(delay time.Duration, flush func()) BatchScheduler {
	return &batchScheduler{delay: delay, flush: flush}
}

func (s *batchScheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		return
	}
	s.generation++
	generation := s.generation
	s.timer = time.AfterFunc(s.delay, func() { s.fire(generation) })
}

func (s *batchScheduler) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil {
		return false
	}
	stopped := s.timer.Stop()
	s.timer = nil
	return stopped
}

// pending reports whether a timer is armed and has not fired yet.
func (s *batchScheduler) pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *batchScheduler) fire(generation uint64) {
	s.mu.Lock()
	if s.generation == generation {
		s.timer = nil
	}
	s.mu.Unlock()

	s.flush()
}
