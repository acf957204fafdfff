package services

import (
	"context"
	"sync"
	"time"

	"github.com/snackops/snackledger/internal/logger"
)

// AlertGenerator is the batch operation the scheduler fires.
type AlertGenerator interface {
	Generate(ctx context.Context, thresholdDays int) (int, error)
}

// Scheduler owns the nightly expiry-alert run. It is an explicit lifecycle
// object: the process entry point constructs it, calls Start exactly once
// (repeated calls no-op), and Stop halts the loop. No package-level state.
type Scheduler struct {
	gen           AlertGenerator
	thresholdDays int
	runAt         time.Duration // offset into the day, e.g. 1h for 01:00

	startMu sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	now func() time.Time
}

// NewScheduler creates a scheduler firing the generator daily at 01:00 local.
func NewScheduler(gen AlertGenerator, thresholdDays int) *Scheduler {
	return &Scheduler{
		gen:           gen,
		thresholdDays: thresholdDays,
		runAt:         time.Hour,
		now:           time.Now,
	}
}

// Start launches the nightly loop. The second and later calls are no-ops,
// so a restart-happy caller cannot register the job twice. Reports whether
// this call actually started the loop.
func (s *Scheduler) Start(ctx context.Context) bool {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	if s.started {
		logger.Log.Warnw("scheduler already started, ignoring")
		return false
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.loop(ctx)
	logger.Log.Infow("expiry alert scheduler started", "threshold_days", s.thresholdDays)
	return true
}

// Stop halts the loop and waits for it to exit. Safe to call more than
// once and before Start.
func (s *Scheduler) Stop() {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	if !s.started {
		return
	}
	s.cancel()
	<-s.done
	s.started = false
	logger.Log.Infow("expiry alert scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	timer := time.NewTimer(time.Until(s.nextRun(s.now())))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			logger.Log.Infow("running expiry alert generation")
			created, err := s.gen.Generate(ctx, s.thresholdDays)
			if err != nil {
				logger.Log.Errorw("expiry alert generation failed", "error", err)
			} else {
				logger.Log.Infow("expiry alert generation done", "created", created)
			}
			timer.Reset(time.Until(s.nextRun(s.now())))
		}
	}
}

// nextRun returns the next daily fire time strictly after now.
func (s *Scheduler) nextRun(now time.Time) time.Time {
	next := startOfDay(now).Add(s.runAt)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
