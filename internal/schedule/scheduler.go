// Package schedule runs the best-effort interest trigger: once shortly
// after startup, on a coarse recurring interval, and whenever explicitly
// poked. Precision does not matter; application is idempotent per calendar
// day, so overlapping or redundant checks are harmless.
package schedule

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler invokes a check function on a cadence.
type Scheduler struct {
	check        func()
	initialDelay time.Duration
	interval     time.Duration
	trigger      chan struct{}
	log          zerolog.Logger
}

// New creates a Scheduler. check is typically a closure over the interest
// engine's Apply.
func New(check func(), initialDelay, interval time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		check:        check,
		initialDelay: initialDelay,
		interval:     interval,
		trigger:      make(chan struct{}, 1),
		log:          log,
	}
}

// Trigger requests an immediate check (the focus-regain analogue). Never
// blocks; a pending request coalesces with the next.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done, firing the check after the initial delay and
// then on every interval tick or explicit trigger.
func (s *Scheduler) Run(ctx context.Context) {
	initial := time.NewTimer(s.initialDelay)
	defer initial.Stop()

	select {
	case <-ctx.Done():
		return
	case <-initial.C:
		s.fire("initial")
	case <-s.trigger:
		s.fire("trigger")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fire("interval")
		case <-s.trigger:
			s.fire("trigger")
		}
	}
}

func (s *Scheduler) fire(reason string) {
	s.log.Debug().Str("reason", reason).Msg("interest check")
	s.check()
}
