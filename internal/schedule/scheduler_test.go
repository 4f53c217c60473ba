package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRunFiresInitialAndPeriodicChecks(t *testing.T) {
	fired := make(chan struct{}, 16)
	s := New(func() { fired <- struct{}{} }, time.Millisecond, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Initial check plus at least one interval tick.
	for i := 0; i < 2; i++ {
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatalf("check %d never fired", i)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestTriggerFiresImmediately(t *testing.T) {
	fired := make(chan struct{}, 16)
	// Long delay and interval: only an explicit trigger can fire.
	s := New(func() { fired <- struct{}{} }, time.Hour, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	s.Trigger()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("trigger never fired")
	}
}

func TestTriggerNeverBlocks(t *testing.T) {
	s := New(func() {}, time.Hour, time.Hour, zerolog.Nop())
	// No Run loop draining: repeated triggers must still return.
	for i := 0; i < 5; i++ {
		s.Trigger()
	}
	assert.Len(t, s.trigger, 1, "pending triggers coalesce")
}
