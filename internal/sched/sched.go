// Package sched runs callbacks on fixed intervals from a single goroutine.
package sched

import (
	"context"
	"time"

	"voxlife/internal/core"
)

// DefaultMaxCatchUp bounds how many times one callback fires per Advance.
const DefaultMaxCatchUp = 4

type task struct {
	timer *core.FixedStep
	fn    func()
}

// Scheduler fires registered callbacks as simulated time advances. Callbacks
// run in registration order, each draining its due intervals before the next
// one starts, so a callback registered earlier always completes first within
// an Advance. It is not safe for concurrent use.
type Scheduler struct {
	// MaxCatchUp caps the firings of each callback per Advance; excess whole
	// intervals are dropped.
	MaxCatchUp int

	tasks   []task
	running bool
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{MaxCatchUp: DefaultMaxCatchUp}
}

// OnFixedInterval registers fn to run once every interval.
func (s *Scheduler) OnFixedInterval(interval time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.tasks = append(s.tasks, task{timer: core.NewFixedStep(interval), fn: fn})
}

// Advance moves time forward by dt and runs due callbacks. It returns the
// number of callback invocations. Calling Advance from a callback panics.
func (s *Scheduler) Advance(dt time.Duration) int {
	if s.running {
		panic("sched: Advance called from inside a scheduled callback")
	}
	s.running = true
	defer func() { s.running = false }()

	limit := s.MaxCatchUp
	if limit <= 0 {
		limit = 1
	}
	fired := 0
	for _, t := range s.tasks {
		t.timer.Add(dt)
		n := 0
		for n < limit && t.timer.Take() {
			t.fn()
			n++
		}
		if n == limit {
			t.timer.Drop()
		}
		fired += n
	}
	return fired
}

// Run drives Advance from the wall clock every tick until ctx is done.
func (s *Scheduler) Run(ctx context.Context, tick time.Duration) error {
	if tick <= 0 {
		tick = time.Second / 60
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Advance(now.Sub(last))
			last = now
		}
	}
}
