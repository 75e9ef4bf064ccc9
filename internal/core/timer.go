package core

import "time"

// FixedStep accumulates elapsed time and releases it in whole intervals.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep that fires every interval. Non-positive
// intervals fall back to 1/60 s.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step length. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
}

// Add feeds elapsed time into the accumulator.
func (f *FixedStep) Add(dt time.Duration) {
	if dt > 0 {
		f.accumulator += dt
	}
}

// Take consumes one interval if enough time has accumulated.
func (f *FixedStep) Take() bool {
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Drop discards every whole interval still pending and keeps the fraction.
func (f *FixedStep) Drop() {
	f.accumulator %= f.step
}
