package core

import "time"

// FixedStep paces simulation updates independently of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting ups updates per second.
// The first call to ShouldStep always fires.
func NewFixedStep(ups int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(ups)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the update rate. Non-positive values fall back to 60.
func (f *FixedStep) SetRate(ups int) {
	if ups <= 0 {
		ups = 60
	}
	f.step = time.Second / time.Duration(ups)
}

// Interval returns the duration of one update.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one update.
func (f *FixedStep) ShouldStep() bool { return f.Due(time.Now()) }

// Due is ShouldStep with an explicit clock reading. At most one pending
// update is kept so a stalled caller does not burst afterwards.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
