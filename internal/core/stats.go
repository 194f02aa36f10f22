package core

import "time"

// DefaultStatsWindow is the number of samples averaged by StepStats.
const DefaultStatsWindow = 30

// StepStats keeps the most recent step durations and their running average.
type StepStats struct {
	samples []time.Duration
	next    int
	filled  bool
	sum     time.Duration
	last    time.Duration
	total   int
}

// NewStepStats creates a window of the given size (DefaultStatsWindow when <= 0).
func NewStepStats(window int) *StepStats {
	if window <= 0 {
		window = DefaultStatsWindow
	}
	return &StepStats{samples: make([]time.Duration, window)}
}

// Record adds one sample, evicting the oldest when the window is full.
func (s *StepStats) Record(d time.Duration) {
	if s.filled {
		s.sum -= s.samples[s.next]
	}
	s.samples[s.next] = d
	s.sum += d
	s.last = d
	s.total++
	s.next++
	if s.next == len(s.samples) {
		s.next = 0
		s.filled = true
	}
}

// Time runs fn and records how long it took.
func (s *StepStats) Time(fn func() error) error {
	start := time.Now()
	err := fn()
	s.Record(time.Since(start))
	return err
}

// Last returns the most recent sample.
func (s *StepStats) Last() time.Duration { return s.last }

// Count returns how many samples were recorded overall.
func (s *StepStats) Count() int { return s.total }

// Full reports whether the window has wrapped at least once.
func (s *StepStats) Full() bool { return s.filled }

// Average returns the mean of the samples currently in the window.
func (s *StepStats) Average() time.Duration {
	n := s.next
	if s.filled {
		n = len(s.samples)
	}
	if n == 0 {
		return 0
	}
	return s.sum / time.Duration(n)
}

// Reset discards all samples.
func (s *StepStats) Reset() {
	for i := range s.samples {
		s.samples[i] = 0
	}
	s.next, s.filled, s.sum, s.last, s.total = 0, false, 0, 0, 0
}
