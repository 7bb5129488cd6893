package core

import "time"

// Schedule is a fixed-interval timer driven by explicit simulated time.
// It never reads the wall clock, so runs stay reproducible.
type Schedule struct {
	interval time.Duration
	next     time.Duration
}

// NewSchedule creates a schedule that first fires one interval after zero.
// Panics on a non-positive interval; callers validate configuration first.
func NewSchedule(interval time.Duration) *Schedule {
	if interval <= 0 {
		panic("core: schedule interval must be positive")
	}
	return &Schedule{interval: interval, next: interval}
}

// Interval returns the schedule period.
func (s *Schedule) Interval() time.Duration {
	return s.interval
}

// Due reports how many periods have elapsed up to now and advances
// the schedule past them.
func (s *Schedule) Due(now time.Duration) int {
	if now < s.next {
		return 0
	}
	n := int((now-s.next)/s.interval) + 1
	s.next += time.Duration(n) * s.interval
	return n
}

// Reset rewinds the schedule so it fires one interval after start.
func (s *Schedule) Reset(start time.Duration) {
	s.next = start + s.interval
}
